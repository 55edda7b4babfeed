package cards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"medication-reminder/internal/platform/logger"
	"medication-reminder/internal/ports/storage"
)

// Key es la key de storage de las tarjetas.
const Key = "medicationCards"

// Store es el Record Store sobre el storage cliente.
// No hay transacción entre Get y Put: la última escritura gana.
type Store struct {
	kv  storage.KeyValueStore
	log logger.Logger
}

func NewStore(kv storage.KeyValueStore, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		kv:  kv,
		log: log.With(logger.Fields{"component": "cards.store", "key": Key}),
	}
}

// Get devuelve las tarjetas guardadas, o una lista vacía si la key no existe,
// no se puede leer o el contenido no es válido.
func (s *Store) Get(ctx context.Context, profile string) []Card {
	b, err := s.kv.Get(ctx, profile, Key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("read failed, using empty list", logger.Fields{"profile": profile, "err": err})
		}
		return []Card{}
	}

	var out []Card
	if err := json.Unmarshal(b, &out); err != nil {
		s.log.Warn("corrupt content, using empty list", logger.Fields{"profile": profile, "err": err})
		return []Card{}
	}
	if out == nil {
		return []Card{}
	}
	return out
}

// Put guarda las tarjetas. Un fallo se reporta por log y no llega al caller.
func (s *Store) Put(ctx context.Context, profile string, cards []Card) {
	if err := s.Save(ctx, profile, cards); err != nil {
		s.log.Error("write failed", logger.Fields{"profile": profile, "count": len(cards), "err": err})
	}
}

// Save es Put con el error visible.
func (s *Store) Save(ctx context.Context, profile string, cards []Card) error {
	if cards == nil {
		cards = []Card{}
	}
	b, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("marshal cards: %w", err)
	}
	if err := s.kv.Set(ctx, profile, Key, b); err != nil {
		return fmt.Errorf("store cards: %w", err)
	}
	return nil
}
