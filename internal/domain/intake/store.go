package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"medication-reminder/internal/platform/logger"
	"medication-reminder/internal/ports/storage"
)

const (
	HistoryKey = "manualIntakeHistory"
	GroupsKey  = "manualIntakeGroups"
)

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
		log: log.With(logger.Fields{"component": "intake.store"}),
	}
}

func (s *Store) History(ctx context.Context, profile string) History {
	var h History
	if !s.read(ctx, profile, HistoryKey, &h) || h == nil {
		return History{}
	}
	return h
}

func (s *Store) SaveHistory(ctx context.Context, profile string, h History) error {
	if h == nil {
		h = History{}
	}
	return s.write(ctx, profile, HistoryKey, h)
}

func (s *Store) Groups(ctx context.Context, profile string) []Group {
	var out []Group
	if !s.read(ctx, profile, GroupsKey, &out) || out == nil {
		return []Group{}
	}
	return out
}

func (s *Store) SaveGroups(ctx context.Context, profile string, groups []Group) error {
	if groups == nil {
		groups = []Group{}
	}
	return s.write(ctx, profile, GroupsKey, groups)
}

// read devuelve false si no hay valor utilizable; los fallos quedan en el log.
func (s *Store) read(ctx context.Context, profile, key string, v any) bool {
	b, err := s.kv.Get(ctx, profile, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("read failed, using empty value", logger.Fields{"profile": profile, "key": key, "err": err})
		}
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		s.log.Warn("corrupt content, using empty value", logger.Fields{"profile": profile, "key": key, "err": err})
		return false
	}
	return true
}

func (s *Store) write(ctx context.Context, profile, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, profile, key, b); err != nil {
		s.log.Error("write failed", logger.Fields{"profile": profile, "key": key, "err": err})
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
