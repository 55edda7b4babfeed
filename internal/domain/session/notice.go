package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"medication-reminder/internal/platform/logger"
	"medication-reminder/internal/ports/storage"
)

// NoticeKey guarda el aviso pendiente para la próxima carga de página.
const NoticeKey = "sessionNotice"

const defaultDurationMs = 3000

var (
	ErrInvalidInput = errors.New("invalid input")
)

// NoticeType define el estilo del toast.
// @Enum success, error, info, warning
type NoticeType string

const (
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
	NoticeInfo    NoticeType = "info"
	NoticeWarning NoticeType = "warning"
)

type Notice struct {
	Type     NoticeType `json:"type"`
	Message  string     `json:"message"`
	Duration int        `json:"duration"` // ms
}

// Store maneja el aviso de un solo uso: Take lo lee y lo borra.
type Store struct {
	kv  storage.KeyValueStore
	log logger.Logger
}

func NewStore(kv storage.KeyValueStore, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{kv: kv, log: log.With(logger.Fields{"component": "session.store", "key": NoticeKey})}
}

func (s *Store) Set(ctx context.Context, profile string, n Notice) error {
	n.Message = strings.TrimSpace(n.Message)
	if n.Message == "" {
		return ErrInvalidInput
	}
	switch n.Type {
	case NoticeSuccess, NoticeError, NoticeInfo, NoticeWarning:
	case "":
		n.Type = NoticeInfo
	default:
		return ErrInvalidInput
	}
	if n.Duration <= 0 {
		n.Duration = defaultDurationMs
	}

	b, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notice: %w", err)
	}
	if err := s.kv.Set(ctx, profile, NoticeKey, b); err != nil {
		return fmt.Errorf("store notice: %w", err)
	}
	return nil
}

// Take consume el aviso. ok=false si no hay aviso o no se puede leer;
// un aviso corrupto también se borra.
func (s *Store) Take(ctx context.Context, profile string) (Notice, bool) {
	b, err := s.kv.Get(ctx, profile, NoticeKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("read failed", logger.Fields{"profile": profile, "err": err})
		}
		return Notice{}, false
	}

	if err := s.kv.Delete(ctx, profile, NoticeKey); err != nil {
		s.log.Warn("clear failed", logger.Fields{"profile": profile, "err": err})
	}

	var n Notice
	if err := json.Unmarshal(b, &n); err != nil || strings.TrimSpace(n.Message) == "" {
		s.log.Warn("corrupt notice dropped", logger.Fields{"profile": profile})
		return Notice{}, false
	}
	return n, true
}
