package session

import (
	"context"
	"errors"
	"testing"

	"medication-reminder/internal/adapters/storage/memory"
	"medication-reminder/internal/platform/logger"
)

func TestStore_TakeConsumesOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.NewKVStore(), logger.Nop())

	if _, ok := s.Take(ctx, "p"); ok {
		t.Fatalf("expected no notice on empty store")
	}

	if err := s.Set(ctx, "p", Notice{Type: NoticeSuccess, Message: "저장되었습니다"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	n, ok := s.Take(ctx, "p")
	if !ok {
		t.Fatalf("expected a notice")
	}
	if n.Type != NoticeSuccess || n.Message != "저장되었습니다" || n.Duration != defaultDurationMs {
		t.Fatalf("unexpected notice: %#v", n)
	}

	if _, ok := s.Take(ctx, "p"); ok {
		t.Fatalf("notice must be cleared after the first read")
	}
}

func TestStore_SetValidates(t *testing.T) {
	s := NewStore(memory.NewKVStore(), logger.Nop())
	ctx := context.Background()

	if err := s.Set(ctx, "p", Notice{Message: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank message, got %v", err)
	}
	if err := s.Set(ctx, "p", Notice{Type: "shout", Message: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}
	if err := s.Set(ctx, "p", Notice{Message: "x", Duration: 500}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	n, _ := s.Take(ctx, "p")
	if n.Type != NoticeInfo || n.Duration != 500 {
		t.Fatalf("expected info type default and explicit duration, got %#v", n)
	}
}

func TestStore_CorruptNoticeIsDropped(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := NewStore(kv, logger.Nop())

	_ = kv.Set(ctx, "p", NoticeKey, []byte(`{oops`))
	if _, ok := s.Take(ctx, "p"); ok {
		t.Fatalf("corrupt notice should not be returned")
	}
	if _, err := kv.Get(ctx, "p", NoticeKey); err == nil {
		t.Fatalf("corrupt notice should be cleared")
	}
}
