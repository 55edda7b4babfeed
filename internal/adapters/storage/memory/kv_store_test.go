package memory

import (
	"context"
	"errors"
	"testing"

	"medication-reminder/internal/ports/storage"
)

func TestKVStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	if _, err := s.Get(ctx, "p1", "medicationCards"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	if err := s.Set(ctx, "p1", "medicationCards", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get(ctx, "p1", "medicationCards")
	if err != nil || string(got) != "[]" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	// namespaces aislados
	if _, err := s.Get(ctx, "p2", "medicationCards"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected other namespace to be empty, got %v", err)
	}

	if err := s.Delete(ctx, "p1", "medicationCards"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "p1", "medicationCards"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, "nope", "nope"); err != nil {
		t.Fatalf("Delete of missing key should not fail: %v", err)
	}
}

func TestKVStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	in := []byte(`{"a":1}`)
	_ = s.Set(ctx, "p", "k", in)
	in[0] = 'X'

	got, _ := s.Get(ctx, "p", "k")
	got[1] = 'Y'

	again, _ := s.Get(ctx, "p", "k")
	if string(again) != `{"a":1}` {
		t.Fatalf("stored value was mutated: %q", again)
	}
}

func TestKVStore_RejectsEmptyKey(t *testing.T) {
	if err := NewKVStore().Set(context.Background(), "p", " ", nil); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
}
