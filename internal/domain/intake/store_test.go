package intake

import (
	"context"
	"testing"

	"medication-reminder/internal/adapters/storage/memory"
	"medication-reminder/internal/platform/logger"
)

func TestStore_DegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := NewStore(kv, logger.Nop())

	if h := s.History(ctx, "p"); h == nil || len(h) != 0 {
		t.Fatalf("expected empty history, got %#v", h)
	}

	_ = kv.Set(ctx, "p", HistoryKey, []byte(`["not","a","map"]`))
	if h := s.History(ctx, "p"); len(h) != 0 {
		t.Fatalf("expected corrupt history to read as empty, got %#v", h)
	}

	_ = kv.Set(ctx, "p", GroupsKey, []byte(`{broken`))
	if g := s.Groups(ctx, "p"); g == nil || len(g) != 0 {
		t.Fatalf("expected corrupt groups to read as empty, got %#v", g)
	}
}

func TestStore_HistoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.NewKVStore(), logger.Nop())

	in := History{"2026-10-19": {{Time: "08:00", Name: "A", Status: StatusSuccess}}}
	if err := s.SaveHistory(ctx, "p", in); err != nil {
		t.Fatalf("SaveHistory: %v", err)
	}

	got := s.History(ctx, "p")
	if len(got["2026-10-19"]) != 1 || got["2026-10-19"][0] != in["2026-10-19"][0] {
		t.Fatalf("unexpected history: %#v", got)
	}
}
