package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	history map[string]History
	groups  map[string][]Group
	failErr error
}

func newTestRepo() *testRepo {
	return &testRepo{history: map[string]History{}, groups: map[string][]Group{}}
}

func (r *testRepo) History(ctx context.Context, profile string) History {
	out := History{}
	for k, v := range r.history[profile] {
		out[k] = append([]DoseEvent(nil), v...)
	}
	return out
}

func (r *testRepo) SaveHistory(ctx context.Context, profile string, h History) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.history[profile] = h
	return nil
}

func (r *testRepo) Groups(ctx context.Context, profile string) []Group {
	return append([]Group{}, r.groups[profile]...)
}

func (r *testRepo) SaveGroups(ctx context.Context, profile string, groups []Group) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.groups[profile] = groups
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Record_NormalizesAndAppends(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	ev, err := svc.Record(ctx, "p", "2026-10-19", DoseEvent{Time: "9:5", Name: " 혈압약 ", Status: StatusLate})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if ev.Time != "09:05" || ev.Name != "혈압약" {
		t.Fatalf("expected normalized event, got %#v", ev)
	}

	_, _ = svc.Record(ctx, "p", "2026-10-19", DoseEvent{Time: "08:00", Name: "비타민", Status: StatusSuccess})

	h := svc.History(ctx, "p")
	if len(h["2026-10-19"]) != 2 {
		t.Fatalf("expected 2 events on the day, got %#v", h)
	}
}

func TestService_Record_RejectsInvalid(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	cases := []struct {
		date string
		ev   DoseEvent
	}{
		{"19/10/2026", DoseEvent{Time: "08:00", Name: "A", Status: StatusSuccess}},
		{"2026-10-19", DoseEvent{Time: "25:00", Name: "A", Status: StatusSuccess}},
		{"2026-10-19", DoseEvent{Time: "08:00", Name: "A", Status: Status("skipped")}},
		{"2026-10-19", DoseEvent{Time: "08:00", Name: "  ", Status: StatusMiss}},
	}
	for _, c := range cases {
		if _, err := svc.Record(ctx, "p", c.date, c.ev); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", c, err)
		}
	}
}

func TestService_CreateAndDeleteGroup(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	g, err := svc.CreateGroup(ctx, "p", CreateGroupInput{
		Name:       "아침 약",
		Times:      []string{"8:0"},
		CardTitles: []string{"혈압약", " ", "비타민"},
	})
	if err != nil {
		t.Fatalf("CreateGroup returned error: %v", err)
	}
	if _, err := uuid.Parse(g.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", g.ID)
	}
	if g.CreatedAt != now {
		t.Fatalf("expected CreatedAt to be now")
	}
	if len(g.Times) != 1 || g.Times[0] != "08:00" || len(g.CardTitles) != 2 {
		t.Fatalf("unexpected group: %#v", g)
	}

	if _, err := svc.CreateGroup(ctx, "p", CreateGroupInput{Name: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.CreateGroup(ctx, "p", CreateGroupInput{Name: "x", Times: []string{"nope"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad time, got %v", err)
	}

	if err := svc.DeleteGroup(ctx, "p", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.DeleteGroup(ctx, "p", g.ID); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if len(svc.Groups(ctx, "p")) != 0 {
		t.Fatalf("expected no groups after delete")
	}
}

func TestService_SurfacesWriteErrors(t *testing.T) {
	repo := newTestRepo()
	repo.failErr = errors.New("quota exceeded")
	svc := NewService(repo)

	if _, err := svc.Record(context.Background(), "p", "2026-10-19", DoseEvent{Time: "08:00", Name: "A", Status: StatusSuccess}); err == nil {
		t.Fatalf("expected write error")
	}
}
