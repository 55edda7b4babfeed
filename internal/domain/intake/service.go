package intake

import (
	"context"
	"errors"
	"strings"
	"time"

	"medication-reminder/internal/domain/cards"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) History(ctx context.Context, profile string) History {
	return s.repo.History(ctx, profile)
}

// Record agrega un evento al día indicado. La hora se normaliza a HH:MM.
func (s *Service) Record(ctx context.Context, profile, date string, ev DoseEvent) (DoseEvent, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return DoseEvent{}, ErrInvalidInput
	}
	if _, ok := cards.ParseClock(ev.Time); !ok {
		return DoseEvent{}, ErrInvalidInput
	}
	if !ev.Status.Valid() {
		return DoseEvent{}, ErrInvalidInput
	}

	ev = DoseEvent{
		Time:   cards.NormalizeClock(ev.Time),
		Name:   strings.TrimSpace(ev.Name),
		Status: ev.Status,
	}
	if ev.Name == "" {
		return DoseEvent{}, ErrInvalidInput
	}

	h := s.repo.History(ctx, profile)
	h[date] = append(h[date], ev)
	if err := s.repo.SaveHistory(ctx, profile, h); err != nil {
		return DoseEvent{}, err
	}
	return ev, nil
}

func (s *Service) Groups(ctx context.Context, profile string) []Group {
	return s.repo.Groups(ctx, profile)
}

type CreateGroupInput struct {
	Name       string
	Times      []string
	CardTitles []string
}

func (s *Service) CreateGroup(ctx context.Context, profile string, in CreateGroupInput) (Group, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Group{}, ErrInvalidInput
	}

	times := make([]string, 0, len(in.Times))
	for _, t := range in.Times {
		if _, ok := cards.ParseClock(t); !ok {
			return Group{}, ErrInvalidInput
		}
		times = append(times, cards.NormalizeClock(t))
	}

	titles := make([]string, 0, len(in.CardTitles))
	for _, t := range in.CardTitles {
		if t = strings.TrimSpace(t); t != "" {
			titles = append(titles, t)
		}
	}

	g := Group{
		ID:         uuid.NewString(),
		Name:       name,
		Times:      times,
		CardTitles: titles,
		CreatedAt:  s.now().UTC(),
	}

	groups := append(s.repo.Groups(ctx, profile), g)
	if err := s.repo.SaveGroups(ctx, profile, groups); err != nil {
		return Group{}, err
	}
	return g, nil
}

func (s *Service) DeleteGroup(ctx context.Context, profile, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	groups := s.repo.Groups(ctx, profile)
	for i, g := range groups {
		if g.ID == id {
			groups = append(groups[:i], groups[i+1:]...)
			return s.repo.SaveGroups(ctx, profile, groups)
		}
	}
	return ErrNotFound
}
