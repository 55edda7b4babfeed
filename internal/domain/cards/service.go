package cards

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrIndexOutOfRange = errors.New("card index out of range")
)

// Service agrupa las operaciones del editor: leer, modificar y volver a guardar.
// Read-modify-write sin lock; dos pestañas concurrentes pueden pisarse.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, profile string) []Card {
	return s.repo.Get(ctx, profile)
}

// ReplaceAll reemplaza la lista completa (sin validar títulos: es un import).
func (s *Service) ReplaceAll(ctx context.Context, profile string, in []Card) []Card {
	out := make([]Card, 0, len(in))
	for _, c := range in {
		out = append(out, c.Normalized())
	}
	s.repo.Put(ctx, profile, out)
	return out
}

func (s *Service) Add(ctx context.Context, profile string, c Card) (Card, error) {
	if strings.TrimSpace(c.Title) == "" {
		return Card{}, ErrInvalidInput
	}
	c = c.Normalized()
	c.Title = strings.TrimSpace(c.Title)

	list := s.repo.Get(ctx, profile)
	list = append(list, c)
	if err := s.repo.Save(ctx, profile, list); err != nil {
		return Card{}, err
	}
	return c, nil
}

func (s *Service) Replace(ctx context.Context, profile string, index int, c Card) (Card, error) {
	if strings.TrimSpace(c.Title) == "" {
		return Card{}, ErrInvalidInput
	}
	list := s.repo.Get(ctx, profile)
	if index < 0 || index >= len(list) {
		return Card{}, ErrIndexOutOfRange
	}

	c = c.Normalized()
	c.Title = strings.TrimSpace(c.Title)
	list[index] = c
	if err := s.repo.Save(ctx, profile, list); err != nil {
		return Card{}, err
	}
	return c, nil
}

func (s *Service) Remove(ctx context.Context, profile string, index int) error {
	list := s.repo.Get(ctx, profile)
	if index < 0 || index >= len(list) {
		return ErrIndexOutOfRange
	}
	list = append(list[:index], list[index+1:]...)
	return s.repo.Save(ctx, profile, list)
}

// RecordIntake suma una toma hoy (y una tardía si late). No limita a DailyTimes.
func (s *Service) RecordIntake(ctx context.Context, profile string, index int, late bool) (Card, error) {
	list := s.repo.Get(ctx, profile)
	if index < 0 || index >= len(list) {
		return Card{}, ErrIndexOutOfRange
	}

	c := list[index]
	c.TakenCountToday++
	if late {
		c.LateCountToday++
	}
	list[index] = c

	if err := s.repo.Save(ctx, profile, list); err != nil {
		return Card{}, err
	}
	return c, nil
}

// ResetDay pone a cero los contadores de hoy en todas las tarjetas.
func (s *Service) ResetDay(ctx context.Context, profile string) ([]Card, error) {
	list := s.repo.Get(ctx, profile)
	for i := range list {
		list[i].TakenCountToday = 0
		list[i].LateCountToday = 0
	}
	if err := s.repo.Save(ctx, profile, list); err != nil {
		return nil, err
	}
	return list, nil
}
