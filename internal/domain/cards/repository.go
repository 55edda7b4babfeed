package cards

import "context"

// Repository es el único acceso a "medicationCards".
// Get y Put nunca devuelven error; Save sí, para las operaciones del editor.
type Repository interface {
	Get(ctx context.Context, profile string) []Card
	Put(ctx context.Context, profile string, cards []Card)
	Save(ctx context.Context, profile string, cards []Card) error
}
