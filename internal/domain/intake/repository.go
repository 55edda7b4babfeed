package intake

import "context"

// Repository cubre las keys "manualIntakeHistory" y "manualIntakeGroups".
// Las lecturas nunca fallan: storage ausente o corrupto devuelve vacío.
type Repository interface {
	History(ctx context.Context, profile string) History
	SaveHistory(ctx context.Context, profile string, h History) error

	Groups(ctx context.Context, profile string) []Group
	SaveGroups(ctx context.Context, profile string, groups []Group) error
}
