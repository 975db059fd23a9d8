package player

import "context"

// Store describes player persistence needs from use cases. Reads
// return snapshots; implementations must not share mutable slices.
type Store interface {
	ListAll(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, team string) ([]Player, error)
	ListByNationality(ctx context.Context, code string) ([]Player, error)
	ListByPositionContains(ctx context.Context, position string) ([]Player, error)
	DistinctTeams(ctx context.Context) ([]string, error)
	DistinctNationalityCodes(ctx context.Context) ([]string, error)

	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, id int64) (bool, error)
}
