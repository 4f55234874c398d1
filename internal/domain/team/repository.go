package team

import "context"

// Repository describes team catalog reads.
type Repository interface {
	// List returns every team ordered by name.
	List(ctx context.Context) ([]Team, error)
	// GetByID reports exists=false for unknown ids instead of failing.
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
}
