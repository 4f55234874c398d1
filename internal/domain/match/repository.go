package match

import "context"

// Repository describes the read-only match queries the views need.
type Repository interface {
	// ListRecent returns the latest matches ordered by date descending.
	// Unknown stages or empty windows yield an empty slice, not an error.
	ListRecent(ctx context.Context, filter Filter) ([]Match, error)
}
