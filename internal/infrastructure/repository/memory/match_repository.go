// Package memory provides seeded in-memory repositories for development
// runs without a reachable store. Ranking math matches the SQL the
// postgres repositories issue.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubstats/statsboard/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	return &MatchRepository{matches: append([]match.Match(nil), matches...)}
}

func (r *MatchRepository) ListRecent(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if filter.Stage != "" && item.Stage != filter.Stage {
			continue
		}
		if !filter.From.IsZero() && item.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && item.Date.After(filter.To) {
			continue
		}
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}
