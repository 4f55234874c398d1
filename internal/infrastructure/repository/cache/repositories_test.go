package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clubstats/statsboard/internal/domain/match"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
	basecache "github.com/clubstats/statsboard/internal/platform/cache"
)

type countingMatchRepo struct {
	calls int
	items []match.Match
	err   error
}

func (r *countingMatchRepo) ListRecent(_ context.Context, _ match.Filter) ([]match.Match, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

type countingTeamStatsRepo struct {
	teamstats.Repository

	byMatchCalls int
	stats        []teamstats.MatchStats
}

func (r *countingTeamStatsRepo) ListByMatch(_ context.Context, _ int64) ([]teamstats.MatchStats, error) {
	r.byMatchCalls++
	return r.stats, nil
}

func TestMatchRepository_SecondCallWithinTTLHitsCache(t *testing.T) {
	next := &countingMatchRepo{items: []match.Match{{ID: 1, HomeTeam: "Chelsea", AwayTeam: "PSG"}}}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	filter := match.Filter{Limit: 50}
	first, err := repo.ListRecent(context.Background(), filter)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := repo.ListRecent(context.Background(), filter)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if next.calls != 1 {
		t.Fatalf("expected one store round-trip, got %d", next.calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].ID != 1 {
		t.Fatalf("unexpected results: %v vs %v", first, second)
	}
}

func TestMatchRepository_DistinctFiltersAreDistinctEntries(t *testing.T) {
	next := &countingMatchRepo{}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	if _, err := repo.ListRecent(context.Background(), match.Filter{Limit: 50}); err != nil {
		t.Fatalf("unfiltered call: %v", err)
	}
	if _, err := repo.ListRecent(context.Background(), match.Filter{Stage: "Final", Limit: 50}); err != nil {
		t.Fatalf("filtered call: %v", err)
	}

	if next.calls != 2 {
		t.Fatalf("expected two store round-trips, got %d", next.calls)
	}
}

func TestMatchRepository_ErrorsAreNotCached(t *testing.T) {
	next := &countingMatchRepo{err: errors.New("connection refused")}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	if _, err := repo.ListRecent(context.Background(), match.Filter{}); err == nil {
		t.Fatal("expected first call to fail")
	}

	next.err = nil
	next.items = []match.Match{{ID: 7}}
	items, err := repo.ListRecent(context.Background(), match.Filter{})
	if err != nil {
		t.Fatalf("recovered call: %v", err)
	}
	if len(items) != 1 || items[0].ID != 7 {
		t.Fatalf("expected recovered result, got %v", items)
	}
	if next.calls != 2 {
		t.Fatalf("expected retry to reach the store, got %d calls", next.calls)
	}
}

func TestTeamStatsRepository_ByMatchCachedPerMatch(t *testing.T) {
	next := &countingTeamStatsRepo{stats: []teamstats.MatchStats{{TeamID: 1, TeamName: "Chelsea"}, {TeamID: 2, TeamName: "PSG"}}}
	repo := NewTeamStatsRepository(next, basecache.NewStore(time.Minute))

	for range 3 {
		stats, err := repo.ListByMatch(context.Background(), 42)
		if err != nil {
			t.Fatalf("list by match: %v", err)
		}
		if len(stats) != 2 {
			t.Fatalf("expected both stat lines, got %d", len(stats))
		}
	}

	if next.byMatchCalls != 1 {
		t.Fatalf("expected one store query for repeated reads, got %d", next.byMatchCalls)
	}
}

func TestMatchRepository_CallerCannotMutateCachedSlice(t *testing.T) {
	next := &countingMatchRepo{items: []match.Match{{ID: 1, HomeTeam: "Chelsea"}}}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.ListRecent(context.Background(), match.Filter{})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	first[0].HomeTeam = "mutated"

	second, err := repo.ListRecent(context.Background(), match.Filter{})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second[0].HomeTeam != "Chelsea" {
		t.Fatalf("cached entry was mutated: %q", second[0].HomeTeam)
	}
}
