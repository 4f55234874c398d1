// Package cache memoizes repository reads in TTL stores. Matches and teams
// change once per day upstream, so the catalog store runs a long TTL; the
// per-match and leaderboard queries run a shorter one. Errors are never
// cached.
package cache

import (
	"context"
	"strconv"

	"github.com/clubstats/statsboard/internal/domain/match"
	"github.com/clubstats/statsboard/internal/domain/playerstats"
	"github.com/clubstats/statsboard/internal/domain/team"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
	basecache "github.com/clubstats/statsboard/internal/platform/cache"
)

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListRecent(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	key := "match:recent:" + matchFilterKey(filter)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListRecent(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func matchFilterKey(filter match.Filter) string {
	key := filter.Stage + ":" + strconv.Itoa(filter.Limit)
	if !filter.From.IsZero() {
		key += ":f" + strconv.FormatInt(filter.From.Unix(), 10)
	}
	if !filter.To.IsZero() {
		key += ":t" + strconv.FormatInt(filter.To.Unix(), 10)
	}
	return key
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := "team:id:" + strconv.FormatInt(teamID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type PlayerStatsRepository struct {
	next  playerstats.Repository
	cache *basecache.Store
}

func NewPlayerStatsRepository(next playerstats.Repository, cache *basecache.Store) *PlayerStatsRepository {
	return &PlayerStatsRepository{next: next, cache: cache}
}

func (r *PlayerStatsRepository) ListTopByMatch(ctx context.Context, matchID int64, limit int) ([]playerstats.MatchLeader, error) {
	key := "playerstats:match:" + strconv.FormatInt(matchID, 10) + ":" + strconv.Itoa(limit)
	return r.leaders(ctx, key, func(ctx context.Context) ([]playerstats.MatchLeader, error) {
		return r.next.ListTopByMatch(ctx, matchID, limit)
	})
}

func (r *PlayerStatsRepository) ListTopOverall(ctx context.Context, limit int) ([]playerstats.MatchLeader, error) {
	key := "playerstats:overall:" + strconv.Itoa(limit)
	return r.leaders(ctx, key, func(ctx context.Context) ([]playerstats.MatchLeader, error) {
		return r.next.ListTopOverall(ctx, limit)
	})
}

func (r *PlayerStatsRepository) leaders(ctx context.Context, key string, load func(context.Context) ([]playerstats.MatchLeader, error)) ([]playerstats.MatchLeader, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.MatchLeader(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]playerstats.MatchLeader)
	return append([]playerstats.MatchLeader(nil), items...), nil
}

func (r *PlayerStatsRepository) ListTopGoalkeepers(ctx context.Context, limit int) ([]playerstats.GoalkeeperRank, error) {
	key := "playerstats:goalkeepers:" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListTopGoalkeepers(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.GoalkeeperRank(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]playerstats.GoalkeeperRank)
	return append([]playerstats.GoalkeeperRank(nil), items...), nil
}

type TeamStatsRepository struct {
	next  teamstats.Repository
	cache *basecache.Store
}

func NewTeamStatsRepository(next teamstats.Repository, cache *basecache.Store) *TeamStatsRepository {
	return &TeamStatsRepository{next: next, cache: cache}
}

func (r *TeamStatsRepository) ListByMatch(ctx context.Context, matchID int64) ([]teamstats.MatchStats, error) {
	key := "teamstats:match:" + strconv.FormatInt(matchID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMatch(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return append([]teamstats.MatchStats(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]teamstats.MatchStats)
	return append([]teamstats.MatchStats(nil), items...), nil
}

func (r *TeamStatsRepository) ListMostAggressive(ctx context.Context, limit int) ([]teamstats.AggressionRank, error) {
	key := "teamstats:aggression:" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListMostAggressive(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]teamstats.AggressionRank(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]teamstats.AggressionRank)
	return append([]teamstats.AggressionRank(nil), items...), nil
}

func (r *TeamStatsRepository) ListBestDefensive(ctx context.Context, limit int) ([]teamstats.DefenseRank, error) {
	key := "teamstats:defense:" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBestDefensive(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]teamstats.DefenseRank(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]teamstats.DefenseRank)
	return append([]teamstats.DefenseRank(nil), items...), nil
}

func (r *TeamStatsRepository) ListBestAttacking(ctx context.Context, limit int) ([]teamstats.AttackRank, error) {
	key := "teamstats:attack:" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBestAttacking(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]teamstats.AttackRank(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]teamstats.AttackRank)
	return append([]teamstats.AttackRank(nil), items...), nil
}

func (r *TeamStatsRepository) GetOverview(ctx context.Context, teamID int64) (teamstats.Overview, error) {
	key := "teamstats:overview:" + strconv.FormatInt(teamID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.GetOverview(ctx, teamID)
	})
	if err != nil {
		return teamstats.Overview{}, err
	}

	overview, _ := v.(teamstats.Overview)
	return overview, nil
}

func (r *TeamStatsRepository) ListGoalsByMatch(ctx context.Context, teamID int64) ([]teamstats.GoalsByMatch, error) {
	key := "teamstats:goals:" + strconv.FormatInt(teamID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListGoalsByMatch(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]teamstats.GoalsByMatch(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]teamstats.GoalsByMatch)
	return append([]teamstats.GoalsByMatch(nil), items...), nil
}
