package usecase

import (
	"context"
	"errors"

	"github.com/clubstats/statsboard/internal/domain/match"
	"github.com/clubstats/statsboard/internal/domain/playerstats"
	"github.com/clubstats/statsboard/internal/domain/team"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
)

var errStoreDown = errors.New("connection refused")

type matchRepoStub struct {
	listRecent func(ctx context.Context, filter match.Filter) ([]match.Match, error)
	calls      int
}

func (s *matchRepoStub) ListRecent(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	s.calls++
	if s.listRecent == nil {
		return nil, nil
	}
	return s.listRecent(ctx, filter)
}

type teamRepoStub struct {
	list    func(ctx context.Context) ([]team.Team, error)
	getByID func(ctx context.Context, teamID int64) (team.Team, bool, error)
}

func (s *teamRepoStub) List(ctx context.Context) ([]team.Team, error) {
	if s.list == nil {
		return nil, nil
	}
	return s.list(ctx)
}

func (s *teamRepoStub) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	if s.getByID == nil {
		return team.Team{}, false, nil
	}
	return s.getByID(ctx, teamID)
}

type playerStatsRepoStub struct {
	topByMatch     func(ctx context.Context, matchID int64, limit int) ([]playerstats.MatchLeader, error)
	topOverall     func(ctx context.Context, limit int) ([]playerstats.MatchLeader, error)
	topGoalkeepers func(ctx context.Context, limit int) ([]playerstats.GoalkeeperRank, error)
}

func (s *playerStatsRepoStub) ListTopByMatch(ctx context.Context, matchID int64, limit int) ([]playerstats.MatchLeader, error) {
	if s.topByMatch == nil {
		return nil, nil
	}
	return s.topByMatch(ctx, matchID, limit)
}

func (s *playerStatsRepoStub) ListTopOverall(ctx context.Context, limit int) ([]playerstats.MatchLeader, error) {
	if s.topOverall == nil {
		return nil, nil
	}
	return s.topOverall(ctx, limit)
}

func (s *playerStatsRepoStub) ListTopGoalkeepers(ctx context.Context, limit int) ([]playerstats.GoalkeeperRank, error) {
	if s.topGoalkeepers == nil {
		return nil, nil
	}
	return s.topGoalkeepers(ctx, limit)
}

type teamStatsRepoStub struct {
	listByMatch    func(ctx context.Context, matchID int64) ([]teamstats.MatchStats, error)
	mostAggressive func(ctx context.Context, limit int) ([]teamstats.AggressionRank, error)
	bestDefensive  func(ctx context.Context, limit int) ([]teamstats.DefenseRank, error)
	bestAttacking  func(ctx context.Context, limit int) ([]teamstats.AttackRank, error)
	overview       func(ctx context.Context, teamID int64) (teamstats.Overview, error)
	goalsByMatch   func(ctx context.Context, teamID int64) ([]teamstats.GoalsByMatch, error)
}

func (s *teamStatsRepoStub) ListByMatch(ctx context.Context, matchID int64) ([]teamstats.MatchStats, error) {
	if s.listByMatch == nil {
		return nil, nil
	}
	return s.listByMatch(ctx, matchID)
}

func (s *teamStatsRepoStub) ListMostAggressive(ctx context.Context, limit int) ([]teamstats.AggressionRank, error) {
	if s.mostAggressive == nil {
		return nil, nil
	}
	return s.mostAggressive(ctx, limit)
}

func (s *teamStatsRepoStub) ListBestDefensive(ctx context.Context, limit int) ([]teamstats.DefenseRank, error) {
	if s.bestDefensive == nil {
		return nil, nil
	}
	return s.bestDefensive(ctx, limit)
}

func (s *teamStatsRepoStub) ListBestAttacking(ctx context.Context, limit int) ([]teamstats.AttackRank, error) {
	if s.bestAttacking == nil {
		return nil, nil
	}
	return s.bestAttacking(ctx, limit)
}

func (s *teamStatsRepoStub) GetOverview(ctx context.Context, teamID int64) (teamstats.Overview, error) {
	if s.overview == nil {
		return teamstats.Overview{}, nil
	}
	return s.overview(ctx, teamID)
}

func (s *teamStatsRepoStub) ListGoalsByMatch(ctx context.Context, teamID int64) ([]teamstats.GoalsByMatch, error) {
	if s.goalsByMatch == nil {
		return nil, nil
	}
	return s.goalsByMatch(ctx, teamID)
}
