package usecase

import (
	"context"
	"fmt"

	"github.com/clubstats/statsboard/internal/domain/match"
	"github.com/clubstats/statsboard/internal/domain/playerstats"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
)

const (
	defaultLeaderboardLimit = 5
	maxLeaderboardLimit     = 20
	defaultMatchListLimit   = 50
)

// MatchService backs the Match tab: the match selector plus the two
// widgets rendered for a selected match.
type MatchService struct {
	matchRepo       match.Repository
	teamStatsRepo   teamstats.Repository
	playerStatsRepo playerstats.Repository
}

func NewMatchService(
	matchRepo match.Repository,
	teamStatsRepo teamstats.Repository,
	playerStatsRepo playerstats.Repository,
) *MatchService {
	return &MatchService{
		matchRepo:       matchRepo,
		teamStatsRepo:   teamStatsRepo,
		playerStatsRepo: playerStatsRepo,
	}
}

// ListMatches returns the most recent matches for the selector, newest
// first. An unknown stage yields an empty list.
func (s *MatchService) ListMatches(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, fmt.Errorf("%w: date range end precedes start", ErrInvalidInput)
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultMatchListLimit
	}

	items, err := s.matchRepo.ListRecent(ctx, filter)
	if err != nil {
		return nil, NewQueryError("matches.list_recent", err)
	}

	return items, nil
}

// GetTeamStats returns the per-team stat lines for one match. Unknown
// match ids yield an empty slice.
func (s *MatchService) GetTeamStats(ctx context.Context, matchID int64) ([]teamstats.MatchStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetTeamStats")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}

	items, err := s.teamStatsRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, NewQueryError("team_stats.list_by_match", err)
	}

	return items, nil
}

// ListTopPlayers ranks the match's players by goals+assists.
func (s *MatchService) ListTopPlayers(ctx context.Context, matchID int64, limit int) ([]playerstats.MatchLeader, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListTopPlayers")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}

	items, err := s.playerStatsRepo.ListTopByMatch(ctx, matchID, clampLimit(limit))
	if err != nil {
		return nil, NewQueryError("player_stats.top_by_match", err)
	}

	return items, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		return maxLeaderboardLimit
	}
	return limit
}
