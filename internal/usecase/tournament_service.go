package usecase

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/clubstats/statsboard/internal/domain/playerstats"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
	"github.com/clubstats/statsboard/internal/platform/logging"
)

const leaderboardWorkers = 5

// Leaderboards holds the five tournament-wide widgets. Each widget carries
// its own error so a single failed query degrades only its own table.
type Leaderboards struct {
	TopPlayers        []playerstats.MatchLeader
	TopPlayersErr     error
	TopGoalkeepers    []playerstats.GoalkeeperRank
	TopGoalkeepersErr error
	MostAggressive    []teamstats.AggressionRank
	MostAggressiveErr error
	BestDefensive     []teamstats.DefenseRank
	BestDefensiveErr  error
	BestAttacking     []teamstats.AttackRank
	BestAttackingErr  error
}

// TournamentService backs the Tournament tab.
type TournamentService struct {
	playerStatsRepo playerstats.Repository
	teamStatsRepo   teamstats.Repository
	logger          *logging.Logger
}

func NewTournamentService(
	playerStatsRepo playerstats.Repository,
	teamStatsRepo teamstats.Repository,
	logger *logging.Logger,
) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TournamentService{
		playerStatsRepo: playerStatsRepo,
		teamStatsRepo:   teamStatsRepo,
		logger:          logger,
	}
}

// Leaderboards loads all five widgets concurrently on a worker pool.
// Query failures are recorded per widget and logged; only a pool
// breakdown itself is returned as an error.
func (s *TournamentService) Leaderboards(ctx context.Context, limit int) (Leaderboards, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Leaderboards")
	defer span.End()

	limit = clampLimit(limit)

	pool, err := ants.NewPool(leaderboardWorkers)
	if err != nil {
		return Leaderboards{}, NewQueryError("tournament.leaderboards", err)
	}
	defer pool.Release()

	var out Leaderboards
	var wg sync.WaitGroup

	tasks := []func(){
		func() {
			out.TopPlayers, out.TopPlayersErr = s.topPlayers(ctx, limit)
		},
		func() {
			out.TopGoalkeepers, out.TopGoalkeepersErr = s.topGoalkeepers(ctx, limit)
		},
		func() {
			out.MostAggressive, out.MostAggressiveErr = s.mostAggressive(ctx, limit)
		},
		func() {
			out.BestDefensive, out.BestDefensiveErr = s.bestDefensive(ctx, limit)
		},
		func() {
			out.BestAttacking, out.BestAttackingErr = s.bestAttacking(ctx, limit)
		},
	}

	for _, task := range tasks {
		task := task
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			task()
		}); err != nil {
			wg.Done()
			return Leaderboards{}, NewQueryError("tournament.leaderboards", err)
		}
	}
	wg.Wait()

	for _, widgetErr := range []error{
		out.TopPlayersErr, out.TopGoalkeepersErr, out.MostAggressiveErr,
		out.BestDefensiveErr, out.BestAttackingErr,
	} {
		if widgetErr != nil {
			s.logger.WarnContext(ctx, "leaderboard widget degraded", "error", widgetErr)
		}
	}

	return out, nil
}

func (s *TournamentService) topPlayers(ctx context.Context, limit int) ([]playerstats.MatchLeader, error) {
	items, err := s.playerStatsRepo.ListTopOverall(ctx, limit)
	if err != nil {
		return nil, NewQueryError("player_stats.top_overall", err)
	}
	return items, nil
}

func (s *TournamentService) topGoalkeepers(ctx context.Context, limit int) ([]playerstats.GoalkeeperRank, error) {
	items, err := s.playerStatsRepo.ListTopGoalkeepers(ctx, limit)
	if err != nil {
		return nil, NewQueryError("player_stats.top_goalkeepers", err)
	}
	return items, nil
}

func (s *TournamentService) mostAggressive(ctx context.Context, limit int) ([]teamstats.AggressionRank, error) {
	items, err := s.teamStatsRepo.ListMostAggressive(ctx, limit)
	if err != nil {
		return nil, NewQueryError("team_stats.most_aggressive", err)
	}
	return items, nil
}

func (s *TournamentService) bestDefensive(ctx context.Context, limit int) ([]teamstats.DefenseRank, error) {
	items, err := s.teamStatsRepo.ListBestDefensive(ctx, limit)
	if err != nil {
		return nil, NewQueryError("team_stats.best_defensive", err)
	}
	return items, nil
}

func (s *TournamentService) bestAttacking(ctx context.Context, limit int) ([]teamstats.AttackRank, error) {
	items, err := s.teamStatsRepo.ListBestAttacking(ctx, limit)
	if err != nil {
		return nil, NewQueryError("team_stats.best_attacking", err)
	}
	return items, nil
}
