package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clubstats/statsboard/internal/domain/playerstats"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
)

func TestTournamentService_Leaderboards_LoadsAllWidgets(t *testing.T) {
	t.Parallel()

	playerRepo := &playerStatsRepoStub{
		topOverall: func(_ context.Context, limit int) ([]playerstats.MatchLeader, error) {
			require.Equal(t, defaultLeaderboardLimit, limit)
			return []playerstats.MatchLeader{{Name: "Cole Palmer", Goals: 3, Assists: 2, GoalInvolvements: 5}}, nil
		},
		topGoalkeepers: func(context.Context, int) ([]playerstats.GoalkeeperRank, error) {
			return []playerstats.GoalkeeperRank{{Name: "Yassine Bounou", Saves: 21, SavePct: 0.84}}, nil
		},
	}
	teamRepo := &teamStatsRepoStub{
		mostAggressive: func(context.Context, int) ([]teamstats.AggressionRank, error) {
			return []teamstats.AggressionRank{{TeamName: "Al Hilal", ScorePerMatch: 61.5}}, nil
		},
		bestDefensive: func(context.Context, int) ([]teamstats.DefenseRank, error) {
			return []teamstats.DefenseRank{{TeamName: "Fluminense", Score: 102.3}}, nil
		},
		bestAttacking: func(context.Context, int) ([]teamstats.AttackRank, error) {
			return []teamstats.AttackRank{{TeamName: "Chelsea", ScorePerMatch: 88.1}}, nil
		},
	}

	service := NewTournamentService(playerRepo, teamRepo, nil)
	boards, err := service.Leaderboards(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, boards.TopPlayers, 1)
	require.Len(t, boards.TopGoalkeepers, 1)
	require.Len(t, boards.MostAggressive, 1)
	require.Len(t, boards.BestDefensive, 1)
	require.Len(t, boards.BestAttacking, 1)
	require.NoError(t, boards.TopPlayersErr)
	require.NoError(t, boards.TopGoalkeepersErr)
	require.NoError(t, boards.MostAggressiveErr)
	require.NoError(t, boards.BestDefensiveErr)
	require.NoError(t, boards.BestAttackingErr)
}

func TestTournamentService_Leaderboards_IsolatesWidgetFailures(t *testing.T) {
	t.Parallel()

	playerRepo := &playerStatsRepoStub{
		topOverall: func(context.Context, int) ([]playerstats.MatchLeader, error) {
			return nil, errStoreDown
		},
		topGoalkeepers: func(context.Context, int) ([]playerstats.GoalkeeperRank, error) {
			return []playerstats.GoalkeeperRank{{Name: "Gianluigi Donnarumma"}}, nil
		},
	}
	teamRepo := &teamStatsRepoStub{}

	service := NewTournamentService(playerRepo, teamRepo, nil)
	boards, err := service.Leaderboards(context.Background(), 5)
	if err != nil {
		t.Fatalf("leaderboards: %v", err)
	}

	qe, ok := AsQueryError(boards.TopPlayersErr)
	if !ok {
		t.Fatalf("expected query error, got %v", boards.TopPlayersErr)
	}
	if qe.Operation != "player_stats.top_overall" {
		t.Fatalf("unexpected operation: %s", qe.Operation)
	}
	if !errors.Is(boards.TopPlayersErr, errStoreDown) {
		t.Fatalf("cause not preserved: %v", boards.TopPlayersErr)
	}

	if boards.TopGoalkeepersErr != nil || len(boards.TopGoalkeepers) != 1 {
		t.Fatalf("healthy widget affected: err=%v rows=%d", boards.TopGoalkeepersErr, len(boards.TopGoalkeepers))
	}
}

func TestTournamentService_Leaderboards_TotalOutageDegradesEveryWidget(t *testing.T) {
	t.Parallel()

	playerRepo := &playerStatsRepoStub{
		topOverall: func(context.Context, int) ([]playerstats.MatchLeader, error) {
			return nil, ErrStoreUnavailable
		},
		topGoalkeepers: func(context.Context, int) ([]playerstats.GoalkeeperRank, error) {
			return nil, ErrStoreUnavailable
		},
	}
	teamRepo := &teamStatsRepoStub{
		mostAggressive: func(context.Context, int) ([]teamstats.AggressionRank, error) {
			return nil, ErrStoreUnavailable
		},
		bestDefensive: func(context.Context, int) ([]teamstats.DefenseRank, error) {
			return nil, ErrStoreUnavailable
		},
		bestAttacking: func(context.Context, int) ([]teamstats.AttackRank, error) {
			return nil, ErrStoreUnavailable
		},
	}

	service := NewTournamentService(playerRepo, teamRepo, nil)
	boards, err := service.Leaderboards(context.Background(), 5)
	if err != nil {
		t.Fatalf("leaderboards must not fail outright: %v", err)
	}

	for _, widgetErr := range []error{
		boards.TopPlayersErr, boards.TopGoalkeepersErr, boards.MostAggressiveErr,
		boards.BestDefensiveErr, boards.BestAttackingErr,
	} {
		if !errors.Is(widgetErr, ErrStoreUnavailable) {
			t.Fatalf("expected store-unavailable on every widget, got %v", widgetErr)
		}
	}
}
