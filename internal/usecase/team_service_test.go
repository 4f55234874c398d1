package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/clubstats/statsboard/internal/domain/team"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
)

func TestTeamService_GetTeam_UnknownIDIsNotAnError(t *testing.T) {
	t.Parallel()

	repo := &teamRepoStub{
		getByID: func(context.Context, int64) (team.Team, bool, error) {
			return team.Team{}, false, nil
		},
	}
	service := NewTeamService(repo, &teamStatsRepoStub{})

	_, exists, err := service.GetTeam(context.Background(), 404)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for unknown id")
	}
}

func TestTeamService_GetOverview_WrapsStoreFailure(t *testing.T) {
	t.Parallel()

	statsRepo := &teamStatsRepoStub{
		overview: func(context.Context, int64) (teamstats.Overview, error) {
			return teamstats.Overview{}, errStoreDown
		},
	}
	service := NewTeamService(&teamRepoStub{}, statsRepo)

	_, err := service.GetOverview(context.Background(), 7)
	qe, ok := AsQueryError(err)
	if !ok {
		t.Fatalf("expected query error, got %v", err)
	}
	if qe.Operation != "team_stats.overview" {
		t.Fatalf("unexpected operation: %s", qe.Operation)
	}
}

func TestTeamService_GoalsByMatch_PreservesOrder(t *testing.T) {
	t.Parallel()

	statsRepo := &teamStatsRepoStub{
		goalsByMatch: func(context.Context, int64) ([]teamstats.GoalsByMatch, error) {
			return []teamstats.GoalsByMatch{
				{MatchNumber: 1, GoalsScored: 2},
				{MatchNumber: 2, GoalsScored: 0},
				{MatchNumber: 3, GoalsScored: 4},
			}, nil
		},
	}
	service := NewTeamService(&teamRepoStub{}, statsRepo)

	items, err := service.GoalsByMatch(context.Background(), 7)
	if err != nil {
		t.Fatalf("goals by match: %v", err)
	}
	for i, item := range items {
		if item.MatchNumber != i+1 {
			t.Fatalf("order broken at index %d: %+v", i, item)
		}
	}
}

func TestTeamService_RejectsNonPositiveIDs(t *testing.T) {
	t.Parallel()

	service := NewTeamService(&teamRepoStub{}, &teamStatsRepoStub{})

	if _, _, err := service.GetTeam(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("get team: expected invalid input, got %v", err)
	}
	if _, err := service.GetOverview(context.Background(), -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("get overview: expected invalid input, got %v", err)
	}
	if _, err := service.GoalsByMatch(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("goals by match: expected invalid input, got %v", err)
	}
}
