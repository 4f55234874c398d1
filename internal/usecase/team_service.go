package usecase

import (
	"context"
	"fmt"

	"github.com/clubstats/statsboard/internal/domain/team"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
)

// TeamService backs the Team tab: the team selector, the overview cards
// and the chronological goals chart.
type TeamService struct {
	teamRepo      team.Repository
	teamStatsRepo teamstats.Repository
}

func NewTeamService(teamRepo team.Repository, teamStatsRepo teamstats.Repository) *TeamService {
	return &TeamService{
		teamRepo:      teamRepo,
		teamStatsRepo: teamStatsRepo,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, NewQueryError("teams.list", err)
	}

	return items, nil
}

// GetTeam reports exists=false for unknown ids; that is not an error.
func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (team.Team, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, false, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, false, NewQueryError("teams.get_by_id", err)
	}

	return item, exists, nil
}

// GetOverview aggregates the team's whole tournament. A team that never
// played yields a zero-valued overview.
func (s *TeamService) GetOverview(ctx context.Context, teamID int64) (teamstats.Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetOverview")
	defer span.End()

	if teamID <= 0 {
		return teamstats.Overview{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	overview, err := s.teamStatsRepo.GetOverview(ctx, teamID)
	if err != nil {
		return teamstats.Overview{}, NewQueryError("team_stats.overview", err)
	}

	return overview, nil
}

// GoalsByMatch returns the team's goals per match in kickoff order.
func (s *TeamService) GoalsByMatch(ctx context.Context, teamID int64) ([]teamstats.GoalsByMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GoalsByMatch")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	items, err := s.teamStatsRepo.ListGoalsByMatch(ctx, teamID)
	if err != nil {
		return nil, NewQueryError("team_stats.goals_by_match", err)
	}

	return items, nil
}
