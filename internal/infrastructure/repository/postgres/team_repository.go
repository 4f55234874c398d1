package postgres

import (
	"context"
	"fmt"

	"github.com/clubstats/statsboard/internal/domain/team"
	qb "github.com/clubstats/statsboard/internal/platform/querybuilder"
)

type TeamRepository struct {
	provider *Provider
}

func NewTeamRepository(provider *Provider) *TeamRepository {
	return &TeamRepository{provider: provider}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select("team_id", "team_name", "group_name", "logo").
		From("teams").
		OrderBy("team_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyStoreError(fmt.Errorf("select teams: %w", err))
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return team.Team{}, false, err
	}

	query, args, err := qb.Select("team_id", "team_name", "group_name", "logo").
		From("teams").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, classifyStoreError(fmt.Errorf("select team by id: %w", err))
	}

	return teamFromRow(row), true, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:      row.ID,
		Name:    row.Name,
		Group:   row.Group.String,
		LogoURL: row.Logo.String,
	}
}
