package postgres

import (
	"context"
	"fmt"

	"github.com/clubstats/statsboard/internal/domain/match"
	qb "github.com/clubstats/statsboard/internal/platform/querybuilder"
)

type MatchRepository struct {
	provider *Provider
}

func NewMatchRepository(provider *Provider) *MatchRepository {
	return &MatchRepository{provider: provider}
}

func (r *MatchRepository) ListRecent(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	builder := qb.Select(
		"id",
		"home_team_id",
		"away_team_id",
		"home_team",
		"away_team",
		"home_score",
		"away_score",
		"stage",
		"date",
	).From("matches")

	conditions := make([]qb.Condition, 0, 3)
	if filter.Stage != "" {
		conditions = append(conditions, qb.Eq("stage", filter.Stage))
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, qb.Gte("date", filter.From))
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, qb.Lte("date", filter.To))
	}
	if len(conditions) > 0 {
		builder = builder.Where(conditions...)
	}

	query, args, err := builder.
		OrderBy("date DESC").
		Limit(filter.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent matches query: %w", err)
	}

	var rows []matchTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyStoreError(fmt.Errorf("select recent matches: %w", err))
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			ID:         row.ID,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			HomeTeam:   row.HomeTeam,
			AwayTeam:   row.AwayTeam,
			HomeScore:  row.HomeScore,
			AwayScore:  row.AwayScore,
			Stage:      row.Stage,
			Date:       row.Date,
		})
	}

	return out, nil
}
