package postgres

import (
	"context"
	"fmt"

	"github.com/clubstats/statsboard/internal/domain/playerstats"
	qb "github.com/clubstats/statsboard/internal/platform/querybuilder"
)

const playerJoins = "player_stats ps" +
	" JOIN players p ON ps.player_id = p.player_id" +
	" JOIN teams t ON p.team_id = t.team_id"

type PlayerStatsRepository struct {
	provider *Provider
}

func NewPlayerStatsRepository(provider *Provider) *PlayerStatsRepository {
	return &PlayerStatsRepository{provider: provider}
}

func (r *PlayerStatsRepository) ListTopByMatch(ctx context.Context, matchID int64, limit int) ([]playerstats.MatchLeader, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(
		"p.player_id",
		"p.full_name AS name",
		"t.team_name",
		"t.logo",
		"ps.goals",
		"ps.assists",
		"(ps.goals + ps.assists) AS goal_involvements",
	).
		From(playerJoins).
		Where(qb.Eq("ps.match_id", matchID)).
		OrderBy("goal_involvements DESC", "ps.goals DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match leaders query: %w", err)
	}

	var rows []matchLeaderRowModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyStoreError(fmt.Errorf("select match leaders: %w", err))
	}

	return matchLeadersFromRows(rows), nil
}

func (r *PlayerStatsRepository) ListTopOverall(ctx context.Context, limit int) ([]playerstats.MatchLeader, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(
		"p.player_id",
		"p.full_name AS name",
		"t.team_name",
		"t.logo",
		"COALESCE(SUM(ps.goals), 0) AS goals",
		"COALESCE(SUM(ps.assists), 0) AS assists",
		"COALESCE(SUM(ps.goals + ps.assists), 0) AS goal_involvements",
	).
		From(playerJoins).
		GroupBy("p.player_id", "p.full_name", "t.team_name", "t.logo").
		OrderBy("goal_involvements DESC", "goals DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select overall leaders query: %w", err)
	}

	var rows []matchLeaderRowModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyStoreError(fmt.Errorf("select overall leaders: %w", err))
	}

	return matchLeadersFromRows(rows), nil
}

// ListTopGoalkeepers ranks keepers by save percentage. Saves and goals
// conceded live in the jsonb stats document written by the upstream
// pipeline; keepers without a recorded save are excluded so outfield
// players never rank.
func (r *PlayerStatsRepository) ListTopGoalkeepers(ctx context.Context, limit int) ([]playerstats.GoalkeeperRank, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(
		"p.player_id",
		"p.full_name AS name",
		"t.team_name",
		"t.logo",
		"COUNT(DISTINCT ps.match_id) AS matches",
		"COALESCE(SUM((ps.stats->>'saves')::int), 0) AS saves",
		"COALESCE(SUM((ps.stats->>'goalsConceded')::int), 0) AS goals_conceded",
		"ROUND((SUM((ps.stats->>'saves')::float)"+
			" / NULLIF(SUM((ps.stats->>'saves')::float + (ps.stats->>'goalsConceded')::float), 0))::numeric, 2) AS save_pct",
	).
		From(playerJoins).
		Where(
			qb.Expr("ps.stats->>'saves' IS NOT NULL"),
			qb.Expr("(ps.stats->>'saves')::float > 0"),
		).
		GroupBy("p.player_id", "p.full_name", "t.team_name", "t.logo").
		Having(qb.Expr("SUM((ps.stats->>'saves')::float + (ps.stats->>'goalsConceded')::float) > 0")).
		OrderBy("save_pct DESC", "saves DESC", "matches DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goalkeeper ranking query: %w", err)
	}

	var rows []goalkeeperRowModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyStoreError(fmt.Errorf("select goalkeeper ranking: %w", err))
	}

	out := make([]playerstats.GoalkeeperRank, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.GoalkeeperRank{
			PlayerID:      row.PlayerID,
			Name:          row.Name,
			TeamName:      row.TeamName,
			TeamLogoURL:   row.Logo.String,
			Matches:       row.Matches,
			Saves:         row.Saves,
			GoalsConceded: row.GoalsConceded,
			SavePct:       row.SavePct.Float64,
		})
	}

	return out, nil
}

func matchLeadersFromRows(rows []matchLeaderRowModel) []playerstats.MatchLeader {
	out := make([]playerstats.MatchLeader, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.MatchLeader{
			PlayerID:         row.PlayerID,
			Name:             row.Name,
			TeamName:         row.TeamName,
			TeamLogoURL:      row.Logo.String,
			Goals:            row.Goals,
			Assists:          row.Assists,
			GoalInvolvements: row.GoalInvolvements,
		})
	}

	return out
}
