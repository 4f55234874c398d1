package postgres

import (
	"context"
	"fmt"

	"github.com/clubstats/statsboard/internal/domain/teamstats"
	qb "github.com/clubstats/statsboard/internal/platform/querybuilder"
)

// Score components read the joined matches row to attribute goals and wins
// to the right side of the fixture.
const (
	goalsScoredExpr = "SUM(CASE WHEN ts.team_id = m.home_team_id THEN m.home_score" +
		" WHEN ts.team_id = m.away_team_id THEN m.away_score ELSE 0 END)"
	goalsConcededExpr = "SUM(CASE WHEN ts.team_id = m.home_team_id THEN m.away_score" +
		" WHEN ts.team_id = m.away_team_id THEN m.home_score ELSE 0 END)"
	winsExpr = "SUM(CASE WHEN ts.team_id = m.home_team_id AND m.home_score > m.away_score THEN 1" +
		" WHEN ts.team_id = m.away_team_id AND m.away_score > m.home_score THEN 1 ELSE 0 END)"

	defensiveActionsExpr = "(SUM(opp.offsides) * 2.0 + SUM(ts.yellow_cards) * 1.0" +
		" + SUM(ts.blocked_shots) * 1.5 + SUM(ts.total_tackles) * 1.0" +
		" + SUM(ts.effective_tackles) * 2.5 + SUM(ts.interceptions) * 1.5" +
		" + SUM(ts.total_clearance) * 1.0 + SUM(ts.effective_clearance) * 2.5)"

	attackingActionsExpr = "(SUM(ts.total_shots) * 1.5 + SUM(ts.shots_on_target) * 2.0" +
		" + SUM(ts.total_crosses) * 1.0 + SUM(ts.accurate_crosses) * 2.0" +
		" + SUM(ts.total_long_balls) * 0.5 + SUM(ts.accurate_long_balls) * 1.0" +
		" + SUM(ts.corners) * 1.0 + AVG(ts.possession_pct) * 0.5 + AVG(ts.pass_pct) * 0.5" +
		" + " + goalsScoredExpr + " * 4.0 + " + winsExpr + " * 3.0)"
)

type TeamStatsRepository struct {
	provider *Provider
}

func NewTeamStatsRepository(provider *Provider) *TeamStatsRepository {
	return &TeamStatsRepository{provider: provider}
}

// ListByMatch returns both stat lines for one fixture, home side first.
func (r *TeamStatsRepository) ListByMatch(ctx context.Context, matchID int64) ([]teamstats.MatchStats, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(
		"ts.team_id",
		"t.team_name",
		"ts.possession_pct",
		"ts.pass_pct",
		"ts.total_shots",
		"ts.shots_on_target",
		"ts.fouls",
		"ts.yellow_cards",
		"ts.red_cards",
		"ts.corners",
		"ts.offsides",
	).
		From("team_stats ts"+
			" JOIN teams t ON ts.team_id = t.team_id"+
			" JOIN matches m ON ts.match_id = m.id").
		Where(qb.Eq("ts.match_id", matchID)).
		OrderBy("CASE WHEN ts.team_id = m.home_team_id THEN 0 ELSE 1 END").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match team stats query: %w", err)
	}

	var rows []matchStatsRowModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyStoreError(fmt.Errorf("select match team stats: %w", err))
	}

	out := make([]teamstats.MatchStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamstats.MatchStats{
			TeamID:        row.TeamID,
			TeamName:      row.TeamName,
			PossessionPct: row.PossessionPct,
			PassPct:       row.PassPct,
			TotalShots:    row.TotalShots,
			ShotsOnTarget: row.ShotsOnTarget,
			Fouls:         row.Fouls,
			YellowCards:   row.YellowCards,
			RedCards:      row.RedCards,
			Corners:       row.Corners,
			Offsides:      row.Offsides,
		})
	}

	return out, nil
}

// ListMostAggressive weights tackles 1, fouls 2, yellows 3, reds 5 and
// normalizes by matches played.
func (r *TeamStatsRepository) ListMostAggressive(ctx context.Context, limit int) ([]teamstats.AggressionRank, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(
		"ts.team_id",
		"t.team_name",
		"t.logo",
		"COUNT(DISTINCT ts.match_id) AS matches_played",
		"COALESCE(SUM(ts.total_tackles), 0) AS total_tackles",
		"COALESCE(SUM(ts.fouls), 0) AS fouls",
		"COALESCE(SUM(ts.yellow_cards), 0) AS yellow_cards",
		"COALESCE(SUM(ts.red_cards), 0) AS red_cards",
		"ROUND((SUM(ts.total_tackles) * 1 + SUM(ts.fouls) * 2"+
			" + SUM(ts.yellow_cards) * 3 + SUM(ts.red_cards) * 5)::numeric"+
			" / NULLIF(COUNT(DISTINCT ts.match_id), 0), 2) AS score_per_match",
	).
		From("team_stats ts JOIN teams t ON ts.team_id = t.team_id").
		GroupBy("ts.team_id", "t.team_name", "t.logo").
		OrderBy("score_per_match DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select aggression ranking query: %w", err)
	}

	var rows []aggressionRowModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyStoreError(fmt.Errorf("select aggression ranking: %w", err))
	}

	out := make([]teamstats.AggressionRank, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamstats.AggressionRank{
			TeamID:        row.TeamID,
			TeamName:      row.TeamName,
			LogoURL:       row.Logo.String,
			MatchesPlayed: row.MatchesPlayed,
			Tackles:       row.Tackles,
			Fouls:         row.Fouls,
			YellowCards:   row.YellowCards,
			RedCards:      row.RedCards,
			ScorePerMatch: row.ScorePerMatch.Float64,
		})
	}

	return out, nil
}

// ListBestDefensive joins each stat line against the opponent's line in the
// same fixture so offsides drawn count for the defending side. The score
// discounts goals conceded twice and divides by conceded plus one.
func (r *TeamStatsRepository) ListBestDefensive(ctx context.Context, limit int) ([]teamstats.DefenseRank, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(
		"ts.team_id",
		"t.team_name",
		"t.logo",
		"COALESCE(SUM(ts.yellow_cards), 0) AS yellow_cards",
		"COALESCE(SUM(ts.blocked_shots), 0) AS blocked_shots",
		"COALESCE(SUM(ts.total_tackles), 0) AS total_tackles",
		"COALESCE(SUM(ts.effective_tackles), 0) AS effective_tackles",
		"COALESCE(SUM(ts.interceptions), 0) AS interceptions",
		"COALESCE(SUM(ts.total_clearance), 0) AS total_clearance",
		"COALESCE(SUM(ts.effective_clearance), 0) AS effective_clearance",
		"COALESCE(SUM(opp.offsides), 0) AS offsides_won",
		goalsConcededExpr+" AS goals_conceded",
		"("+defensiveActionsExpr+" - "+goalsConcededExpr+" * 2.0)"+
			" / (1 + "+goalsConcededExpr+") AS defensive_score",
	).
		From("team_stats ts"+
			" JOIN teams t ON ts.team_id = t.team_id"+
			" JOIN matches m ON ts.match_id = m.id"+
			" JOIN team_stats opp ON ts.match_id = opp.match_id AND ts.team_id != opp.team_id").
		GroupBy("ts.team_id", "t.team_name", "t.logo").
		OrderBy("defensive_score DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select defense ranking query: %w", err)
	}

	var rows []defenseRowModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyStoreError(fmt.Errorf("select defense ranking: %w", err))
	}

	out := make([]teamstats.DefenseRank, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamstats.DefenseRank{
			TeamID:              row.TeamID,
			TeamName:            row.TeamName,
			LogoURL:             row.Logo.String,
			YellowCards:         row.YellowCards,
			BlockedShots:        row.BlockedShots,
			Tackles:             row.Tackles,
			EffectiveTackles:    row.EffectiveTackles,
			Interceptions:       row.Interceptions,
			Clearances:          row.Clearances,
			EffectiveClearances: row.EffectiveClearances,
			OffsidesWon:         row.OffsidesWon,
			GoalsConceded:       row.GoalsConceded,
			Score:               row.Score.Float64,
		})
	}

	return out, nil
}

// ListBestAttacking weights shots, crossing, long balls, possession, goals
// and wins, normalized by matches played.
func (r *TeamStatsRepository) ListBestAttacking(ctx context.Context, limit int) ([]teamstats.AttackRank, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(
		"ts.team_id",
		"t.team_name",
		"t.logo",
		"COUNT(*) AS matches_played",
		"COALESCE(SUM(ts.total_shots), 0) AS total_shots",
		"COALESCE(SUM(ts.shots_on_target), 0) AS shots_on_target",
		"COALESCE(SUM(ts.corners), 0) AS corners",
		goalsScoredExpr+" AS goals_scored",
		winsExpr+" AS wins",
		"AVG(ts.possession_pct) AS avg_possession",
		"AVG(ts.pass_pct) AS avg_pass_pct",
		attackingActionsExpr+" / COUNT(*) AS score_per_match",
	).
		From("team_stats ts"+
			" JOIN teams t ON ts.team_id = t.team_id"+
			" JOIN matches m ON ts.match_id = m.id").
		GroupBy("ts.team_id", "t.team_name", "t.logo").
		OrderBy("score_per_match DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select attack ranking query: %w", err)
	}

	var rows []attackRowModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyStoreError(fmt.Errorf("select attack ranking: %w", err))
	}

	out := make([]teamstats.AttackRank, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamstats.AttackRank{
			TeamID:           row.TeamID,
			TeamName:         row.TeamName,
			LogoURL:          row.Logo.String,
			MatchesPlayed:    row.MatchesPlayed,
			Shots:            row.Shots,
			ShotsOnTarget:    row.ShotsOnTarget,
			Corners:          row.Corners,
			GoalsScored:      row.GoalsScored,
			Wins:             row.Wins,
			AvgPossessionPct: row.AvgPossessionPct.Float64,
			AvgPassPct:       row.AvgPassPct.Float64,
			ScorePerMatch:    row.ScorePerMatch.Float64,
		})
	}

	return out, nil
}

// GetOverview aggregates one team's whole tournament. A team with no stat
// lines yields a zero-valued overview, not an error.
func (r *TeamStatsRepository) GetOverview(ctx context.Context, teamID int64) (teamstats.Overview, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return teamstats.Overview{}, err
	}

	query, args, err := qb.Select(
		"COUNT(*) AS matches",
		winsExpr+" AS wins",
		goalsScoredExpr+" AS goals_scored",
		goalsConcededExpr+" AS goals_conceded",
		"SUM(ts.corners) AS corners",
		"AVG(ts.possession_pct) AS avg_possession",
		"AVG(ts.pass_pct) AS avg_pass_pct",
		"AVG(ts.total_shots) AS avg_shots",
	).
		From("team_stats ts JOIN matches m ON ts.match_id = m.id").
		Where(qb.Eq("ts.team_id", teamID)).
		ToSQL()
	if err != nil {
		return teamstats.Overview{}, fmt.Errorf("build select team overview query: %w", err)
	}

	var row overviewRowModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		return teamstats.Overview{}, classifyStoreError(fmt.Errorf("select team overview: %w", err))
	}

	return teamstats.Overview{
		Matches:          row.Matches,
		Wins:             int(row.Wins.Int64),
		GoalsScored:      int(row.GoalsScored.Int64),
		GoalsConceded:    int(row.GoalsConceded.Int64),
		Corners:          int(row.Corners.Int64),
		AvgPossessionPct: row.AvgPossessionPct.Float64,
		AvgPassPct:       row.AvgPassPct.Float64,
		AvgShots:         row.AvgShots.Float64,
	}, nil
}

// ListGoalsByMatch numbers the team's fixtures chronologically starting
// at one.
func (r *TeamStatsRepository) ListGoalsByMatch(ctx context.Context, teamID int64) ([]teamstats.GoalsByMatch, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(
		"ROW_NUMBER() OVER (ORDER BY m.date) AS match_number",
		"CASE WHEN ts.team_id = m.home_team_id THEN m.home_score ELSE m.away_score END AS goals_scored",
	).
		From("team_stats ts JOIN matches m ON ts.match_id = m.id").
		Where(qb.Eq("ts.team_id", teamID)).
		OrderBy("m.date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals by match query: %w", err)
	}

	var rows []goalsByMatchRowModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyStoreError(fmt.Errorf("select goals by match: %w", err))
	}

	out := make([]teamstats.GoalsByMatch, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamstats.GoalsByMatch{
			MatchNumber: row.MatchNumber,
			GoalsScored: row.GoalsScored,
		})
	}

	return out, nil
}
