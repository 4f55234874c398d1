package postgres

import "database/sql"

type matchStatsRowModel struct {
	TeamID        int64   `db:"team_id"`
	TeamName      string  `db:"team_name"`
	PossessionPct float64 `db:"possession_pct"`
	PassPct       float64 `db:"pass_pct"`
	TotalShots    int     `db:"total_shots"`
	ShotsOnTarget int     `db:"shots_on_target"`
	Fouls         int     `db:"fouls"`
	YellowCards   int     `db:"yellow_cards"`
	RedCards      int     `db:"red_cards"`
	Corners       int     `db:"corners"`
	Offsides      int     `db:"offsides"`
}

type aggressionRowModel struct {
	TeamID        int64           `db:"team_id"`
	TeamName      string          `db:"team_name"`
	Logo          sql.NullString  `db:"logo"`
	MatchesPlayed int             `db:"matches_played"`
	Tackles       int             `db:"total_tackles"`
	Fouls         int             `db:"fouls"`
	YellowCards   int             `db:"yellow_cards"`
	RedCards      int             `db:"red_cards"`
	ScorePerMatch sql.NullFloat64 `db:"score_per_match"`
}

type defenseRowModel struct {
	TeamID              int64           `db:"team_id"`
	TeamName            string          `db:"team_name"`
	Logo                sql.NullString  `db:"logo"`
	YellowCards         int             `db:"yellow_cards"`
	BlockedShots        int             `db:"blocked_shots"`
	Tackles             int             `db:"total_tackles"`
	EffectiveTackles    int             `db:"effective_tackles"`
	Interceptions       int             `db:"interceptions"`
	Clearances          int             `db:"total_clearance"`
	EffectiveClearances int             `db:"effective_clearance"`
	OffsidesWon         int             `db:"offsides_won"`
	GoalsConceded       int             `db:"goals_conceded"`
	Score               sql.NullFloat64 `db:"defensive_score"`
}

type attackRowModel struct {
	TeamID           int64           `db:"team_id"`
	TeamName         string          `db:"team_name"`
	Logo             sql.NullString  `db:"logo"`
	MatchesPlayed    int             `db:"matches_played"`
	Shots            int             `db:"total_shots"`
	ShotsOnTarget    int             `db:"shots_on_target"`
	Corners          int             `db:"corners"`
	GoalsScored      int             `db:"goals_scored"`
	Wins             int             `db:"wins"`
	AvgPossessionPct sql.NullFloat64 `db:"avg_possession"`
	AvgPassPct       sql.NullFloat64 `db:"avg_pass_pct"`
	ScorePerMatch    sql.NullFloat64 `db:"score_per_match"`
}

type overviewRowModel struct {
	Matches          int             `db:"matches"`
	Wins             sql.NullInt64   `db:"wins"`
	GoalsScored      sql.NullInt64   `db:"goals_scored"`
	GoalsConceded    sql.NullInt64   `db:"goals_conceded"`
	Corners          sql.NullInt64   `db:"corners"`
	AvgPossessionPct sql.NullFloat64 `db:"avg_possession"`
	AvgPassPct       sql.NullFloat64 `db:"avg_pass_pct"`
	AvgShots         sql.NullFloat64 `db:"avg_shots"`
}

type goalsByMatchRowModel struct {
	MatchNumber int `db:"match_number"`
	GoalsScored int `db:"goals_scored"`
}
