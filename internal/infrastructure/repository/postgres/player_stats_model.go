package postgres

import "database/sql"

type matchLeaderRowModel struct {
	PlayerID         int64          `db:"player_id"`
	Name             string         `db:"name"`
	TeamName         string         `db:"team_name"`
	Logo             sql.NullString `db:"logo"`
	Goals            int            `db:"goals"`
	Assists          int            `db:"assists"`
	GoalInvolvements int            `db:"goal_involvements"`
}

type goalkeeperRowModel struct {
	PlayerID      int64           `db:"player_id"`
	Name          string          `db:"name"`
	TeamName      string          `db:"team_name"`
	Logo          sql.NullString  `db:"logo"`
	Matches       int             `db:"matches"`
	Saves         int             `db:"saves"`
	GoalsConceded int             `db:"goals_conceded"`
	SavePct       sql.NullFloat64 `db:"save_pct"`
}
