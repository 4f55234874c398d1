package postgres

import "database/sql"

type teamTableModel struct {
	ID    int64          `db:"team_id"`
	Name  string         `db:"team_name"`
	Group sql.NullString `db:"group_name"`
	Logo  sql.NullString `db:"logo"`
}
