package match

import (
	"fmt"
	"time"
)

// Match is one played or scheduled fixture as written by the upstream
// pipeline. Rows are immutable from this service's point of view.
type Match struct {
	ID         int64
	HomeTeamID int64
	AwayTeamID int64
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	Stage      string
	Date       time.Time
}

func (m Match) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeamID <= 0 || m.AwayTeamID <= 0 {
		return fmt.Errorf("match team references are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match teams must be distinct")
	}

	return nil
}

// Label is the selector text shown in the match dropdown,
// e.g. "Chelsea 3 - 0 PSG".
func (m Match) Label() string {
	return fmt.Sprintf("%s %d - %d %s", m.HomeTeam, m.HomeScore, m.AwayScore, m.AwayTeam)
}

// Filter narrows the recent-matches listing. Zero values mean "no filter".
type Filter struct {
	Stage string
	From  time.Time
	To    time.Time
	Limit int
}
