package playerstats

// MatchLeader is one row of a goals+assists leaderboard, either for a
// single match or aggregated across the tournament.
type MatchLeader struct {
	PlayerID         int64
	Name             string
	TeamName         string
	TeamLogoURL      string
	Goals            int
	Assists          int
	GoalInvolvements int
}

// GoalkeeperRank ranks keepers by save percentage:
// saves / (saves + goals conceded). Keepers without a recorded save are
// excluded upstream in the query.
type GoalkeeperRank struct {
	PlayerID      int64
	Name          string
	TeamName      string
	TeamLogoURL   string
	Matches       int
	Saves         int
	GoalsConceded int
	SavePct       float64
}
