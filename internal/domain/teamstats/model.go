package teamstats

// MatchStats is one team's stat line for a single match.
type MatchStats struct {
	TeamID        int64
	TeamName      string
	PossessionPct float64
	PassPct       float64
	TotalShots    int
	ShotsOnTarget int
	Fouls         int
	YellowCards   int
	RedCards      int
	Corners       int
	Offsides      int
}

// AggressionRank weights tackles (1), fouls (2), yellow cards (3) and red
// cards (5), normalized per match played.
type AggressionRank struct {
	TeamID        int64
	TeamName      string
	LogoURL       string
	MatchesPlayed int
	Tackles       int
	Fouls         int
	YellowCards   int
	RedCards      int
	ScorePerMatch float64
}

// DefenseRank scores defensive actions and discounts goals conceded.
type DefenseRank struct {
	TeamID              int64
	TeamName            string
	LogoURL             string
	YellowCards         int
	BlockedShots        int
	Tackles             int
	EffectiveTackles    int
	Interceptions       int
	Clearances          int
	EffectiveClearances int
	OffsidesWon         int
	GoalsConceded       int
	Score               float64
}

// AttackRank scores shots, crossing, possession and results per match.
type AttackRank struct {
	TeamID           int64
	TeamName         string
	LogoURL          string
	MatchesPlayed    int
	Shots            int
	ShotsOnTarget    int
	Corners          int
	GoalsScored      int
	Wins             int
	AvgPossessionPct float64
	AvgPassPct       float64
	ScorePerMatch    float64
}

// Overview aggregates one team's whole tournament.
type Overview struct {
	Matches          int
	Wins             int
	GoalsScored      int
	GoalsConceded    int
	Corners          int
	AvgPossessionPct float64
	AvgPassPct       float64
	AvgShots         float64
}

// GoalsByMatch is one point of the chronological goals chart.
// MatchNumber starts at 1 for the team's oldest match.
type GoalsByMatch struct {
	MatchNumber int
	GoalsScored int
}
