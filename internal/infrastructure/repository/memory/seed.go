package memory

import (
	"time"

	"github.com/clubstats/statsboard/internal/domain/match"
	"github.com/clubstats/statsboard/internal/domain/team"
)

// PlayerSeed mirrors the upstream players catalog row.
type PlayerSeed struct {
	ID     int64
	Name   string
	TeamID int64
}

// PlayerStatLine is one player's line for one match. Stats carries the raw
// JSON document the upstream pipeline writes; goalkeeper fields live there.
type PlayerStatLine struct {
	PlayerID int64
	MatchID  int64
	Goals    int
	Assists  int
	Stats    string
}

// TeamStatLine is one team's line for one match, flattened the way the
// team_stats table stores it.
type TeamStatLine struct {
	MatchID            int64
	TeamID             int64
	PossessionPct      float64
	PassPct            float64
	TotalShots         int
	ShotsOnTarget      int
	Fouls              int
	YellowCards        int
	RedCards           int
	Corners            int
	Offsides           int
	TotalTackles       int
	EffectiveTackles   int
	Interceptions      int
	BlockedShots       int
	TotalClearance     int
	EffectiveClearance int
	TotalCrosses       int
	AccurateCrosses    int
	TotalLongBalls     int
	AccurateLongBalls  int
}

const (
	TeamIDChelsea    int64 = 1
	TeamIDPSG        int64 = 2
	TeamIDRealMadrid int64 = 3
	TeamIDFluminense int64 = 4
	TeamIDBayern     int64 = 5
	TeamIDPalmeiras  int64 = 6
	TeamIDAlHilal    int64 = 7
	TeamIDInterMiami int64 = 8
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDChelsea, Name: "Chelsea", Group: "Group D", LogoURL: "/static/logos/chelsea.png"},
		{ID: TeamIDPSG, Name: "Paris Saint-Germain", Group: "Group B", LogoURL: "/static/logos/psg.png"},
		{ID: TeamIDRealMadrid, Name: "Real Madrid", Group: "Group H", LogoURL: "/static/logos/real-madrid.png"},
		{ID: TeamIDFluminense, Name: "Fluminense", Group: "Group F", LogoURL: "/static/logos/fluminense.png"},
		{ID: TeamIDBayern, Name: "Bayern Munich", Group: "Group C", LogoURL: "/static/logos/bayern.png"},
		{ID: TeamIDPalmeiras, Name: "Palmeiras", Group: "Group A", LogoURL: "/static/logos/palmeiras.png"},
		{ID: TeamIDAlHilal, Name: "Al Hilal", Group: "Group H", LogoURL: "/static/logos/al-hilal.png"},
		{ID: TeamIDInterMiami, Name: "Inter Miami", Group: "Group A", LogoURL: "/static/logos/inter-miami.png"},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID: 101, HomeTeamID: TeamIDPalmeiras, AwayTeamID: TeamIDInterMiami,
			HomeTeam: "Palmeiras", AwayTeam: "Inter Miami",
			HomeScore: 2, AwayScore: 2, Stage: "Group Stage",
			Date: time.Date(2025, time.June, 23, 21, 0, 0, 0, time.UTC),
		},
		{
			ID: 102, HomeTeamID: TeamIDBayern, AwayTeamID: TeamIDFluminense,
			HomeTeam: "Bayern Munich", AwayTeam: "Fluminense",
			HomeScore: 0, AwayScore: 2, Stage: "Semi-final",
			Date: time.Date(2025, time.July, 8, 19, 0, 0, 0, time.UTC),
		},
		{
			ID: 103, HomeTeamID: TeamIDRealMadrid, AwayTeamID: TeamIDAlHilal,
			HomeTeam: "Real Madrid", AwayTeam: "Al Hilal",
			HomeScore: 1, AwayScore: 1, Stage: "Group Stage",
			Date: time.Date(2025, time.June, 18, 15, 0, 0, 0, time.UTC),
		},
		{
			ID: 104, HomeTeamID: TeamIDChelsea, AwayTeamID: TeamIDPalmeiras,
			HomeTeam: "Chelsea", AwayTeam: "Palmeiras",
			HomeScore: 2, AwayScore: 1, Stage: "Quarter-final",
			Date: time.Date(2025, time.July, 4, 21, 0, 0, 0, time.UTC),
		},
		{
			ID: 105, HomeTeamID: TeamIDPSG, AwayTeamID: TeamIDRealMadrid,
			HomeTeam: "Paris Saint-Germain", AwayTeam: "Real Madrid",
			HomeScore: 4, AwayScore: 0, Stage: "Semi-final",
			Date: time.Date(2025, time.July, 9, 15, 0, 0, 0, time.UTC),
		},
		{
			ID: 106, HomeTeamID: TeamIDChelsea, AwayTeamID: TeamIDPSG,
			HomeTeam: "Chelsea", AwayTeam: "Paris Saint-Germain",
			HomeScore: 3, AwayScore: 0, Stage: "Final",
			Date: time.Date(2025, time.July, 13, 15, 0, 0, 0, time.UTC),
		},
	}
}

func SeedPlayers() []PlayerSeed {
	return []PlayerSeed{
		{ID: 11, Name: "Cole Palmer", TeamID: TeamIDChelsea},
		{ID: 12, Name: "Joao Pedro", TeamID: TeamIDChelsea},
		{ID: 13, Name: "Robert Sanchez", TeamID: TeamIDChelsea},
		{ID: 21, Name: "Ousmane Dembele", TeamID: TeamIDPSG},
		{ID: 22, Name: "Fabian Ruiz", TeamID: TeamIDPSG},
		{ID: 23, Name: "Gianluigi Donnarumma", TeamID: TeamIDPSG},
		{ID: 31, Name: "Gonzalo Garcia", TeamID: TeamIDRealMadrid},
		{ID: 33, Name: "Thibaut Courtois", TeamID: TeamIDRealMadrid},
		{ID: 41, Name: "Hercules", TeamID: TeamIDFluminense},
		{ID: 43, Name: "Fabio", TeamID: TeamIDFluminense},
	}
}

func SeedPlayerStatLines() []PlayerStatLine {
	return []PlayerStatLine{
		// Final: Chelsea 3 - 0 PSG.
		{PlayerID: 11, MatchID: 106, Goals: 2, Assists: 0},
		{PlayerID: 12, MatchID: 106, Goals: 1, Assists: 1},
		{PlayerID: 13, MatchID: 106, Stats: `{"saves":6,"goalsConceded":0}`},
		{PlayerID: 21, MatchID: 106, Goals: 0, Assists: 0},
		{PlayerID: 23, MatchID: 106, Stats: `{"saves":3,"goalsConceded":3}`},

		// Semi-final: PSG 4 - 0 Real Madrid.
		{PlayerID: 21, MatchID: 105, Goals: 2, Assists: 1},
		{PlayerID: 22, MatchID: 105, Goals: 1, Assists: 2},
		{PlayerID: 23, MatchID: 105, Stats: `{"saves":2,"goalsConceded":0}`},
		{PlayerID: 33, MatchID: 105, Stats: `{"saves":5,"goalsConceded":4}`},

		// Semi-final: Bayern 0 - 2 Fluminense.
		{PlayerID: 41, MatchID: 102, Goals: 2, Assists: 0},
		{PlayerID: 43, MatchID: 102, Stats: `{"saves":7,"goalsConceded":0}`},

		// Quarter-final: Chelsea 2 - 1 Palmeiras.
		{PlayerID: 11, MatchID: 104, Goals: 1, Assists: 1},
		{PlayerID: 13, MatchID: 104, Stats: `{"saves":4,"goalsConceded":1}`},

		// Group stage: Real Madrid 1 - 1 Al Hilal.
		{PlayerID: 31, MatchID: 103, Goals: 1, Assists: 0},
		{PlayerID: 33, MatchID: 103, Stats: `{"saves":3,"goalsConceded":1}`},
	}
}

func SeedTeamStatLines() []TeamStatLine {
	return []TeamStatLine{
		{
			MatchID: 101, TeamID: TeamIDPalmeiras,
			PossessionPct: 55, PassPct: 84, TotalShots: 14, ShotsOnTarget: 6,
			Fouls: 12, YellowCards: 2, Corners: 7, Offsides: 1,
			TotalTackles: 18, EffectiveTackles: 11, Interceptions: 9, BlockedShots: 3,
			TotalClearance: 14, EffectiveClearance: 10,
			TotalCrosses: 16, AccurateCrosses: 5, TotalLongBalls: 30, AccurateLongBalls: 18,
		},
		{
			MatchID: 101, TeamID: TeamIDInterMiami,
			PossessionPct: 45, PassPct: 79, TotalShots: 9, ShotsOnTarget: 5,
			Fouls: 15, YellowCards: 3, RedCards: 1, Corners: 4, Offsides: 3,
			TotalTackles: 21, EffectiveTackles: 12, Interceptions: 11, BlockedShots: 5,
			TotalClearance: 19, EffectiveClearance: 13,
			TotalCrosses: 10, AccurateCrosses: 3, TotalLongBalls: 38, AccurateLongBalls: 20,
		},
		{
			MatchID: 102, TeamID: TeamIDBayern,
			PossessionPct: 63, PassPct: 89, TotalShots: 18, ShotsOnTarget: 5,
			Fouls: 9, YellowCards: 1, Corners: 9, Offsides: 2,
			TotalTackles: 14, EffectiveTackles: 8, Interceptions: 7, BlockedShots: 2,
			TotalClearance: 9, EffectiveClearance: 6,
			TotalCrosses: 22, AccurateCrosses: 6, TotalLongBalls: 26, AccurateLongBalls: 16,
		},
		{
			MatchID: 102, TeamID: TeamIDFluminense,
			PossessionPct: 37, PassPct: 76, TotalShots: 7, ShotsOnTarget: 4,
			Fouls: 14, YellowCards: 2, Corners: 2, Offsides: 1,
			TotalTackles: 24, EffectiveTackles: 16, Interceptions: 14, BlockedShots: 8,
			TotalClearance: 27, EffectiveClearance: 21,
			TotalCrosses: 6, AccurateCrosses: 2, TotalLongBalls: 41, AccurateLongBalls: 22,
		},
		{
			MatchID: 103, TeamID: TeamIDRealMadrid,
			PossessionPct: 68, PassPct: 90, TotalShots: 16, ShotsOnTarget: 7,
			Fouls: 8, YellowCards: 1, Corners: 8, Offsides: 1,
			TotalTackles: 12, EffectiveTackles: 7, Interceptions: 6, BlockedShots: 1,
			TotalClearance: 8, EffectiveClearance: 5,
			TotalCrosses: 19, AccurateCrosses: 7, TotalLongBalls: 24, AccurateLongBalls: 15,
		},
		{
			MatchID: 103, TeamID: TeamIDAlHilal,
			PossessionPct: 32, PassPct: 74, TotalShots: 6, ShotsOnTarget: 3,
			Fouls: 16, YellowCards: 3, Corners: 3, Offsides: 2,
			TotalTackles: 26, EffectiveTackles: 17, Interceptions: 13, BlockedShots: 7,
			TotalClearance: 31, EffectiveClearance: 24,
			TotalCrosses: 7, AccurateCrosses: 2, TotalLongBalls: 44, AccurateLongBalls: 23,
		},
		{
			MatchID: 104, TeamID: TeamIDChelsea,
			PossessionPct: 58, PassPct: 86, TotalShots: 13, ShotsOnTarget: 6,
			Fouls: 10, YellowCards: 2, Corners: 6, Offsides: 1,
			TotalTackles: 16, EffectiveTackles: 10, Interceptions: 8, BlockedShots: 3,
			TotalClearance: 12, EffectiveClearance: 9,
			TotalCrosses: 14, AccurateCrosses: 5, TotalLongBalls: 28, AccurateLongBalls: 17,
		},
		{
			MatchID: 104, TeamID: TeamIDPalmeiras,
			PossessionPct: 42, PassPct: 80, TotalShots: 8, ShotsOnTarget: 4,
			Fouls: 13, YellowCards: 2, Corners: 4, Offsides: 2,
			TotalTackles: 20, EffectiveTackles: 12, Interceptions: 10, BlockedShots: 4,
			TotalClearance: 18, EffectiveClearance: 12,
			TotalCrosses: 9, AccurateCrosses: 3, TotalLongBalls: 35, AccurateLongBalls: 19,
		},
		{
			MatchID: 105, TeamID: TeamIDPSG,
			PossessionPct: 54, PassPct: 88, TotalShots: 17, ShotsOnTarget: 9,
			Fouls: 9, YellowCards: 1, Corners: 7, Offsides: 2,
			TotalTackles: 15, EffectiveTackles: 10, Interceptions: 9, BlockedShots: 2,
			TotalClearance: 10, EffectiveClearance: 7,
			TotalCrosses: 15, AccurateCrosses: 6, TotalLongBalls: 27, AccurateLongBalls: 17,
		},
		{
			MatchID: 105, TeamID: TeamIDRealMadrid,
			PossessionPct: 46, PassPct: 83, TotalShots: 8, ShotsOnTarget: 2,
			Fouls: 11, YellowCards: 2, Corners: 3, Offsides: 1,
			TotalTackles: 17, EffectiveTackles: 9, Interceptions: 8, BlockedShots: 3,
			TotalClearance: 15, EffectiveClearance: 10,
			TotalCrosses: 11, AccurateCrosses: 3, TotalLongBalls: 31, AccurateLongBalls: 18,
		},
		{
			MatchID: 106, TeamID: TeamIDChelsea,
			PossessionPct: 34, PassPct: 78, TotalShots: 9, ShotsOnTarget: 5,
			Fouls: 14, YellowCards: 3, Corners: 3, Offsides: 1,
			TotalTackles: 23, EffectiveTackles: 15, Interceptions: 12, BlockedShots: 6,
			TotalClearance: 24, EffectiveClearance: 18,
			TotalCrosses: 8, AccurateCrosses: 3, TotalLongBalls: 39, AccurateLongBalls: 21,
		},
		{
			MatchID: 106, TeamID: TeamIDPSG,
			PossessionPct: 66, PassPct: 90, TotalShots: 15, ShotsOnTarget: 4,
			Fouls: 12, YellowCards: 2, RedCards: 1, Corners: 8, Offsides: 3,
			TotalTackles: 13, EffectiveTackles: 8, Interceptions: 6, BlockedShots: 2,
			TotalClearance: 7, EffectiveClearance: 5,
			TotalCrosses: 18, AccurateCrosses: 5, TotalLongBalls: 25, AccurateLongBalls: 15,
		},
	}
}
