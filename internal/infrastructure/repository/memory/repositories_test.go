package memory

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/clubstats/statsboard/internal/domain/match"
	"github.com/clubstats/statsboard/internal/domain/team"
)

func TestMatchRepository_ListRecentOrdersByDateDescending(t *testing.T) {
	repo := NewMatchRepository(SeedMatches())

	matches, err := repo.ListRecent(context.Background(), match.Filter{Limit: 50})
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(matches) != len(SeedMatches()) {
		t.Fatalf("expected %d matches, got %d", len(SeedMatches()), len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Date.After(matches[i-1].Date) {
			t.Fatalf("matches not ordered by date descending at index %d", i)
		}
	}
	if matches[0].Stage != "Final" {
		t.Fatalf("expected the final first, got %q", matches[0].Stage)
	}
}

func TestMatchRepository_FiltersByStageAndWindow(t *testing.T) {
	repo := NewMatchRepository(SeedMatches())

	finals, err := repo.ListRecent(context.Background(), match.Filter{Stage: "Final"})
	if err != nil {
		t.Fatalf("list finals: %v", err)
	}
	if len(finals) != 1 || finals[0].ID != 106 {
		t.Fatalf("expected only the final, got %v", finals)
	}

	july, err := repo.ListRecent(context.Background(), match.Filter{
		From: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("list july: %v", err)
	}
	for _, m := range july {
		if m.Date.Month() != time.July {
			t.Fatalf("match %d outside the window: %v", m.ID, m.Date)
		}
	}
}

func TestTeamRepository_ListSortsByName(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())

	teams, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	for i := 1; i < len(teams); i++ {
		if teams[i].Name < teams[i-1].Name {
			t.Fatalf("teams not sorted by name at index %d", i)
		}
	}

	if _, exists, err := repo.GetByID(context.Background(), 9999); err != nil || exists {
		t.Fatalf("unknown team must report exists=false without error, got exists=%v err=%v", exists, err)
	}
}

func TestPlayerStatsRepository_UnknownMatchYieldsEmpty(t *testing.T) {
	repo := NewPlayerStatsRepository(SeedPlayers(), SeedTeams(), SeedPlayerStatLines())

	leaders, err := repo.ListTopByMatch(context.Background(), 9999, 5)
	if err != nil {
		t.Fatalf("list by unknown match: %v", err)
	}
	if len(leaders) != 0 {
		t.Fatalf("expected empty leaderboard, got %v", leaders)
	}
}

func TestPlayerStatsRepository_OverallRankingAndTieBreaks(t *testing.T) {
	repo := NewPlayerStatsRepository(SeedPlayers(), SeedTeams(), SeedPlayerStatLines())

	leaders, err := repo.ListTopOverall(context.Background(), 3)
	if err != nil {
		t.Fatalf("list overall: %v", err)
	}
	if len(leaders) != 3 {
		t.Fatalf("expected three leaders, got %d", len(leaders))
	}

	if leaders[0].Name != "Cole Palmer" || leaders[0].GoalInvolvements != 4 {
		t.Fatalf("unexpected top scorer: %+v", leaders[0])
	}
	// Dembele and Ruiz are level on involvements; goals break the tie.
	if leaders[1].Name != "Ousmane Dembele" || leaders[2].Name != "Fabian Ruiz" {
		t.Fatalf("unexpected tie-break order: %q then %q", leaders[1].Name, leaders[2].Name)
	}
}

func TestPlayerStatsRepository_GoalkeeperRanking(t *testing.T) {
	repo := NewPlayerStatsRepository(SeedPlayers(), SeedTeams(), SeedPlayerStatLines())

	keepers, err := repo.ListTopGoalkeepers(context.Background(), 10)
	if err != nil {
		t.Fatalf("list goalkeepers: %v", err)
	}
	if len(keepers) != 4 {
		t.Fatalf("expected four ranked keepers, got %d", len(keepers))
	}

	if keepers[0].Name != "Fabio" || keepers[0].SavePct != 1.0 {
		t.Fatalf("unexpected leader: %+v", keepers[0])
	}
	if keepers[1].Name != "Robert Sanchez" || keepers[1].SavePct != 0.91 {
		t.Fatalf("unexpected runner-up: %+v", keepers[1])
	}
	for _, k := range keepers {
		if k.Saves == 0 {
			t.Fatalf("keeper without saves must not rank: %+v", k)
		}
	}
}

func TestTeamStatsRepository_ListByMatchPutsHomeSideFirst(t *testing.T) {
	repo := NewTeamStatsRepository(SeedTeams(), SeedMatches(), SeedTeamStatLines())

	stats, err := repo.ListByMatch(context.Background(), 106)
	if err != nil {
		t.Fatalf("list by match: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected both stat lines, got %d", len(stats))
	}
	if stats[0].TeamName != "Chelsea" {
		t.Fatalf("expected home side first, got %q", stats[0].TeamName)
	}
}

func TestTeamStatsRepository_OverviewAggregates(t *testing.T) {
	repo := NewTeamStatsRepository(SeedTeams(), SeedMatches(), SeedTeamStatLines())

	overview, err := repo.GetOverview(context.Background(), TeamIDChelsea)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if overview.Matches != 2 || overview.Wins != 2 {
		t.Fatalf("unexpected matches/wins: %+v", overview)
	}
	if overview.GoalsScored != 5 || overview.GoalsConceded != 1 {
		t.Fatalf("unexpected goal totals: %+v", overview)
	}
	if overview.Corners != 9 {
		t.Fatalf("unexpected corners: %+v", overview)
	}
}

func TestTeamStatsRepository_OverviewForUnknownTeamIsZeroValued(t *testing.T) {
	repo := NewTeamStatsRepository(SeedTeams(), SeedMatches(), SeedTeamStatLines())

	overview, err := repo.GetOverview(context.Background(), 9999)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.Matches != 0 || overview.GoalsScored != 0 || overview.AvgPossessionPct != 0 {
		t.Fatalf("expected zero-valued overview, got %+v", overview)
	}
}

func TestTeamStatsRepository_GoalsByMatchIsChronological(t *testing.T) {
	repo := NewTeamStatsRepository(SeedTeams(), SeedMatches(), SeedTeamStatLines())

	points, err := repo.ListGoalsByMatch(context.Background(), TeamIDChelsea)
	if err != nil {
		t.Fatalf("goals by match: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected two points, got %d", len(points))
	}
	if points[0].MatchNumber != 1 || points[0].GoalsScored != 2 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].MatchNumber != 2 || points[1].GoalsScored != 3 {
		t.Fatalf("unexpected second point: %+v", points[1])
	}
}

func TestTeamStatsRepository_RankingsHonorLimit(t *testing.T) {
	faker := gofakeit.New(7)

	teams := make([]team.Team, 0, 16)
	matches := make([]match.Match, 0, 8)
	lines := make([]TeamStatLine, 0, 16)
	for i := 0; i < 8; i++ {
		home := team.Team{ID: int64(i*2 + 1), Name: faker.City() + " FC"}
		away := team.Team{ID: int64(i*2 + 2), Name: faker.City() + " United"}
		teams = append(teams, home, away)

		fixture := match.Match{
			ID:         int64(200 + i),
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
			HomeTeam:   home.Name,
			AwayTeam:   away.Name,
			HomeScore:  faker.Number(0, 4),
			AwayScore:  faker.Number(0, 4),
			Stage:      "Group Stage",
			Date:       time.Date(2025, time.June, 15+i, 18, 0, 0, 0, time.UTC),
		}
		matches = append(matches, fixture)

		for _, id := range []int64{home.ID, away.ID} {
			lines = append(lines, TeamStatLine{
				MatchID:       fixture.ID,
				TeamID:        id,
				PossessionPct: float64(faker.Number(30, 70)),
				PassPct:       float64(faker.Number(70, 95)),
				TotalShots:    faker.Number(3, 20),
				Fouls:         faker.Number(5, 18),
				YellowCards:   faker.Number(0, 4),
				TotalTackles:  faker.Number(8, 28),
			})
		}
	}

	repo := NewTeamStatsRepository(teams, matches, lines)

	for name, list := range map[string]func() (int, error){
		"aggression": func() (int, error) {
			ranks, err := repo.ListMostAggressive(context.Background(), 5)
			return len(ranks), err
		},
		"defense": func() (int, error) {
			ranks, err := repo.ListBestDefensive(context.Background(), 5)
			return len(ranks), err
		},
		"attack": func() (int, error) {
			ranks, err := repo.ListBestAttacking(context.Background(), 5)
			return len(ranks), err
		},
	} {
		got, err := list()
		if err != nil {
			t.Fatalf("%s ranking: %v", name, err)
		}
		if got != 5 {
			t.Fatalf("%s ranking returned %d rows, want 5", name, got)
		}
	}
}

func TestTeamStatsRepository_AggressionScoreMath(t *testing.T) {
	repo := NewTeamStatsRepository(SeedTeams(), SeedMatches(), SeedTeamStatLines())

	ranks, err := repo.ListMostAggressive(context.Background(), 10)
	if err != nil {
		t.Fatalf("aggression ranking: %v", err)
	}

	for _, rank := range ranks {
		if rank.TeamID != TeamIDInterMiami {
			continue
		}
		// One match: 21 tackles + 15 fouls*2 + 3 yellows*3 + 1 red*5 = 65.
		if want := 65.0; rank.ScorePerMatch != want {
			t.Fatalf("Inter Miami score = %v, want %v", rank.ScorePerMatch, want)
		}
		return
	}
	t.Fatalf("Inter Miami missing from ranking: %+v", ranks)
}
