package web

import (
	"strconv"

	"github.com/clubstats/statsboard/internal/domain/playerstats"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
)

// View builders are pure: rows plus an optional error in, one Widget out.
// They never touch the repositories, which keeps them trivially testable.

func buildTeamStatsWidget(stats []teamstats.MatchStats, err error) Widget {
	table := Table{
		Columns: []string{"Team", "Possession %", "Pass %", "Shots", "On Target", "Fouls", "Yellow", "Red", "Corners", "Offsides"},
	}
	for _, s := range stats {
		table.Rows = append(table.Rows, []string{
			s.TeamName,
			formatPct(s.PossessionPct),
			formatPct(s.PassPct),
			strconv.Itoa(s.TotalShots),
			strconv.Itoa(s.ShotsOnTarget),
			strconv.Itoa(s.Fouls),
			strconv.Itoa(s.YellowCards),
			strconv.Itoa(s.RedCards),
			strconv.Itoa(s.Corners),
			strconv.Itoa(s.Offsides),
		})
	}
	return buildWidget("Team Statistics", table, err)
}

func buildLeadersWidget(title string, leaders []playerstats.MatchLeader, err error) Widget {
	table := Table{
		Columns: []string{"Player", "Team", "Goals", "Assists", "G/A"},
	}
	for _, l := range leaders {
		table.Rows = append(table.Rows, []string{
			l.Name,
			l.TeamName,
			strconv.Itoa(l.Goals),
			strconv.Itoa(l.Assists),
			strconv.Itoa(l.GoalInvolvements),
		})
	}
	return buildWidget(title, table, err)
}

func buildGoalkeepersWidget(keepers []playerstats.GoalkeeperRank, err error) Widget {
	table := Table{
		Columns: []string{"Goalkeeper", "Team", "Matches", "Saves", "Conceded", "Save %"},
	}
	for _, k := range keepers {
		table.Rows = append(table.Rows, []string{
			k.Name,
			k.TeamName,
			strconv.Itoa(k.Matches),
			strconv.Itoa(k.Saves),
			strconv.Itoa(k.GoalsConceded),
			formatPct(k.SavePct * 100),
		})
	}
	return buildWidget("Top Goalkeepers", table, err)
}

func buildAggressionWidget(ranks []teamstats.AggressionRank, err error) Widget {
	table := Table{
		Columns: []string{"Team", "Matches", "Tackles", "Fouls", "Yellow", "Red", "Score / Match"},
	}
	for _, r := range ranks {
		table.Rows = append(table.Rows, []string{
			r.TeamName,
			strconv.Itoa(r.MatchesPlayed),
			strconv.Itoa(r.Tackles),
			strconv.Itoa(r.Fouls),
			strconv.Itoa(r.YellowCards),
			strconv.Itoa(r.RedCards),
			formatScore(r.ScorePerMatch),
		})
	}
	return buildWidget("Most Aggressive Teams", table, err)
}

func buildDefenseWidget(ranks []teamstats.DefenseRank, err error) Widget {
	table := Table{
		Columns: []string{"Team", "Tackles", "Interceptions", "Clearances", "Blocked", "Conceded", "Score"},
	}
	for _, r := range ranks {
		table.Rows = append(table.Rows, []string{
			r.TeamName,
			strconv.Itoa(r.Tackles),
			strconv.Itoa(r.Interceptions),
			strconv.Itoa(r.Clearances),
			strconv.Itoa(r.BlockedShots),
			strconv.Itoa(r.GoalsConceded),
			formatScore(r.Score),
		})
	}
	return buildWidget("Best Defensive Teams", table, err)
}

func buildAttackWidget(ranks []teamstats.AttackRank, err error) Widget {
	table := Table{
		Columns: []string{"Team", "Matches", "Shots", "On Target", "Goals", "Wins", "Avg Poss %", "Score / Match"},
	}
	for _, r := range ranks {
		table.Rows = append(table.Rows, []string{
			r.TeamName,
			strconv.Itoa(r.MatchesPlayed),
			strconv.Itoa(r.Shots),
			strconv.Itoa(r.ShotsOnTarget),
			strconv.Itoa(r.GoalsScored),
			strconv.Itoa(r.Wins),
			formatPct(r.AvgPossessionPct),
			formatScore(r.ScorePerMatch),
		})
	}
	return buildWidget("Best Attacking Teams", table, err)
}

func buildGoalsWidget(points []teamstats.GoalsByMatch, err error) Widget {
	table := Table{
		Columns: []string{"Match #", "Goals Scored"},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(p.MatchNumber),
			strconv.Itoa(p.GoalsScored),
		})
	}
	return buildWidget("Goals by Match", table, err)
}

func buildOverviewCards(overview teamstats.Overview, err error) CardGroup {
	if err != nil {
		return CardGroup{State: WidgetFailed, Message: failedMessage}
	}
	if overview.Matches == 0 {
		return CardGroup{State: WidgetEmpty, Message: emptyMessage}
	}

	return CardGroup{
		State: WidgetReady,
		Cards: []Card{
			{Label: "Matches", Value: strconv.Itoa(overview.Matches)},
			{Label: "Wins", Value: strconv.Itoa(overview.Wins)},
			{Label: "Goals Scored", Value: strconv.Itoa(overview.GoalsScored)},
			{Label: "Goals Conceded", Value: strconv.Itoa(overview.GoalsConceded)},
			{Label: "Corners", Value: strconv.Itoa(overview.Corners)},
			{Label: "Avg Possession", Value: formatPct(overview.AvgPossessionPct)},
			{Label: "Avg Pass %", Value: formatPct(overview.AvgPassPct)},
			{Label: "Avg Shots", Value: formatScore(overview.AvgShots)},
		},
	}
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
