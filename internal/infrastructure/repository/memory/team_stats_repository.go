package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubstats/statsboard/internal/domain/match"
	"github.com/clubstats/statsboard/internal/domain/team"
	"github.com/clubstats/statsboard/internal/domain/teamstats"
)

type TeamStatsRepository struct {
	mu      sync.RWMutex
	teams   map[int64]team.Team
	matches map[int64]match.Match
	lines   []TeamStatLine
}

func NewTeamStatsRepository(teams []team.Team, matches []match.Match, lines []TeamStatLine) *TeamStatsRepository {
	teamIndex := make(map[int64]team.Team, len(teams))
	for _, t := range teams {
		teamIndex[t.ID] = t
	}
	matchIndex := make(map[int64]match.Match, len(matches))
	for _, m := range matches {
		matchIndex[m.ID] = m
	}

	return &TeamStatsRepository{
		teams:   teamIndex,
		matches: matchIndex,
		lines:   append([]TeamStatLine(nil), lines...),
	}
}

func (r *TeamStatsRepository) ListByMatch(_ context.Context, matchID int64) ([]teamstats.MatchStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fixture, known := r.matches[matchID]

	out := make([]teamstats.MatchStats, 0, 2)
	for _, line := range r.lines {
		if line.MatchID != matchID {
			continue
		}
		out = append(out, teamstats.MatchStats{
			TeamID:        line.TeamID,
			TeamName:      r.teams[line.TeamID].Name,
			PossessionPct: line.PossessionPct,
			PassPct:       line.PassPct,
			TotalShots:    line.TotalShots,
			ShotsOnTarget: line.ShotsOnTarget,
			Fouls:         line.Fouls,
			YellowCards:   line.YellowCards,
			RedCards:      line.RedCards,
			Corners:       line.Corners,
			Offsides:      line.Offsides,
		})
	}

	// Home side first.
	if known {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TeamID == fixture.HomeTeamID && out[j].TeamID != fixture.HomeTeamID
		})
	}

	return out, nil
}

func (r *TeamStatsRepository) ListMostAggressive(_ context.Context, limit int) ([]teamstats.AggressionRank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ranks := make(map[int64]*teamstats.AggressionRank)
	for _, line := range r.lines {
		rank := ranks[line.TeamID]
		if rank == nil {
			club := r.teams[line.TeamID]
			rank = &teamstats.AggressionRank{TeamID: line.TeamID, TeamName: club.Name, LogoURL: club.LogoURL}
			ranks[line.TeamID] = rank
		}
		rank.MatchesPlayed++
		rank.Tackles += line.TotalTackles
		rank.Fouls += line.Fouls
		rank.YellowCards += line.YellowCards
		rank.RedCards += line.RedCards
	}

	out := make([]teamstats.AggressionRank, 0, len(ranks))
	for _, rank := range ranks {
		score := float64(rank.Tackles*1 + rank.Fouls*2 + rank.YellowCards*3 + rank.RedCards*5)
		rank.ScorePerMatch = round2(score / float64(rank.MatchesPlayed))
		out = append(out, *rank)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ScorePerMatch != out[j].ScorePerMatch {
			return out[i].ScorePerMatch > out[j].ScorePerMatch
		}
		return out[i].TeamID < out[j].TeamID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *TeamStatsRepository) ListBestDefensive(_ context.Context, limit int) ([]teamstats.DefenseRank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ranks := make(map[int64]*teamstats.DefenseRank)
	for _, line := range r.lines {
		rank := ranks[line.TeamID]
		if rank == nil {
			club := r.teams[line.TeamID]
			rank = &teamstats.DefenseRank{TeamID: line.TeamID, TeamName: club.Name, LogoURL: club.LogoURL}
			ranks[line.TeamID] = rank
		}
		rank.YellowCards += line.YellowCards
		rank.BlockedShots += line.BlockedShots
		rank.Tackles += line.TotalTackles
		rank.EffectiveTackles += line.EffectiveTackles
		rank.Interceptions += line.Interceptions
		rank.Clearances += line.TotalClearance
		rank.EffectiveClearances += line.EffectiveClearance
		if opp, found := r.opponentLine(line); found {
			rank.OffsidesWon += opp.Offsides
		}
		rank.GoalsConceded += r.goalsConceded(line)
	}

	out := make([]teamstats.DefenseRank, 0, len(ranks))
	for _, rank := range ranks {
		raw := float64(rank.OffsidesWon)*2.0 +
			float64(rank.YellowCards)*1.0 +
			float64(rank.BlockedShots)*1.5 +
			float64(rank.Tackles)*1.0 +
			float64(rank.EffectiveTackles)*2.5 +
			float64(rank.Interceptions)*1.5 +
			float64(rank.Clearances)*1.0 +
			float64(rank.EffectiveClearances)*2.5
		conceded := float64(rank.GoalsConceded)
		rank.Score = (raw - conceded*2.0) / (1 + conceded)
		out = append(out, *rank)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].TeamID < out[j].TeamID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *TeamStatsRepository) ListBestAttacking(_ context.Context, limit int) ([]teamstats.AttackRank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type attackAgg struct {
		rank      teamstats.AttackRank
		crosses   int
		accCross  int
		longBalls int
		accLong   int
		possSum   float64
		passSum   float64
	}
	aggs := make(map[int64]*attackAgg)

	for _, line := range r.lines {
		agg := aggs[line.TeamID]
		if agg == nil {
			club := r.teams[line.TeamID]
			agg = &attackAgg{rank: teamstats.AttackRank{TeamID: line.TeamID, TeamName: club.Name, LogoURL: club.LogoURL}}
			aggs[line.TeamID] = agg
		}
		agg.rank.MatchesPlayed++
		agg.rank.Shots += line.TotalShots
		agg.rank.ShotsOnTarget += line.ShotsOnTarget
		agg.rank.Corners += line.Corners
		agg.rank.GoalsScored += r.goalsScored(line)
		agg.rank.Wins += r.winFor(line)
		agg.crosses += line.TotalCrosses
		agg.accCross += line.AccurateCrosses
		agg.longBalls += line.TotalLongBalls
		agg.accLong += line.AccurateLongBalls
		agg.possSum += line.PossessionPct
		agg.passSum += line.PassPct
	}

	out := make([]teamstats.AttackRank, 0, len(aggs))
	for _, agg := range aggs {
		matches := float64(agg.rank.MatchesPlayed)
		agg.rank.AvgPossessionPct = agg.possSum / matches
		agg.rank.AvgPassPct = agg.passSum / matches

		score := float64(agg.rank.Shots)*1.5 +
			float64(agg.rank.ShotsOnTarget)*2.0 +
			float64(agg.crosses)*1.0 +
			float64(agg.accCross)*2.0 +
			float64(agg.longBalls)*0.5 +
			float64(agg.accLong)*1.0 +
			float64(agg.rank.Corners)*1.0 +
			agg.rank.AvgPossessionPct*0.5 +
			agg.rank.AvgPassPct*0.5 +
			float64(agg.rank.GoalsScored)*4.0 +
			float64(agg.rank.Wins)*3.0
		agg.rank.ScorePerMatch = score / matches
		out = append(out, agg.rank)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ScorePerMatch != out[j].ScorePerMatch {
			return out[i].ScorePerMatch > out[j].ScorePerMatch
		}
		return out[i].TeamID < out[j].TeamID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *TeamStatsRepository) GetOverview(_ context.Context, teamID int64) (teamstats.Overview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		overview teamstats.Overview
		possSum  float64
		passSum  float64
		shotSum  int
	)
	for _, line := range r.lines {
		if line.TeamID != teamID {
			continue
		}
		overview.Matches++
		overview.Wins += r.winFor(line)
		overview.GoalsScored += r.goalsScored(line)
		overview.GoalsConceded += r.goalsConceded(line)
		overview.Corners += line.Corners
		possSum += line.PossessionPct
		passSum += line.PassPct
		shotSum += line.TotalShots
	}

	if overview.Matches > 0 {
		matches := float64(overview.Matches)
		overview.AvgPossessionPct = possSum / matches
		overview.AvgPassPct = passSum / matches
		overview.AvgShots = float64(shotSum) / matches
	}

	return overview, nil
}

func (r *TeamStatsRepository) ListGoalsByMatch(_ context.Context, teamID int64) ([]teamstats.GoalsByMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type dated struct {
		line TeamStatLine
	}
	lines := make([]dated, 0)
	for _, line := range r.lines {
		if line.TeamID != teamID {
			continue
		}
		if _, known := r.matches[line.MatchID]; !known {
			continue
		}
		lines = append(lines, dated{line: line})
	}

	sort.Slice(lines, func(i, j int) bool {
		return r.matches[lines[i].line.MatchID].Date.Before(r.matches[lines[j].line.MatchID].Date)
	})

	out := make([]teamstats.GoalsByMatch, 0, len(lines))
	for idx, item := range lines {
		out = append(out, teamstats.GoalsByMatch{
			MatchNumber: idx + 1,
			GoalsScored: r.goalsScored(item.line),
		})
	}

	return out, nil
}

func (r *TeamStatsRepository) opponentLine(line TeamStatLine) (TeamStatLine, bool) {
	for _, other := range r.lines {
		if other.MatchID == line.MatchID && other.TeamID != line.TeamID {
			return other, true
		}
	}
	return TeamStatLine{}, false
}

func (r *TeamStatsRepository) goalsScored(line TeamStatLine) int {
	fixture, known := r.matches[line.MatchID]
	if !known {
		return 0
	}
	switch line.TeamID {
	case fixture.HomeTeamID:
		return fixture.HomeScore
	case fixture.AwayTeamID:
		return fixture.AwayScore
	}
	return 0
}

func (r *TeamStatsRepository) goalsConceded(line TeamStatLine) int {
	fixture, known := r.matches[line.MatchID]
	if !known {
		return 0
	}
	switch line.TeamID {
	case fixture.HomeTeamID:
		return fixture.AwayScore
	case fixture.AwayTeamID:
		return fixture.HomeScore
	}
	return 0
}

func (r *TeamStatsRepository) winFor(line TeamStatLine) int {
	fixture, known := r.matches[line.MatchID]
	if !known {
		return 0
	}
	if line.TeamID == fixture.HomeTeamID && fixture.HomeScore > fixture.AwayScore {
		return 1
	}
	if line.TeamID == fixture.AwayTeamID && fixture.AwayScore > fixture.HomeScore {
		return 1
	}
	return 0
}
