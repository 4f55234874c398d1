package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/clubstats/statsboard/internal/domain/playerstats"
	"github.com/clubstats/statsboard/internal/domain/team"
)

type PlayerStatsRepository struct {
	mu      sync.RWMutex
	players map[int64]PlayerSeed
	teams   map[int64]team.Team
	lines   []PlayerStatLine
}

func NewPlayerStatsRepository(players []PlayerSeed, teams []team.Team, lines []PlayerStatLine) *PlayerStatsRepository {
	playerIndex := make(map[int64]PlayerSeed, len(players))
	for _, p := range players {
		playerIndex[p.ID] = p
	}
	teamIndex := make(map[int64]team.Team, len(teams))
	for _, t := range teams {
		teamIndex[t.ID] = t
	}

	return &PlayerStatsRepository{
		players: playerIndex,
		teams:   teamIndex,
		lines:   append([]PlayerStatLine(nil), lines...),
	}
}

func (r *PlayerStatsRepository) ListTopByMatch(_ context.Context, matchID int64, limit int) ([]playerstats.MatchLeader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.MatchLeader, 0)
	for _, line := range r.lines {
		if line.MatchID != matchID {
			continue
		}
		out = append(out, r.leaderFromLine(line.PlayerID, line.Goals, line.Assists))
	}

	sortLeaders(out)
	return truncateLeaders(out, limit), nil
}

func (r *PlayerStatsRepository) ListTopOverall(_ context.Context, limit int) ([]playerstats.MatchLeader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := make(map[int64]int)
	assists := make(map[int64]int)
	for _, line := range r.lines {
		goals[line.PlayerID] += line.Goals
		assists[line.PlayerID] += line.Assists
	}

	out := make([]playerstats.MatchLeader, 0, len(goals))
	for playerID := range goals {
		out = append(out, r.leaderFromLine(playerID, goals[playerID], assists[playerID]))
	}

	sortLeaders(out)
	return truncateLeaders(out, limit), nil
}

// keeperStatsDoc is the goalkeeper slice of the jsonb stats document.
type keeperStatsDoc struct {
	Saves         *int `json:"saves"`
	GoalsConceded int  `json:"goalsConceded"`
}

func (r *PlayerStatsRepository) ListTopGoalkeepers(_ context.Context, limit int) ([]playerstats.GoalkeeperRank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type keeperAgg struct {
		matches  map[int64]struct{}
		saves    int
		conceded int
	}
	aggs := make(map[int64]*keeperAgg)

	for _, line := range r.lines {
		if line.Stats == "" {
			continue
		}
		var doc keeperStatsDoc
		if err := sonic.UnmarshalString(line.Stats, &doc); err != nil {
			continue
		}
		// Lines without a positive save count never rank, mirroring the
		// store query's row filter.
		if doc.Saves == nil || *doc.Saves <= 0 {
			continue
		}

		agg := aggs[line.PlayerID]
		if agg == nil {
			agg = &keeperAgg{matches: make(map[int64]struct{})}
			aggs[line.PlayerID] = agg
		}
		agg.matches[line.MatchID] = struct{}{}
		agg.saves += *doc.Saves
		agg.conceded += doc.GoalsConceded
	}

	out := make([]playerstats.GoalkeeperRank, 0, len(aggs))
	for playerID, agg := range aggs {
		faced := agg.saves + agg.conceded
		if faced <= 0 {
			continue
		}
		player := r.players[playerID]
		club := r.teams[player.TeamID]
		out = append(out, playerstats.GoalkeeperRank{
			PlayerID:      playerID,
			Name:          player.Name,
			TeamName:      club.Name,
			TeamLogoURL:   club.LogoURL,
			Matches:       len(agg.matches),
			Saves:         agg.saves,
			GoalsConceded: agg.conceded,
			SavePct:       round2(float64(agg.saves) / float64(faced)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SavePct != out[j].SavePct {
			return out[i].SavePct > out[j].SavePct
		}
		if out[i].Saves != out[j].Saves {
			return out[i].Saves > out[j].Saves
		}
		return out[i].Matches > out[j].Matches
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *PlayerStatsRepository) leaderFromLine(playerID int64, goals, assists int) playerstats.MatchLeader {
	player := r.players[playerID]
	club := r.teams[player.TeamID]

	return playerstats.MatchLeader{
		PlayerID:         playerID,
		Name:             player.Name,
		TeamName:         club.Name,
		TeamLogoURL:      club.LogoURL,
		Goals:            goals,
		Assists:          assists,
		GoalInvolvements: goals + assists,
	}
}

func sortLeaders(leaders []playerstats.MatchLeader) {
	sort.Slice(leaders, func(i, j int) bool {
		if leaders[i].GoalInvolvements != leaders[j].GoalInvolvements {
			return leaders[i].GoalInvolvements > leaders[j].GoalInvolvements
		}
		if leaders[i].Goals != leaders[j].Goals {
			return leaders[i].Goals > leaders[j].Goals
		}
		return leaders[i].PlayerID < leaders[j].PlayerID
	})
}

func truncateLeaders(leaders []playerstats.MatchLeader, limit int) []playerstats.MatchLeader {
	if limit > 0 && len(leaders) > limit {
		return leaders[:limit]
	}
	return leaders
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
