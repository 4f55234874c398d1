package playerstats

import "context"

// Repository describes player leaderboard reads. Every operation returns
// rows already ordered by the ranking metric; unknown ids yield empty
// slices.
type Repository interface {
	ListTopByMatch(ctx context.Context, matchID int64, limit int) ([]MatchLeader, error)
	ListTopOverall(ctx context.Context, limit int) ([]MatchLeader, error)
	ListTopGoalkeepers(ctx context.Context, limit int) ([]GoalkeeperRank, error)
}
