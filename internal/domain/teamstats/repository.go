package teamstats

import "context"

// Repository describes team statistic reads. Aggregates over an unknown
// team id return zero-valued rows or empty slices, never errors.
type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]MatchStats, error)
	ListMostAggressive(ctx context.Context, limit int) ([]AggressionRank, error)
	ListBestDefensive(ctx context.Context, limit int) ([]DefenseRank, error)
	ListBestAttacking(ctx context.Context, limit int) ([]AttackRank, error)
	GetOverview(ctx context.Context, teamID int64) (Overview, error)
	ListGoalsByMatch(ctx context.Context, teamID int64) ([]GoalsByMatch, error)
}
