package usecases

import "context"

type GetDashboardStatsExecutor interface {
	Execute(ctx context.Context, query GetDashboardStatsQuery) (*DashboardStatsResult, error)
}

type ListRemindersExecutor interface {
	Execute(ctx context.Context, query ListRemindersQuery) (*ListRemindersResult, error)
}
