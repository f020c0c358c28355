package ports

import (
	"context"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

// DashboardSummary is the read-only landing page aggregate.
type DashboardSummary struct {
	Projects       []*domain.Project
	UpcomingEvents []*domain.Event
	RecentNews     []*domain.News
}

// ProjectSummary aggregates one project. TaskCounts always holds an entry
// for every task status and TotalTasks is their sum.
type ProjectSummary struct {
	Project        *domain.Project
	TotalTasks     int
	TaskCounts     map[domain.TaskStatus]int
	UpcomingEvents []*domain.Event
	RecentNews     []*domain.News
}

type SummaryService interface {
	Dashboard(ctx context.Context) (*DashboardSummary, error)
	Project(ctx context.Context, projectID string) (*ProjectSummary, error)
}
