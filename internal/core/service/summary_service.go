package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

const (
	summaryProjects = 10
	summaryEvents   = 5
	summaryNews     = 5
)

// SummaryService builds the read-only dashboard aggregates.
type SummaryService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	events   ports.EventRepository
	news     ports.NewsRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewSummaryService(
	projects ports.ProjectRepository,
	tasks ports.TaskRepository,
	events ports.EventRepository,
	news ports.NewsRepository,
	log zerolog.Logger,
	now func() time.Time,
) *SummaryService {
	if now == nil {
		now = time.Now
	}
	return &SummaryService{
		projects: projects,
		tasks:    tasks,
		events:   events,
		news:     news,
		log:      log,
		now:      now,
	}
}

var _ ports.SummaryService = (*SummaryService)(nil)

func (s *SummaryService) Dashboard(ctx context.Context) (*ports.DashboardSummary, error) {
	now := s.now().UTC()

	projects, err := s.projects.List(ctx, ports.ProjectFilter{Limit: summaryProjects})
	if err != nil {
		return nil, fmt.Errorf("summary projects: %w", err)
	}
	events, err := s.events.List(ctx, ports.EventFilter{StartFrom: now, Limit: summaryEvents})
	if err != nil {
		return nil, fmt.Errorf("summary events: %w", err)
	}
	news, err := s.news.List(ctx, ports.NewsFilter{Limit: summaryNews})
	if err != nil {
		return nil, fmt.Errorf("summary news: %w", err)
	}

	return &ports.DashboardSummary{
		Projects:       projects,
		UpcomingEvents: events,
		RecentNews:     news,
	}, nil
}

func (s *SummaryService) Project(ctx context.Context, projectID string) (*ports.ProjectSummary, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	grouped, err := s.tasks.CountByStatus(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	counts := make(map[domain.TaskStatus]int, len(domain.TaskStatuses))
	total := 0
	for _, st := range domain.TaskStatuses {
		counts[st] = grouped[st]
		total += grouped[st]
	}

	events, err := s.events.List(ctx, ports.EventFilter{
		ProjectID: projectID,
		StartFrom: s.now().UTC(),
		Limit:     summaryEvents,
	})
	if err != nil {
		return nil, fmt.Errorf("project events: %w", err)
	}
	news, err := s.news.List(ctx, ports.NewsFilter{ProjectID: projectID, Limit: summaryNews})
	if err != nil {
		return nil, fmt.Errorf("project news: %w", err)
	}

	return &ports.ProjectSummary{
		Project:        project,
		TotalTasks:     total,
		TaskCounts:     counts,
		UpcomingEvents: events,
		RecentNews:     news,
	}, nil
}
