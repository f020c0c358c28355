package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/infrastructure/db/memory"
)

func newSummary(st *memory.Store, now time.Time) *SummaryService {
	return NewSummaryService(st.Projects, st.Tasks, st.Events, st.News, zerolog.Nop(), func() time.Time { return now })
}

func TestSummaryService_Dashboard(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	for i := range 12 {
		_, err := st.Projects.Create(ctx, &domain.Project{
			Title:     fmt.Sprintf("p%02d", i),
			Status:    domain.ProjectGreen,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	for i := range 7 {
		_, err := st.Events.Create(ctx, &domain.Event{
			Title: fmt.Sprintf("e%d", i),
			Start: now.Add(time.Duration(7-i) * time.Hour),
			End:   now.Add(time.Duration(8-i) * time.Hour),
		})
		require.NoError(t, err)
	}
	_, _ = st.Events.Create(ctx, &domain.Event{Title: "past", Start: now.Add(-time.Hour), End: now})
	for i := range 6 {
		_, _ = st.News.Create(ctx, &domain.News{Title: fmt.Sprintf("n%d", i), CreatedAt: now.Add(time.Duration(i) * time.Second)})
	}

	sum, err := newSummary(st, now).Dashboard(ctx)
	require.NoError(t, err)

	require.Len(t, sum.Projects, 10)
	assert.Equal(t, "p11", sum.Projects[0].Title)
	assert.Equal(t, "p02", sum.Projects[9].Title)

	require.Len(t, sum.UpcomingEvents, 5)
	for i := 1; i < len(sum.UpcomingEvents); i++ {
		assert.False(t, sum.UpcomingEvents[i].Start.Before(sum.UpcomingEvents[i-1].Start))
	}
	for _, e := range sum.UpcomingEvents {
		assert.NotEqual(t, "past", e.Title)
	}

	require.Len(t, sum.RecentNews, 5)
	assert.Equal(t, "n5", sum.RecentNews[0].Title)
}

func TestSummaryService_Dashboard_Empty(t *testing.T) {
	sum, err := newSummary(memory.NewStore(), time.Now()).Dashboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sum.Projects)
	assert.Empty(t, sum.UpcomingEvents)
	assert.Empty(t, sum.RecentNews)
}

func TestSummaryService_Project(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	p, err := st.Projects.Create(ctx, &domain.Project{Title: "Sommerfest", Status: domain.ProjectYellow, CreatedAt: now})
	require.NoError(t, err)
	for _, s := range []domain.TaskStatus{domain.TaskOpen, domain.TaskOpen, domain.TaskDone} {
		_, err := st.Tasks.Create(ctx, &domain.Task{Title: "t", ProjectID: &p.ID, Status: s, CreatedAt: now})
		require.NoError(t, err)
	}
	_, _ = st.Events.Create(ctx, &domain.Event{Title: "Aufbau", ProjectID: &p.ID, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)})
	_, _ = st.Events.Create(ctx, &domain.Event{Title: "Fremd", Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)})

	sum, err := newSummary(st, now).Project(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.TotalTasks)
	assert.Equal(t, map[domain.TaskStatus]int{
		domain.TaskOpen:       2,
		domain.TaskInProgress: 0,
		domain.TaskDone:       1,
	}, sum.TaskCounts)
	require.Len(t, sum.UpcomingEvents, 1)
	assert.Equal(t, "Aufbau", sum.UpcomingEvents[0].Title)
}

func TestSummaryService_Project_ZeroTasks(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	p, _ := st.Projects.Create(ctx, &domain.Project{Title: "Leer", Status: domain.ProjectGreen})

	sum, err := newSummary(st, time.Now()).Project(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.TotalTasks)
	assert.Len(t, sum.TaskCounts, 3)
	for _, status := range domain.TaskStatuses {
		v, ok := sum.TaskCounts[status]
		assert.True(t, ok)
		assert.Zero(t, v)
	}
}

func TestSummaryService_Project_NotFound(t *testing.T) {
	_, err := newSummary(memory.NewStore(), time.Now()).Project(context.Background(), "404")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Project", nf.Entity)
}
