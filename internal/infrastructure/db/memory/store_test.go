package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func TestUserRepository_EmailUniqueAndNormalised(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	u, err := st.Users.Create(ctx, &domain.User{Name: "Anna", Email: " Anna@Example.org ", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "anna@example.org", u.Email)
	assert.NotEmpty(t, u.ID)

	_, err = st.Users.Create(ctx, &domain.User{Name: "Dup", Email: "anna@example.org"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	found, err := st.Users.FindByEmail(ctx, "ANNA@example.org")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = st.Users.FindByEmail(ctx, "ghost@example.org")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "User", nf.Entity)
}

func TestProjectRepository_NewestFirstWithInsertionTieBreak(t *testing.T) {
	ctx := context.Background()
	st := NewStore()
	same := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	first, _ := st.Projects.Create(ctx, &domain.Project{Title: "a", Status: domain.ProjectGreen, CreatedAt: same})
	second, _ := st.Projects.Create(ctx, &domain.Project{Title: "b", Status: domain.ProjectRed, CreatedAt: same})
	older, _ := st.Projects.Create(ctx, &domain.Project{Title: "c", Status: domain.ProjectGreen, CreatedAt: same.Add(-time.Hour)})

	list, err := st.Projects.List(ctx, ports.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{second.ID, first.ID, older.ID}, []string{list[0].ID, list[1].ID, list[2].ID})

	green, err := st.Projects.List(ctx, ports.ProjectFilter{Status: domain.ProjectGreen, Limit: 1})
	require.NoError(t, err)
	require.Len(t, green, 1)
	assert.Equal(t, first.ID, green[0].ID)
}

func TestTaskRepository_OrderAndCounts(t *testing.T) {
	ctx := context.Background()
	st := NewStore()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	later := base.Add(48 * time.Hour)
	p := strPtr("p1")

	dated, _ := st.Tasks.Create(ctx, &domain.Task{Title: "dated", ProjectID: p, Status: domain.TaskOpen, DueDate: &later, CreatedAt: base})
	undated, _ := st.Tasks.Create(ctx, &domain.Task{Title: "undated", ProjectID: p, Status: domain.TaskDone, CreatedAt: base})
	soon, _ := st.Tasks.Create(ctx, &domain.Task{Title: "soon", ProjectID: p, Status: domain.TaskOpen, DueDate: &base, CreatedAt: base})
	_, _ = st.Tasks.Create(ctx, &domain.Task{Title: "elsewhere", ProjectID: strPtr("p2"), Status: domain.TaskOpen, CreatedAt: base})

	list, err := st.Tasks.List(ctx, ports.TaskFilter{ProjectID: "p1"})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{undated.ID, soon.ID, dated.ID}, []string{list[0].ID, list[1].ID, list[2].ID})

	counts, err := st.Tasks.CountByStatus(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, counts[domain.TaskOpen])
	assert.Equal(t, 1, counts[domain.TaskDone])
	assert.Equal(t, 0, counts[domain.TaskInProgress])
}

func TestNewsRepository_FiltersAndCopies(t *testing.T) {
	ctx := context.Background()
	st := NewStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	n, err := st.News.Create(ctx, &domain.News{Title: "t", Body: "b", Tags: []string{"board"}, IsPublic: true, CreatedAt: now})
	require.NoError(t, err)
	_, _ = st.News.Create(ctx, &domain.News{Title: "old", Body: "b", Tags: []string{"misc"}, CreatedAt: now.Add(-72 * time.Hour)})

	n.Tags[0] = "mutated"
	stored, err := st.News.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"board"}, stored.Tags)

	public := true
	list, err := st.News.List(ctx, ports.NewsFilter{IsPublic: &public})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = st.News.List(ctx, ports.NewsFilter{Tag: "misc"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = st.News.List(ctx, ports.NewsFilter{Since: now.Add(-time.Hour)})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRoomRepository_RenameConflict(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	a, _ := st.Rooms.Create(ctx, &domain.Room{Name: "Aula"})
	_, _ = st.Rooms.Create(ctx, &domain.Room{Name: "Werkstatt"})

	_, err := st.Rooms.Update(ctx, a.ID, domain.RoomPatch{Name: strPtr("Werkstatt")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	rooms, err := st.Rooms.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Aula", rooms[0].Name)
}

func TestDelete_NotFound(t *testing.T) {
	st := NewStore()
	assert.ErrorIs(t, st.Events.Delete(context.Background(), "42"), domain.ErrNotFound)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().Metrics.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
