// Package memory is a process-local implementation of the record store used
// by tests and local development. Records are copied on the way in and out.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

// Store groups one repository per entity.
type Store struct {
	Users        *UserRepository
	Projects     *ProjectRepository
	News         *NewsRepository
	Events       *EventRepository
	Rooms        *RoomRepository
	Tasks        *TaskRepository
	Metrics      *MetricRepository
	SystemStatus *SystemStatusRepository
	Audit        *AuditRepository
}

func NewStore() *Store {
	return &Store{
		Users: &UserRepository{t: newTable[domain.User]("User").
			withUnique(func(u *domain.User) string { return u.Email }, "Email already registered")},
		Projects: &ProjectRepository{t: newTable[domain.Project]("Project")},
		News: &NewsRepository{t: newTable[domain.News]("News").
			withClone(func(n domain.News) domain.News { return *n.Clone() })},
		Events: &EventRepository{t: newTable[domain.Event]("Event")},
		Rooms: &RoomRepository{t: newTable[domain.Room]("Room").
			withUnique(func(r *domain.Room) string { return r.Name }, "Room name already exists")},
		Tasks: &TaskRepository{t: newTable[domain.Task]("Task")},
		Metrics: &MetricRepository{t: newTable[domain.Metric]("Metric").
			withUnique(func(m *domain.Metric) string { return m.Name }, "Metric name already exists")},
		SystemStatus: &SystemStatusRepository{t: newTable[domain.SystemStatus]("System status").
			withUnique(func(s *domain.SystemStatus) string { return s.Service }, "Service already tracked")},
		Audit: &AuditRepository{},
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type UserRepository struct{ t *table[domain.User] }

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return r.t.insert(ctx, func(id string) domain.User {
		v := *u
		v.ID = id
		v.Email = domain.NormalizeEmail(v.Email)
		return v
	})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.t.get(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	return r.t.findOne(ctx, func(u *domain.User) bool { return u.Email == email })
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	return r.t.list(ctx, nil, func(a, b *entry[domain.User]) int {
		if c := a.val.CreatedAt.Compare(b.val.CreatedAt); c != 0 {
			return c
		}
		return bySeqAsc(a, b)
	}, 0)
}

func (r *UserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	return r.t.update(ctx, id, func(u *domain.User) {
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
	})
}

func (r *UserRepository) SetPasswordHash(ctx context.Context, id, hash string) error {
	_, err := r.t.update(ctx, id, func(u *domain.User) { u.PasswordHash = hash })
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.t.remove(ctx, id)
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

type ProjectRepository struct{ t *table[domain.Project] }

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return r.t.insert(ctx, func(id string) domain.Project {
		v := *p
		v.ID = id
		return v
	})
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	return r.t.get(ctx, id)
}

func (r *ProjectRepository) List(ctx context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	match := func(p *domain.Project) bool { return f.Status == "" || p.Status == f.Status }
	return r.t.list(ctx, match, func(a, b *entry[domain.Project]) int {
		if c := b.val.CreatedAt.Compare(a.val.CreatedAt); c != 0 {
			return c
		}
		return bySeqAsc(b, a)
	}, f.Limit)
}

func (r *ProjectRepository) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	return r.t.update(ctx, id, func(p *domain.Project) {
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.ResponsibleUserID != nil {
			p.ResponsibleUserID = patch.ResponsibleUserID
		}
	})
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.t.remove(ctx, id)
}

// ---------------------------------------------------------------------------
// News
// ---------------------------------------------------------------------------

type NewsRepository struct{ t *table[domain.News] }

var _ ports.NewsRepository = (*NewsRepository)(nil)

func (r *NewsRepository) Create(ctx context.Context, n *domain.News) (*domain.News, error) {
	return r.t.insert(ctx, func(id string) domain.News {
		v := *n.Clone()
		v.ID = id
		return v
	})
}

func (r *NewsRepository) FindByID(ctx context.Context, id string) (*domain.News, error) {
	return r.t.get(ctx, id)
}

func (r *NewsRepository) List(ctx context.Context, f ports.NewsFilter) ([]*domain.News, error) {
	match := func(n *domain.News) bool {
		return (f.ProjectID == "" || eqPtr(n.ProjectID, f.ProjectID)) &&
			(f.Tag == "" || slices.Contains(n.Tags, f.Tag)) &&
			(f.IsPublic == nil || n.IsPublic == *f.IsPublic) &&
			(f.Since.IsZero() || !n.CreatedAt.Before(f.Since))
	}
	return r.t.list(ctx, match, func(a, b *entry[domain.News]) int {
		if c := b.val.CreatedAt.Compare(a.val.CreatedAt); c != 0 {
			return c
		}
		return bySeqAsc(b, a)
	}, f.Limit)
}

func (r *NewsRepository) Update(ctx context.Context, id string, patch domain.NewsPatch) (*domain.News, error) {
	return r.t.update(ctx, id, func(n *domain.News) {
		if patch.Title != nil {
			n.Title = *patch.Title
		}
		if patch.Body != nil {
			n.Body = *patch.Body
		}
		if patch.Tags != nil {
			n.Tags = slices.Clone(*patch.Tags)
		}
		if patch.IsPublic != nil {
			n.IsPublic = *patch.IsPublic
		}
		if patch.ProjectID != nil {
			n.ProjectID = patch.ProjectID
		}
	})
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	return r.t.remove(ctx, id)
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

type EventRepository struct{ t *table[domain.Event] }

var _ ports.EventRepository = (*EventRepository)(nil)

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	return r.t.insert(ctx, func(id string) domain.Event {
		v := *e
		v.ID = id
		return v
	})
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.t.get(ctx, id)
}

func (r *EventRepository) List(ctx context.Context, f ports.EventFilter) ([]*domain.Event, error) {
	match := func(e *domain.Event) bool {
		return (f.StartFrom.IsZero() || !e.Start.Before(f.StartFrom)) &&
			(f.StartTo.IsZero() || !e.Start.After(f.StartTo)) &&
			(f.RoomID == "" || e.RoomID == f.RoomID) &&
			(f.ProjectID == "" || eqPtr(e.ProjectID, f.ProjectID))
	}
	return r.t.list(ctx, match, func(a, b *entry[domain.Event]) int {
		if c := a.val.Start.Compare(b.val.Start); c != 0 {
			return c
		}
		return bySeqAsc(a, b)
	}, f.Limit)
}

func (r *EventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	return r.t.update(ctx, id, func(e *domain.Event) { *e = patch.Apply(*e) })
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.t.remove(ctx, id)
}

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

type RoomRepository struct{ t *table[domain.Room] }

var _ ports.RoomRepository = (*RoomRepository)(nil)

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	return r.t.insert(ctx, func(id string) domain.Room {
		v := *room
		v.ID = id
		return v
	})
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	return r.t.get(ctx, id)
}

func (r *RoomRepository) FindByName(ctx context.Context, name string) (*domain.Room, error) {
	return r.t.findOne(ctx, func(room *domain.Room) bool { return room.Name == name })
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	return r.t.list(ctx, nil, func(a, b *entry[domain.Room]) int {
		return cmp.Compare(a.val.Name, b.val.Name)
	}, 0)
}

func (r *RoomRepository) Update(ctx context.Context, id string, patch domain.RoomPatch) (*domain.Room, error) {
	return r.t.update(ctx, id, func(room *domain.Room) {
		if patch.Name != nil {
			room.Name = *patch.Name
		}
		if patch.Description != nil {
			room.Description = *patch.Description
		}
		if patch.Capacity != nil {
			room.Capacity = patch.Capacity
		}
	})
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return r.t.remove(ctx, id)
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

type TaskRepository struct{ t *table[domain.Task] }

var _ ports.TaskRepository = (*TaskRepository)(nil)

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	return r.t.insert(ctx, func(id string) domain.Task {
		v := *t
		v.ID = id
		return v
	})
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	return r.t.get(ctx, id)
}

func (r *TaskRepository) List(ctx context.Context, f ports.TaskFilter) ([]*domain.Task, error) {
	match := func(t *domain.Task) bool {
		return (f.AssigneeID == "" || eqPtr(t.AssigneeID, f.AssigneeID)) &&
			(f.ProjectID == "" || eqPtr(t.ProjectID, f.ProjectID)) &&
			(f.Status == "" || t.Status == f.Status)
	}
	return r.t.list(ctx, match, func(a, b *entry[domain.Task]) int {
		if c := compareDue(a.val.DueDate, b.val.DueDate); c != 0 {
			return c
		}
		if c := b.val.CreatedAt.Compare(a.val.CreatedAt); c != 0 {
			return c
		}
		return bySeqAsc(b, a)
	}, 0)
}

// compareDue orders undated tasks first.
func compareDue(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

func (r *TaskRepository) CountByStatus(ctx context.Context, projectID string) (map[domain.TaskStatus]int, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := make(map[domain.TaskStatus]int, len(domain.TaskStatuses))
	for _, st := range domain.TaskStatuses {
		if n := r.t.count(func(t *domain.Task) bool {
			return eqPtr(t.ProjectID, projectID) && t.Status == st
		}); n > 0 {
			out[st] = n
		}
	}
	return out, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	return r.t.update(ctx, id, func(t *domain.Task) {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.ProjectID != nil {
			t.ProjectID = patch.ProjectID
		}
		if patch.AssigneeID != nil {
			t.AssigneeID = patch.AssigneeID
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.DueDate != nil {
			t.DueDate = patch.DueDate
		}
	})
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.t.remove(ctx, id)
}

// ---------------------------------------------------------------------------
// Metrics and system status
// ---------------------------------------------------------------------------

type MetricRepository struct{ t *table[domain.Metric] }

var _ ports.MetricRepository = (*MetricRepository)(nil)

func (r *MetricRepository) Create(ctx context.Context, m *domain.Metric) (*domain.Metric, error) {
	return r.t.insert(ctx, func(id string) domain.Metric {
		v := *m
		v.ID = id
		return v
	})
}

func (r *MetricRepository) FindByID(ctx context.Context, id string) (*domain.Metric, error) {
	return r.t.get(ctx, id)
}

func (r *MetricRepository) List(ctx context.Context) ([]*domain.Metric, error) {
	return r.t.list(ctx, nil, func(a, b *entry[domain.Metric]) int {
		return cmp.Compare(a.val.Name, b.val.Name)
	}, 0)
}

func (r *MetricRepository) Update(ctx context.Context, id string, patch domain.MetricPatch, at time.Time) (*domain.Metric, error) {
	return r.t.update(ctx, id, func(m *domain.Metric) {
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Value != nil {
			m.Value = *patch.Value
		}
		m.UpdatedAt = at
	})
}

func (r *MetricRepository) Delete(ctx context.Context, id string) error {
	return r.t.remove(ctx, id)
}

type SystemStatusRepository struct{ t *table[domain.SystemStatus] }

var _ ports.SystemStatusRepository = (*SystemStatusRepository)(nil)

func (r *SystemStatusRepository) Create(ctx context.Context, s *domain.SystemStatus) (*domain.SystemStatus, error) {
	return r.t.insert(ctx, func(id string) domain.SystemStatus {
		v := *s
		v.ID = id
		return v
	})
}

func (r *SystemStatusRepository) FindByID(ctx context.Context, id string) (*domain.SystemStatus, error) {
	return r.t.get(ctx, id)
}

func (r *SystemStatusRepository) List(ctx context.Context) ([]*domain.SystemStatus, error) {
	return r.t.list(ctx, nil, func(a, b *entry[domain.SystemStatus]) int {
		return cmp.Compare(a.val.Service, b.val.Service)
	}, 0)
}

func (r *SystemStatusRepository) Update(ctx context.Context, id string, patch domain.SystemStatusPatch, at time.Time) (*domain.SystemStatus, error) {
	return r.t.update(ctx, id, func(s *domain.SystemStatus) {
		if patch.Service != nil {
			s.Service = *patch.Service
		}
		if patch.Status != nil {
			s.Status = *patch.Status
		}
		if patch.Message != nil {
			s.Message = *patch.Message
		}
		s.UpdatedAt = at
	})
}

func (r *SystemStatusRepository) Delete(ctx context.Context, id string) error {
	return r.t.remove(ctx, id)
}

// ---------------------------------------------------------------------------
// Audit
// ---------------------------------------------------------------------------

type AuditRepository struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

var _ ports.AuditRepository = (*AuditRepository)(nil)

func (r *AuditRepository) Insert(ctx context.Context, e *domain.AuditEntry) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

// Entries returns a snapshot of everything recorded so far.
func (r *AuditRepository) Entries() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}
