package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/infrastructure/db/memory"
	"github.com/wfl/dashboard-api/internal/infrastructure/queue"
	"github.com/wfl/dashboard-api/internal/pkg/config"
)

const (
	adminEmail    = "admin@wfl.example"
	adminPassword = "admin-password-1"
)

type harness struct {
	e     *echo.Echo
	store *memory.Store
}

func newHarness(t *testing.T, opts ...func(*Options)) *harness {
	t.Helper()

	cfg, err := config.LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SECRET_KEY":  "test-secret",
		"BCRYPT_COST": "4",
	}))
	require.NoError(t, err)

	store := memory.NewStore()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = store.Users.Create(context.Background(), &domain.User{
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	o := Options{
		Config:     cfg,
		Repos:      MemoryRepositories(store),
		Registerer: prometheus.NewRegistry(),
		Logger:     zerolog.Nop(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	e, err := NewHandler(o)
	require.NoError(t, err)
	return &harness{e: e, store: store}
}

func (h *harness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	return rec
}

func (h *harness) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tok struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	require.Equal(t, "bearer", tok.TokenType)
	require.NotEmpty(t, tok.AccessToken)
	return tok.AccessToken
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestEndToEnd_DashboardScenario(t *testing.T) {
	h := newHarness(t)
	admin := h.login(t, adminEmail, adminPassword)

	rec := h.do(t, http.MethodPost, "/api/auth/users", admin, map[string]string{
		"name": "Tina Team", "email": "tina@wfl.example", "password": "team-password", "role": "team",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	teamUser := decode[domain.User](t, rec)

	rec = h.do(t, http.MethodPost, "/api/projects", admin, map[string]any{
		"title": "Community Garden", "responsible_user_id": teamUser.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	project := decode[domain.Project](t, rec)
	assert.Equal(t, domain.ProjectGreen, project.Status)

	rec = h.do(t, http.MethodPost, "/api/rooms", admin, map[string]any{"name": "Saal 1", "capacity": 40})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	room := decode[domain.Room](t, rec)

	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	rec = h.do(t, http.MethodPost, "/api/events", admin, map[string]any{
		"title":      "Planting day",
		"start":      start.Format(time.RFC3339),
		"end":        start.Add(2 * time.Hour).Format(time.RFC3339),
		"room_id":    room.ID,
		"project_id": project.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	event := decode[domain.Event](t, rec)
	assert.NotEmpty(t, event.CreatedBy)

	rec = h.do(t, http.MethodPost, "/api/news", admin, map[string]any{
		"title": "Garden opens", "body": "See you there", "tags": []string{"garden"}, "project_id": project.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = h.do(t, http.MethodGet, "/api/status/summary", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[struct {
		Projects       []domain.Project `json:"projects"`
		UpcomingEvents []domain.Event   `json:"upcoming_events"`
		RecentNews     []domain.News    `json:"recent_news"`
	}](t, rec)
	require.Len(t, summary.Projects, 1)
	assert.Equal(t, project.ID, summary.Projects[0].ID)
	assert.NotEmpty(t, summary.UpcomingEvents)
	assert.NotEmpty(t, summary.RecentNews)

	rec = h.do(t, http.MethodGet, "/api/projects/"+project.ID+"/summary", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ps := decode[struct {
		TotalTasks int            `json:"total_tasks"`
		TaskCounts map[string]int `json:"task_counts"`
	}](t, rec)
	assert.Equal(t, 0, ps.TotalTasks)
	assert.Equal(t, map[string]int{"open": 0, "in_progress": 0, "done": 0}, ps.TaskCounts)

	// Creating a project without a token is rejected.
	rec = h.do(t, http.MethodPost, "/api/projects", "", map[string]any{"title": "Nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	assert.JSONEq(t, `{"error":"Could not validate credentials"}`, rec.Body.String())
}

func TestEndToEnd_RoleAndOwnershipRules(t *testing.T) {
	h := newHarness(t)
	admin := h.login(t, adminEmail, adminPassword)

	create := func(name, email, role string) domain.User {
		rec := h.do(t, http.MethodPost, "/api/auth/users", admin, map[string]string{
			"name": name, "email": email, "password": "long-enough-pw", "role": role,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		return decode[domain.User](t, rec)
	}
	team := create("Tom", "tom@wfl.example", "team")
	helper := create("Mia", "mia@wfl.example", "mitarbeit")
	teamTok := h.login(t, "TOM@wfl.example", "long-enough-pw")
	helperTok := h.login(t, "mia@wfl.example", "long-enough-pw")

	// team may create but not delete projects.
	rec := h.do(t, http.MethodPost, "/api/projects", teamTok, map[string]any{"title": "Repair cafe"})
	require.Equal(t, http.StatusCreated, rec.Code)
	project := decode[domain.Project](t, rec)
	rec = h.do(t, http.MethodDelete, "/api/projects/"+project.ID, teamTok, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// mitarbeit cannot create tasks, but may move their own task along.
	rec = h.do(t, http.MethodPost, "/api/tasks", helperTok, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/tasks", teamTok, map[string]any{
		"title": "Order tools", "project_id": project.ID, "assignee_id": helper.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	task := decode[domain.Task](t, rec)
	assert.Equal(t, domain.TaskOpen, task.Status)

	rec = h.do(t, http.MethodPatch, "/api/tasks/"+task.ID, helperTok, map[string]any{"status": "in_progress"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.TaskInProgress, decode[domain.Task](t, rec).Status)

	rec = h.do(t, http.MethodPatch, "/api/tasks/"+task.ID, helperTok, map[string]any{"assignee_id": team.ID})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Cannot modify this task"}`, rec.Body.String())

	// Self-edit of name works; self role escalation does not.
	rec = h.do(t, http.MethodPatch, "/api/users/"+team.ID, teamTok, map[string]any{"name": "Thomas"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Thomas", decode[domain.User](t, rec).Name)

	rec = h.do(t, http.MethodPatch, "/api/users/"+team.ID, teamTok, map[string]any{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Only admins may change roles"}`, rec.Body.String())

	// A user may not read someone else's profile.
	rec = h.do(t, http.MethodGet, "/api/users/"+team.ID, helperTok, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/users/me", helperTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[map[string]any](t, rec)
	assert.Equal(t, "mia@wfl.example", me["email"])
	assert.NotContains(t, me, "password_hash")

	// Deleting the user invalidates their token.
	rec = h.do(t, http.MethodDelete, "/api/users/"+helper.ID, admin, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = h.do(t, http.MethodGet, "/api/users/me", helperTok, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEndToEnd_RequestValidation(t *testing.T) {
	h := newHarness(t)
	admin := h.login(t, adminEmail, adminPassword)

	rec := h.do(t, http.MethodPost, "/api/projects", admin, map[string]any{"title": "P"})
	require.Equal(t, http.StatusCreated, rec.Code)
	project := decode[domain.Project](t, rec)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		code   int
	}{
		{"unknown update field", http.MethodPut, "/api/projects/" + project.ID, map[string]any{"owner": "x"}, http.StatusUnprocessableEntity},
		{"bad status", http.MethodPut, "/api/projects/" + project.ID, map[string]any{"status": "purple"}, http.StatusUnprocessableEntity},
		{"missing project", http.MethodPut, "/api/projects/nope", map[string]any{"title": "x"}, http.StatusNotFound},
		{"short password", http.MethodPost, "/api/auth/users", map[string]any{"name": "a", "email": "a@b.de", "password": "short", "role": "team"}, http.StatusUnprocessableEntity},
		{"duplicate email", http.MethodPost, "/api/auth/users", map[string]any{"name": "a", "email": "ADMIN@wfl.example", "password": "long-enough", "role": "team"}, http.StatusConflict},
		{"unknown role", http.MethodPost, "/api/auth/users", map[string]any{"name": "a", "email": "c@b.de", "password": "long-enough", "role": "root"}, http.StatusUnprocessableEntity},
		{"event in missing room", http.MethodPost, "/api/events", map[string]any{"title": "e", "start": "2030-01-01T10:00:00Z", "end": "2030-01-01T11:00:00Z", "room_id": "nope"}, http.StatusNotFound},
		{"event ends before start", http.MethodPost, "/api/events", map[string]any{"title": "e", "start": "2030-01-01T10:00:00Z", "end": "2030-01-01T09:00:00Z", "room_id": "nope"}, http.StatusUnprocessableEntity},
		{"news limit out of range", http.MethodGet, "/api/news?limit=500", nil, http.StatusUnprocessableEntity},
		{"news limit zero", http.MethodGet, "/api/news?limit=0", nil, http.StatusUnprocessableEntity},
		{"bad since", http.MethodGet, "/api/news?since=yesterday", nil, http.StatusUnprocessableEntity},
		{"bad task status filter", http.MethodGet, "/api/tasks?status=later", nil, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(t, tt.method, tt.path, admin, tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestEndToEnd_LoginFailuresAreUniform(t *testing.T) {
	h := newHarness(t)

	wrongPw := h.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": adminEmail, "password": "nope"})
	noUser := h.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ghost@wfl.example", "password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, wrongPw.Code, noUser.Code)
	assert.Equal(t, wrongPw.Body.String(), noUser.Body.String())
	assert.JSONEq(t, `{"error":"Incorrect email or password"}`, noUser.Body.String())
}

func TestEndToEnd_FormLogin(t *testing.T) {
	h := newHarness(t)

	form := url.Values{"username": {adminEmail}, "password": {adminPassword}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}

func TestEndToEnd_AuditTrail(t *testing.T) {
	store := memory.NewStore()
	dispatcher := queue.NewDispatcher(2, store.Audit, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	dispatcher.Start(ctx)

	h := newHarness(t, func(o *Options) { o.Audit = dispatcher })
	admin := h.login(t, adminEmail, adminPassword)

	rec := h.do(t, http.MethodPost, "/api/rooms", admin, map[string]any{"name": "Werkstatt"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = h.do(t, http.MethodPost, "/api/rooms", admin, map[string]any{"name": "Werkstatt"})
	require.Equal(t, http.StatusConflict, rec.Code)
	h.do(t, http.MethodGet, "/api/rooms", "", nil)

	cancel()
	dispatcher.Wait()

	var roomWrites []domain.AuditEntry
	for _, e := range store.Audit.Entries() {
		if e.Path == "/api/rooms" {
			roomWrites = append(roomWrites, e)
		}
	}
	require.Len(t, roomWrites, 1)
	assert.Equal(t, http.MethodPost, roomWrites[0].Method)
	assert.Equal(t, http.StatusCreated, roomWrites[0].Status)
	assert.Equal(t, adminEmail, roomWrites[0].ActorEmail)
	assert.NotEmpty(t, roomWrites[0].RequestID)
}

func TestEndToEnd_OperationalEndpoints(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/status/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"online"`)

	rec = h.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
