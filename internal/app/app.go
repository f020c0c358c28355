// Package app is the composition root: it turns a Config and a set of
// repositories into a fully wired HTTP handler.
package app

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/wfl/dashboard-api/internal/api"
	"github.com/wfl/dashboard-api/internal/api/middleware"
	"github.com/wfl/dashboard-api/internal/core/policy"
	"github.com/wfl/dashboard-api/internal/core/ports"
	"github.com/wfl/dashboard-api/internal/core/service"
	"github.com/wfl/dashboard-api/internal/infrastructure/db/memory"
	"github.com/wfl/dashboard-api/internal/infrastructure/db/mongo"
	"github.com/wfl/dashboard-api/internal/infrastructure/http/handlers"
	"github.com/wfl/dashboard-api/internal/pkg/config"
)

type Repositories struct {
	Users        ports.UserRepository
	Projects     ports.ProjectRepository
	News         ports.NewsRepository
	Events       ports.EventRepository
	Rooms        ports.RoomRepository
	Tasks        ports.TaskRepository
	Metrics      ports.MetricRepository
	SystemStatus ports.SystemStatusRepository
}

// MongoRepositories returns the mongo-backed repositories over db.
func MongoRepositories(db *mongodriver.Database) Repositories {
	return Repositories{
		Users:        mongo.NewUserRepository(db),
		Projects:     mongo.NewProjectRepository(db),
		News:         mongo.NewNewsRepository(db),
		Events:       mongo.NewEventRepository(db),
		Rooms:        mongo.NewRoomRepository(db),
		Tasks:        mongo.NewTaskRepository(db),
		Metrics:      mongo.NewMetricRepository(db),
		SystemStatus: mongo.NewSystemStatusRepository(db),
	}
}

// MemoryRepositories returns the repositories of an in-process store.
func MemoryRepositories(s *memory.Store) Repositories {
	return Repositories{
		Users:        s.Users,
		Projects:     s.Projects,
		News:         s.News,
		Events:       s.Events,
		Rooms:        s.Rooms,
		Tasks:        s.Tasks,
		Metrics:      s.Metrics,
		SystemStatus: s.SystemStatus,
	}
}

type Options struct {
	Config config.Config
	Repos  Repositories
	// Throttle may be nil, which disables login throttling.
	Throttle service.LoginThrottle
	// Audit may be nil, which disables the audit trail.
	Audit      middleware.AuditRecorder
	Readiness  map[string]handlers.Check
	Registerer prometheus.Registerer
	Logger     zerolog.Logger
	Now        func() time.Time
}

// Build constructs every service and returns the router dependencies.
func Build(opts Options) (api.Dependencies, error) {
	cfg := opts.Config
	log := opts.Logger
	component := func(name string) zerolog.Logger {
		return log.With().Str("component", name).Logger()
	}

	var tokenOpts []service.TokenOption
	if opts.Now != nil {
		tokenOpts = append(tokenOpts, service.WithClock(opts.Now))
	}
	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret:    cfg.Auth.SecretKey,
		Algorithm: cfg.Auth.Algorithm,
		TTL:       cfg.Auth.TokenTTL(),
	}, tokenOpts...)
	if err != nil {
		return api.Dependencies{}, err
	}

	creds, err := service.NewCredentialStore(opts.Repos.Users, service.BcryptHasher{Cost: cfg.Auth.BcryptCost}, component("credentials"))
	if err != nil {
		return api.Dependencies{}, fmt.Errorf("credential store: %w", err)
	}

	enforcer, err := policy.NewEnforcer(policy.DefaultTable())
	if err != nil {
		return api.Dependencies{}, fmt.Errorf("policy: %w", err)
	}

	r := opts.Repos

	deps := api.Dependencies{
		Auth:         service.NewAuthService(creds, r.Users, tokens, opts.Throttle, component("auth")),
		Users:        service.NewUserService(r.Users, creds, component("users")),
		Projects:     service.NewProjectService(r.Projects, component("projects")),
		News:         service.NewNewsService(r.News, component("news")),
		Events:       service.NewEventService(r.Events, r.Rooms, component("events")),
		Rooms:        service.NewRoomService(r.Rooms, component("rooms")),
		Tasks:        service.NewTaskService(r.Tasks, component("tasks")),
		Metrics:      service.NewMetricService(r.Metrics, component("metrics")),
		SystemStatus: service.NewSystemStatusService(r.SystemStatus, component("system_status")),
		Summary:      service.NewSummaryService(r.Projects, r.Tasks, r.Events, r.News, component("summary"), opts.Now),
		Resolver:     service.NewIdentityResolver(tokens, r.Users, component("identity")),
		Authorizer:   enforcer,
		Audit:        opts.Audit,
		Readiness:    opts.Readiness,
		Registerer:   opts.Registerer,
		Logger:       log,
		Now:          opts.Now,
	}
	return deps, nil
}

// NewHandler builds the dependencies and the router in one step.
func NewHandler(opts Options) (*echo.Echo, error) {
	deps, err := Build(opts)
	if err != nil {
		return nil, err
	}
	return api.NewRouter(deps), nil
}
