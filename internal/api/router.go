package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/wfl/dashboard-api/docs"
	"github.com/wfl/dashboard-api/internal/api/handler"
	"github.com/wfl/dashboard-api/internal/api/middleware"
	"github.com/wfl/dashboard-api/internal/core/policy"
	"github.com/wfl/dashboard-api/internal/core/ports"
	"github.com/wfl/dashboard-api/internal/infrastructure/http/handlers"
)

// Dependencies is everything the router needs. Services are built by the
// composition root; the router only wires them to routes.
type Dependencies struct {
	Auth         ports.AuthService
	Users        ports.UserService
	Projects     ports.ProjectService
	News         ports.NewsService
	Events       ports.EventService
	Rooms        ports.RoomService
	Tasks        ports.TaskService
	Metrics      ports.MetricService
	SystemStatus ports.SystemStatusService
	Summary      ports.SummaryService
	Resolver     ports.IdentityResolver
	Authorizer   middleware.Authorizer
	Audit        middleware.AuditRecorder // optional
	Readiness    map[string]handlers.Check
	Registerer   prometheus.Registerer // defaults to prometheus.DefaultRegisterer
	Logger       zerolog.Logger
	Now          func() time.Time
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "dashboard",
		Subsystem:  "http",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(deps.Readiness, 3*time.Second).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	api := e.Group("/api")
	if deps.Audit != nil {
		api.Use(middleware.Audit(deps.Audit))
	}

	authn := middleware.Authenticate(deps.Resolver)
	guard := func(op policy.Operation) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{authn, middleware.RBAC(deps.Authorizer, op)}
	}

	authH := handler.NewAuthHandler(deps.Auth)
	api.POST("/auth/login", authH.Login)
	api.POST("/auth/users", authH.CreateUser, guard(policy.OpUserCreate)...)

	statusH := handler.NewStatusHandler(deps.Summary, deps.Now)
	api.GET("/status/health", statusH.Health)
	api.GET("/status/summary", statusH.Summary)

	projectH := handler.NewProjectHandler(deps.Projects, deps.Summary)
	projects := api.Group("/projects")
	projects.GET("", projectH.List)
	projects.GET("/:id", projectH.Get)
	projects.GET("/:id/summary", projectH.Summary)
	projects.POST("", projectH.Create, guard(policy.OpProjectCreate)...)
	projects.PUT("/:id", projectH.Update, guard(policy.OpProjectUpdate)...)
	projects.DELETE("/:id", projectH.Delete, guard(policy.OpProjectDelete)...)

	newsH := handler.NewNewsHandler(deps.News)
	news := api.Group("/news")
	news.GET("", newsH.List)
	news.GET("/:id", newsH.Get)
	news.POST("", newsH.Create, guard(policy.OpNewsCreate)...)
	news.PUT("/:id", newsH.Update, guard(policy.OpNewsUpdate)...)
	news.DELETE("/:id", newsH.Delete, guard(policy.OpNewsDelete)...)

	eventH := handler.NewEventHandler(deps.Events)
	events := api.Group("/events")
	events.GET("", eventH.List)
	events.GET("/:id", eventH.Get)
	events.POST("", eventH.Create, guard(policy.OpEventCreate)...)
	events.PUT("/:id", eventH.Update, guard(policy.OpEventUpdate)...)
	events.DELETE("/:id", eventH.Delete, guard(policy.OpEventDelete)...)

	roomH := handler.NewRoomHandler(deps.Rooms)
	rooms := api.Group("/rooms")
	rooms.GET("", roomH.List)
	rooms.GET("/:id", roomH.Get)
	rooms.POST("", roomH.Create, guard(policy.OpRoomCreate)...)
	rooms.PUT("/:id", roomH.Update, guard(policy.OpRoomUpdate)...)
	rooms.DELETE("/:id", roomH.Delete, guard(policy.OpRoomDelete)...)

	taskH := handler.NewTaskHandler(deps.Tasks)
	tasks := api.Group("/tasks")
	tasks.GET("", taskH.List)
	tasks.GET("/:id", taskH.Get)
	tasks.POST("", taskH.Create, guard(policy.OpTaskCreate)...)
	tasks.PATCH("/:id", taskH.Update, guard(policy.OpTaskUpdate)...)
	tasks.DELETE("/:id", taskH.Delete, guard(policy.OpTaskDelete)...)

	metricH := handler.NewMetricHandler(deps.Metrics, deps.SystemStatus)
	metrics := api.Group("/metrics")
	metrics.GET("", metricH.ListMetrics)
	metrics.POST("", metricH.CreateMetric, guard(policy.OpMetricCreate)...)
	metrics.PATCH("/:id", metricH.UpdateMetric, guard(policy.OpMetricUpdate)...)
	metrics.DELETE("/:id", metricH.DeleteMetric, guard(policy.OpMetricDelete)...)

	systemStatus := api.Group("/system/status")
	systemStatus.GET("", metricH.ListStatuses)
	systemStatus.POST("", metricH.CreateStatus, guard(policy.OpSystemStatusCreate)...)
	systemStatus.PATCH("/:id", metricH.UpdateStatus, guard(policy.OpSystemStatusUpdate)...)
	systemStatus.DELETE("/:id", metricH.DeleteStatus, guard(policy.OpSystemStatusDelete)...)

	userH := handler.NewUserHandler(deps.Users)
	users := api.Group("/users")
	users.GET("", userH.List, guard(policy.OpUserList)...)
	users.GET("/me", userH.Me, guard(policy.OpUserMe)...)
	users.GET("/:id", userH.Get, guard(policy.OpUserRead)...)
	users.PATCH("/:id", userH.Update, guard(policy.OpUserUpdate)...)
	users.PATCH("/:id/password", userH.ChangePassword, guard(policy.OpUserPassword)...)
	users.DELETE("/:id", userH.Delete, guard(policy.OpUserDelete)...)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
