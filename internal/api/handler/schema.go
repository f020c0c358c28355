package handler

import (
	"time"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"required,oneof=admin vorstand team mitarbeit public"`
}

// --- Users ---

type updateUserRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Role *string `json:"role" validate:"omitempty,oneof=admin vorstand team mitarbeit public"`
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// --- Projects ---

type createProjectRequest struct {
	Title             string  `json:"title"               validate:"required,max=200"`
	Description       string  `json:"description"         validate:"max=5000"`
	Status            string  `json:"status"              validate:"omitempty,oneof=green yellow red"`
	ResponsibleUserID *string `json:"responsible_user_id" validate:"omitempty,min=1"`
}

type updateProjectRequest struct {
	Title             *string `json:"title"               validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description"         validate:"omitempty,max=5000"`
	Status            *string `json:"status"              validate:"omitempty,oneof=green yellow red"`
	ResponsibleUserID *string `json:"responsible_user_id" validate:"omitempty,min=1"`
}

type projectSummaryResponse struct {
	Project        *domain.Project `json:"project"`
	TotalTasks     int             `json:"total_tasks"`
	TaskCounts     map[string]int  `json:"task_counts"`
	UpcomingEvents []*domain.Event `json:"upcoming_events"`
	RecentNews     []*domain.News  `json:"recent_news"`
}

// --- News ---

type createNewsRequest struct {
	Title     string   `json:"title"      validate:"required,max=200"`
	Body      string   `json:"body"       validate:"required"`
	Tags      []string `json:"tags"       validate:"max=20,dive,min=1,max=50"`
	IsPublic  bool     `json:"is_public"`
	ProjectID *string  `json:"project_id" validate:"omitempty,min=1"`
}

type updateNewsRequest struct {
	Title     *string   `json:"title"      validate:"omitempty,min=1,max=200"`
	Body      *string   `json:"body"       validate:"omitempty,min=1"`
	Tags      *[]string `json:"tags"       validate:"omitempty,max=20,dive,min=1,max=50"`
	IsPublic  *bool     `json:"is_public"`
	ProjectID *string   `json:"project_id" validate:"omitempty,min=1"`
}

// --- Events ---

type createEventRequest struct {
	Title       string    `json:"title"       validate:"required,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	Start       time.Time `json:"start"       validate:"required"`
	End         time.Time `json:"end"         validate:"required,gtefield=Start"`
	RoomID      string    `json:"room_id"     validate:"required"`
	IsPublic    bool      `json:"is_public"`
	ProjectID   *string   `json:"project_id"  validate:"omitempty,min=1"`
	CreatedBy   string    `json:"created_by"`
}

type updateEventRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	RoomID      *string    `json:"room_id"     validate:"omitempty,min=1"`
	IsPublic    *bool      `json:"is_public"`
	ProjectID   *string    `json:"project_id"  validate:"omitempty,min=1"`
}

// --- Rooms ---

type createRoomRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Capacity    *int   `json:"capacity"    validate:"omitempty,gte=0"`
}

type updateRoomRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Capacity    *int    `json:"capacity"    validate:"omitempty,gte=0"`
}

// --- Tasks ---

type createTaskRequest struct {
	Title       string     `json:"title"       validate:"required,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	ProjectID   *string    `json:"project_id"  validate:"omitempty,min=1"`
	AssigneeID  *string    `json:"assignee_id" validate:"omitempty,min=1"`
	Status      string     `json:"status"      validate:"omitempty,oneof=open in_progress done"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	ProjectID   *string    `json:"project_id"  validate:"omitempty,min=1"`
	AssigneeID  *string    `json:"assignee_id" validate:"omitempty,min=1"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=open in_progress done"`
	DueDate     *time.Time `json:"due_date"`
}

// --- Metrics and system status ---

type createMetricRequest struct {
	Name  string   `json:"name"  validate:"required,max=100"`
	Value *float64 `json:"value" validate:"required"`
}

type updateMetricRequest struct {
	Name  *string  `json:"name"  validate:"omitempty,min=1,max=100"`
	Value *float64 `json:"value"`
}

type createSystemStatusRequest struct {
	Service string `json:"service" validate:"required,max=100"`
	Status  string `json:"status"  validate:"required,oneof=ok warning down planned"`
	Message string `json:"message" validate:"max=2000"`
}

type updateSystemStatusRequest struct {
	Service *string `json:"service" validate:"omitempty,min=1,max=100"`
	Status  *string `json:"status"  validate:"omitempty,oneof=ok warning down planned"`
	Message *string `json:"message" validate:"omitempty,max=2000"`
}

// --- Status ---

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type dashboardSummaryResponse struct {
	Projects       []*domain.Project `json:"projects"`
	UpcomingEvents []*domain.Event   `json:"upcoming_events"`
	RecentNews     []*domain.News    `json:"recent_news"`
}
