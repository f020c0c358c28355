package domain

import "time"

type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// TaskStatuses is the full closed set; summaries report a count for each.
var TaskStatuses = []TaskStatus{TaskOpen, TaskInProgress, TaskDone}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskOpen, TaskInProgress, TaskDone:
		return true
	}
	return false
}

type Task struct {
	ID          string     `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description,omitempty"`
	ProjectID   *string    `json:"project_id" bson:"project_id,omitempty"`
	AssigneeID  *string    `json:"assignee_id" bson:"assignee_id,omitempty"`
	Status      TaskStatus `json:"status" bson:"status"`
	DueDate     *time.Time `json:"due_date" bson:"due_date,omitempty"`
	CreatedBy   string     `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}

// IsAssignee reports whether userID is the task's current assignee.
func (t *Task) IsAssignee(userID string) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

type TaskPatch struct {
	Title       *string
	Description *string
	ProjectID   *string
	AssigneeID  *string
	Status      *TaskStatus
	DueDate     *time.Time
}

// AssigneeScoped reports whether the patch sets only fields an assignee may
// change on their own task: status and description.
func (p TaskPatch) AssigneeScoped() bool {
	return p.Title == nil && p.ProjectID == nil && p.AssigneeID == nil && p.DueDate == nil
}
