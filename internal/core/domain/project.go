package domain

import "time"

type ProjectStatus string

const (
	ProjectGreen  ProjectStatus = "green"
	ProjectYellow ProjectStatus = "yellow"
	ProjectRed    ProjectStatus = "red"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectGreen, ProjectYellow, ProjectRed:
		return true
	}
	return false
}

type Project struct {
	ID                string        `json:"id" bson:"_id"`
	Title             string        `json:"title" bson:"title"`
	Description       string        `json:"description" bson:"description,omitempty"`
	Status            ProjectStatus `json:"status" bson:"status"`
	ResponsibleUserID *string       `json:"responsible_user_id" bson:"responsible_user_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
}

type ProjectPatch struct {
	Title             *string
	Description       *string
	Status            *ProjectStatus
	ResponsibleUserID *string
}
