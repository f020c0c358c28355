package domain

import "time"

type Event struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description,omitempty"`
	Start       time.Time `json:"start" bson:"start"`
	End         time.Time `json:"end" bson:"end"`
	RoomID      string    `json:"room_id" bson:"room_id"`
	IsPublic    bool      `json:"is_public" bson:"is_public"`
	ProjectID   *string   `json:"project_id" bson:"project_id,omitempty"`
	CreatedBy   string    `json:"created_by" bson:"created_by"`
}

type EventPatch struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	RoomID      *string
	IsPublic    *bool
	ProjectID   *string
}

// Apply returns a copy of e with the patch applied.
func (p EventPatch) Apply(e Event) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.RoomID != nil {
		e.RoomID = *p.RoomID
	}
	if p.IsPublic != nil {
		e.IsPublic = *p.IsPublic
	}
	if p.ProjectID != nil {
		e.ProjectID = p.ProjectID
	}
	return e
}
