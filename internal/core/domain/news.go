package domain

import (
	"slices"
	"time"
)

type News struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	Tags      []string  `json:"tags" bson:"tags"`
	IsPublic  bool      `json:"is_public" bson:"is_public"`
	ProjectID *string   `json:"project_id" bson:"project_id,omitempty"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (n *News) Clone() *News {
	c := *n
	c.Tags = slices.Clone(n.Tags)
	return &c
}

type NewsPatch struct {
	Title     *string
	Body      *string
	Tags      *[]string
	IsPublic  *bool
	ProjectID *string
}
