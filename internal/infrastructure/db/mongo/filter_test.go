package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

func TestNewsFilter(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	public := false

	assert.Equal(t, bson.M{}, newsFilter(ports.NewsFilter{}))
	assert.Equal(t, bson.M{
		"tags":       "board",
		"is_public":  false,
		"created_at": bson.M{"$gte": since},
		"project_id": "p1",
	}, newsFilter(ports.NewsFilter{Tag: "board", IsPublic: &public, Since: since, ProjectID: "p1", Limit: 5}))
}

func TestEventFilter(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	assert.Equal(t, bson.M{"start": bson.M{"$gte": from}}, eventFilter(ports.EventFilter{StartFrom: from}))
	assert.Equal(t, bson.M{
		"start":   bson.M{"$gte": from, "$lte": to},
		"room_id": "r1",
	}, eventFilter(ports.EventFilter{StartFrom: from, StartTo: to, RoomID: "r1"}))
}

func TestTaskSet_OnlyAllowListedFields(t *testing.T) {
	done := domain.TaskDone
	assert.Equal(t, bson.M{"status": domain.TaskDone}, taskSet(domain.TaskPatch{Status: &done}))
	assert.Empty(t, taskSet(domain.TaskPatch{}))
	assert.Equal(t, bson.M{"status": domain.TaskOpen}, taskFilter(ports.TaskFilter{Status: domain.TaskOpen}))
}

func TestProjectSet(t *testing.T) {
	title := "Neu"
	assert.Equal(t, bson.M{"title": "Neu"}, projectSet(domain.ProjectPatch{Title: &title}))
}
