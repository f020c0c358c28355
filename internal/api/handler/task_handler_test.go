package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

type stubTaskService struct {
	ports.TaskService
	gotPrincipal *domain.Principal
	gotID        string
	gotPatch     domain.TaskPatch
}

func (s *stubTaskService) Update(_ context.Context, p *domain.Principal, id string, patch domain.TaskPatch) (*domain.Task, error) {
	s.gotPrincipal, s.gotID, s.gotPatch = p, id, patch
	return &domain.Task{ID: id, Status: *patch.Status}, nil
}

func TestTaskHandler_Update_MapsPatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubTaskService{}
	c, rec := jsonContext(e, http.MethodPatch, "/api/tasks/9", `{"status":"done","due_date":"2030-05-01T10:00:00+02:00"}`)
	c.SetParamNames("id")
	c.SetParamValues("9")
	caller := &domain.Principal{UserID: "u1", Role: domain.RoleMitarbeit}
	c.Set("principal", caller)

	if err := NewTaskHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotPrincipal != caller || stub.gotID != "9" {
		t.Fatalf("unexpected call: %+v %s", stub.gotPrincipal, stub.gotID)
	}
	if stub.gotPatch.Status == nil || *stub.gotPatch.Status != domain.TaskDone {
		t.Fatalf("status not mapped: %+v", stub.gotPatch)
	}
	if stub.gotPatch.DueDate == nil || stub.gotPatch.DueDate.Location().String() != "UTC" || stub.gotPatch.DueDate.Hour() != 8 {
		t.Fatalf("due date not normalised to UTC: %v", stub.gotPatch.DueDate)
	}
	if stub.gotPatch.Title != nil || stub.gotPatch.AssigneeID != nil {
		t.Fatalf("absent fields must stay nil: %+v", stub.gotPatch)
	}
}

func TestTaskHandler_Update_RequiresPrincipal(t *testing.T) {
	e := newTestEcho()
	c, _ := jsonContext(e, http.MethodPatch, "/api/tasks/9", `{"status":"done"}`)

	err := NewTaskHandler(&stubTaskService{}).Update(c)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestTaskHandler_Update_RejectsUnknownStatus(t *testing.T) {
	e := newTestEcho()
	c, _ := jsonContext(e, http.MethodPatch, "/api/tasks/9", `{"status":"blocked"}`)
	c.Set("principal", &domain.Principal{UserID: "u1"})

	err := NewTaskHandler(&stubTaskService{}).Update(c)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
