package handler

import (
	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

func toUserPatch(req updateUserRequest) domain.UserPatch {
	patch := domain.UserPatch{Name: req.Name}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}
	return patch
}

func toProject(req createProjectRequest) *domain.Project {
	return &domain.Project{
		Title:             req.Title,
		Description:       req.Description,
		Status:            domain.ProjectStatus(req.Status),
		ResponsibleUserID: req.ResponsibleUserID,
	}
}

func toProjectPatch(req updateProjectRequest) domain.ProjectPatch {
	patch := domain.ProjectPatch{
		Title:             req.Title,
		Description:       req.Description,
		ResponsibleUserID: req.ResponsibleUserID,
	}
	if req.Status != nil {
		s := domain.ProjectStatus(*req.Status)
		patch.Status = &s
	}
	return patch
}

func toProjectSummary(s *ports.ProjectSummary) projectSummaryResponse {
	counts := make(map[string]int, len(s.TaskCounts))
	for status, n := range s.TaskCounts {
		counts[string(status)] = n
	}
	return projectSummaryResponse{
		Project:        s.Project,
		TotalTasks:     s.TotalTasks,
		TaskCounts:     counts,
		UpcomingEvents: nonNil(s.UpcomingEvents),
		RecentNews:     nonNil(s.RecentNews),
	}
}

func toNews(req createNewsRequest) *domain.News {
	return &domain.News{
		Title:     req.Title,
		Body:      req.Body,
		Tags:      nonNil(req.Tags),
		IsPublic:  req.IsPublic,
		ProjectID: req.ProjectID,
	}
}

func toNewsPatch(req updateNewsRequest) domain.NewsPatch {
	return domain.NewsPatch{
		Title:     req.Title,
		Body:      req.Body,
		Tags:      req.Tags,
		IsPublic:  req.IsPublic,
		ProjectID: req.ProjectID,
	}
}

func toEvent(req createEventRequest) *domain.Event {
	return &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start.UTC(),
		End:         req.End.UTC(),
		RoomID:      req.RoomID,
		IsPublic:    req.IsPublic,
		ProjectID:   req.ProjectID,
		CreatedBy:   req.CreatedBy,
	}
}

func toEventPatch(req updateEventRequest) domain.EventPatch {
	patch := domain.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		RoomID:      req.RoomID,
		IsPublic:    req.IsPublic,
		ProjectID:   req.ProjectID,
	}
	if req.Start != nil {
		start := req.Start.UTC()
		patch.Start = &start
	}
	if req.End != nil {
		end := req.End.UTC()
		patch.End = &end
	}
	return patch
}

func toRoom(req createRoomRequest) *domain.Room {
	return &domain.Room{Name: req.Name, Description: req.Description, Capacity: req.Capacity}
}

func toRoomPatch(req updateRoomRequest) domain.RoomPatch {
	return domain.RoomPatch{Name: req.Name, Description: req.Description, Capacity: req.Capacity}
}

func toTask(req createTaskRequest) *domain.Task {
	t := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
		Status:      domain.TaskStatus(req.Status),
	}
	if req.DueDate != nil {
		due := req.DueDate.UTC()
		t.DueDate = &due
	}
	return t
}

func toTaskPatch(req updateTaskRequest) domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
	}
	if req.Status != nil {
		s := domain.TaskStatus(*req.Status)
		patch.Status = &s
	}
	if req.DueDate != nil {
		due := req.DueDate.UTC()
		patch.DueDate = &due
	}
	return patch
}

func toSystemStatusPatch(req updateSystemStatusRequest) domain.SystemStatusPatch {
	patch := domain.SystemStatusPatch{Service: req.Service, Message: req.Message}
	if req.Status != nil {
		s := domain.ServiceState(*req.Status)
		patch.Status = &s
	}
	return patch
}
