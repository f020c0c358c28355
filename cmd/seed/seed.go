package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wfl/dashboard-api/internal/app"
	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/service"
)

const adminEmail = "admin@wfl.local"

type seeder struct {
	repos  app.Repositories
	hasher service.PasswordHasher
	now    time.Time
	log    zerolog.Logger
}

// run populates an empty database with demo data. A database that already
// holds the admin account is left untouched.
func (s seeder) run(ctx context.Context, adminPassword, userPassword string) error {
	if _, err := s.repos.Users.FindByEmail(ctx, adminEmail); err == nil {
		s.log.Info().Msg("admin account exists, skipping seed")
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check existing data: %w", err)
	}

	day := 24 * time.Hour

	admin, err := s.user(ctx, "Admin User", adminEmail, adminPassword, domain.RoleAdmin)
	if err != nil {
		return err
	}
	board, err := s.user(ctx, "Petra Vogel", "petra@wfl.local", userPassword, domain.RoleVorstand)
	if err != nil {
		return err
	}
	sarah, err := s.user(ctx, "Sarah Meyer", "sarah@wfl.local", userPassword, domain.RoleTeam)
	if err != nil {
		return err
	}
	jonas, err := s.user(ctx, "Jonas Müller", "jonas@wfl.local", userPassword, domain.RoleMitarbeit)
	if err != nil {
		return err
	}
	s.log.Info().Int("count", 4).Msg("users created")

	projects := make([]*domain.Project, 0, 3)
	for _, p := range []domain.Project{
		{Title: "Digitalisierung Sportverein", Description: "Einführung einer neuen Vereinssoftware.", Status: domain.ProjectGreen, ResponsibleUserID: &sarah.ID, CreatedAt: s.now.Add(-10 * day)},
		{Title: "Sommerfest", Description: "Planung des jährlichen Sommerfests.", Status: domain.ProjectYellow, ResponsibleUserID: &jonas.ID, CreatedAt: s.now.Add(-5 * day)},
		{Title: "Website Relaunch", Description: "Neugestaltung der Homepage.", Status: domain.ProjectRed, ResponsibleUserID: &admin.ID, CreatedAt: s.now.Add(-20 * day)},
	} {
		created, err := s.repos.Projects.Create(ctx, &p)
		if err != nil {
			return fmt.Errorf("create project %q: %w", p.Title, err)
		}
		projects = append(projects, created)
	}

	for _, n := range []domain.News{
		{Title: "Pressekonferenz zur neuen Sozialberatung", Body: "Die Pressekonferenz war ein voller Erfolg.", Tags: []string{"Öffentlich", "Presse"}, IsPublic: true, AuthorID: admin.ID, CreatedAt: s.now},
		{Title: "Raumplanung für Adventskonzert abgeschlossen", Body: "Alle Räume sind gebucht und bestätigt.", Tags: []string{"Intern", "Planung"}, AuthorID: sarah.ID, CreatedAt: s.now.Add(-1 * day)},
		{Title: "Förderantrag „Sport für alle“ bewilligt", Body: "Wir haben die Zusage für die Fördermittel erhalten!", Tags: []string{"Vorstand", "Finanzen"}, AuthorID: board.ID, ProjectID: &projects[0].ID, CreatedAt: s.now.Add(-3 * day)},
	} {
		if _, err := s.repos.News.Create(ctx, &n); err != nil {
			return fmt.Errorf("create news %q: %w", n.Title, err)
		}
	}

	rooms := make([]*domain.Room, 0, 3)
	for _, r := range []domain.Room{
		{Name: "Konferenzraum", Description: "Großer Besprechungsraum", Capacity: intPtr(20)},
		{Name: "Raum A", Description: "Kleiner Gruppenraum", Capacity: intPtr(8)},
		{Name: "Externe Termine", Description: "Platzhalter für externe Orte", Capacity: intPtr(0)},
	} {
		created, err := s.repos.Rooms.Create(ctx, &r)
		if err != nil {
			return fmt.Errorf("create room %q: %w", r.Name, err)
		}
		rooms = append(rooms, created)
	}

	for _, e := range []domain.Event{
		{Title: "Team Jour Fixe", Description: "Wöchentliches Team-Meeting", Start: s.now.Add(day + 9*time.Hour), End: s.now.Add(day + 10*time.Hour), RoomID: rooms[1].ID, CreatedBy: admin.ID},
		{Title: "Koordination Ehrenamt", Description: "Treffen mit den Ehrenamtskoordinatoren", Start: s.now.Add(day + 12*time.Hour), End: s.now.Add(day + 13*time.Hour + 30*time.Minute), RoomID: rooms[0].ID, CreatedBy: sarah.ID},
		{Title: "Besuch im Rathaus", Description: "Gespräch mit dem Bürgermeister", Start: s.now.Add(2*day + 10*time.Hour), End: s.now.Add(2*day + 11*time.Hour), RoomID: rooms[2].ID, IsPublic: true, ProjectID: &projects[1].ID, CreatedBy: admin.ID},
	} {
		if _, err := s.repos.Events.Create(ctx, &e); err != nil {
			return fmt.Errorf("create event %q: %w", e.Title, err)
		}
	}

	today := s.now.Truncate(day)
	for _, t := range []domain.Task{
		{Title: "Budgetbericht erstellen", Description: "Q4 Zahlen zusammenstellen", Status: domain.TaskInProgress, ProjectID: &projects[0].ID, AssigneeID: &sarah.ID, CreatedBy: admin.ID, DueDate: timePtr(today.Add(2 * day)), CreatedAt: s.now},
		{Title: "Catering bestellen", Description: "Für das Sommerfest", Status: domain.TaskOpen, ProjectID: &projects[1].ID, AssigneeID: &jonas.ID, CreatedBy: sarah.ID, DueDate: timePtr(today.Add(14 * day)), CreatedAt: s.now},
		{Title: "Server Updates", Description: "Sicherheitsupdates einspielen", Status: domain.TaskDone, AssigneeID: &admin.ID, CreatedBy: admin.ID, DueDate: timePtr(today.Add(-day)), CreatedAt: s.now},
	} {
		if _, err := s.repos.Tasks.Create(ctx, &t); err != nil {
			return fmt.Errorf("create task %q: %w", t.Title, err)
		}
	}

	for _, m := range []domain.Metric{
		{Name: "Mitglieder", Value: 412, UpdatedAt: s.now},
		{Name: "Ehrenamtliche Stunden", Value: 1280, UpdatedAt: s.now},
	} {
		if _, err := s.repos.Metrics.Create(ctx, &m); err != nil {
			return fmt.Errorf("create metric %q: %w", m.Name, err)
		}
	}

	for _, st := range []domain.SystemStatus{
		{Service: "Database", Status: domain.StateOK, Message: "Operational", UpdatedAt: s.now},
		{Service: "API Gateway", Status: domain.StateOK, Message: "Operational", UpdatedAt: s.now},
		{Service: "Email Service", Status: domain.StateOK, Message: "Operational", UpdatedAt: s.now},
		{Service: "Backup Job", Status: domain.StateWarning, Message: "Last backup delayed", UpdatedAt: s.now},
	} {
		if _, err := s.repos.SystemStatus.Create(ctx, &st); err != nil {
			return fmt.Errorf("create system status %q: %w", st.Service, err)
		}
	}

	s.log.Info().Msg("seeding complete")
	return nil
}

func (s seeder) user(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password for %s: %w", email, err)
	}
	u, err := s.repos.Users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", email, err)
	}
	return u, nil
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }
