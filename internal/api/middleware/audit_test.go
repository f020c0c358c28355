package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

type captureRecorder struct{ entries []domain.AuditEntry }

func (r *captureRecorder) Record(e domain.AuditEntry) { r.entries = append(r.entries, e) }

func runAudit(t *testing.T, method string, status int, handlerErr error) *captureRecorder {
	t.Helper()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(method, "/api/projects/7", nil), httptest.NewRecorder())
	c.Set(principalKey, &domain.Principal{UserID: "u1", Email: "anna@example.org"})

	rec := &captureRecorder{}
	_ = Audit(rec)(func(c echo.Context) error {
		if handlerErr != nil {
			return handlerErr
		}
		return c.NoContent(status)
	})(c)
	return rec
}

func TestAudit_RecordsSuccessfulMutation(t *testing.T) {
	rec := runAudit(t, http.MethodDelete, http.StatusNoContent, nil)
	if len(rec.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(rec.entries))
	}
	got := rec.entries[0]
	if got.ActorID != "u1" || got.Method != http.MethodDelete || got.Path != "/api/projects/7" || got.Status != http.StatusNoContent {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestAudit_SkipsReadsAndFailures(t *testing.T) {
	if n := len(runAudit(t, http.MethodGet, http.StatusOK, nil).entries); n != 0 {
		t.Fatalf("GET recorded %d entries", n)
	}
	if n := len(runAudit(t, http.MethodPost, http.StatusUnprocessableEntity, nil).entries); n != 0 {
		t.Fatalf("4xx recorded %d entries", n)
	}
	if n := len(runAudit(t, http.MethodPatch, 0, errors.New("boom")).entries); n != 0 {
		t.Fatalf("error recorded %d entries", n)
	}
}
