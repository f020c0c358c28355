// Package policy decides whether a principal may perform an operation.
//
// Role checks are table driven and evaluated by a casbin enforcer; ownership
// checks need the target record and live in ownership.go. Every function
// here is pure with respect to the store.
package policy

import (
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

const wildcard = "*"

//go:embed model.conf
var modelContent string

// RequireRoles fails with ErrUnauthenticated for a missing principal and
// with ErrForbidden when the principal's role is not in allowed. An empty
// allowed set admits every authenticated principal.
func RequireRoles(p *domain.Principal, allowed ...domain.Role) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if len(allowed) == 0 || p.HasRole(allowed...) {
		return nil
	}
	return domain.ErrForbidden
}

// Enforcer evaluates a Table through casbin.
type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
	table    Table
}

// NewEnforcer loads table into a fresh casbin enforcer.
func NewEnforcer(table Table) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelContent)
	if err != nil {
		return nil, fmt.Errorf("parse policy model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create policy enforcer: %w", err)
	}

	if rules := table.rules(); len(rules) > 0 {
		if _, err := e.AddPolicies(rules); err != nil {
			return nil, fmt.Errorf("load policy table: %w", err)
		}
	}

	return &Enforcer{enforcer: e, table: table}, nil
}

// Authorize checks p against the allowed roles for op. Operations missing
// from the table are denied.
func (e *Enforcer) Authorize(p *domain.Principal, op Operation) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if _, ok := e.table[op]; !ok {
		return domain.ErrForbidden
	}

	ok, err := e.enforcer.Enforce(string(p.Role), string(op))
	if err != nil {
		return fmt.Errorf("enforce %s: %w", op, err)
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// Roles returns the allowed roles for op and whether op is known.
func (e *Enforcer) Roles(op Operation) ([]domain.Role, bool) {
	roles, ok := e.table[op]
	return roles, ok
}
