package policy

import "github.com/wfl/dashboard-api/internal/core/domain"

const (
	reasonTaskUpdate = "Cannot modify this task"
	reasonRoleChange = "Only admins may change roles"
)

// CanViewUser admits the board and the user themself.
func CanViewUser(p *domain.Principal, targetID string) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if p.UserID == targetID {
		return nil
	}
	return RequireRoles(p, domain.RoleAdmin, domain.RoleVorstand)
}

// CanUpdateUser admits admins and the user themself. Changing the role is
// checked after ownership and is reserved for admins.
func CanUpdateUser(p *domain.Principal, targetID string, patch domain.UserPatch) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if p.UserID != targetID {
		if err := RequireRoles(p, domain.RoleAdmin); err != nil {
			return err
		}
	}
	if patch.Role != nil && p.Role != domain.RoleAdmin {
		return domain.Forbidden(reasonRoleChange)
	}
	return nil
}

func CanChangePassword(p *domain.Principal, targetID string) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if p.UserID == targetID {
		return nil
	}
	return RequireRoles(p, domain.RoleAdmin)
}

// CanUpdateTask admits editors without restriction. Anyone else must be the
// task's assignee and may then only change status and description.
func CanUpdateTask(p *domain.Principal, task *domain.Task, patch domain.TaskPatch) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if p.HasRole(editors...) {
		return nil
	}
	if !task.IsAssignee(p.UserID) || !patch.AssigneeScoped() {
		return domain.Forbidden(reasonTaskUpdate)
	}
	return nil
}
