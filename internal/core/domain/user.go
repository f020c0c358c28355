package domain

import (
	"slices"
	"strings"
	"time"
)

// Role is the closed set of dashboard roles.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVorstand  Role = "vorstand"
	RoleTeam      Role = "team"
	RoleMitarbeit Role = "mitarbeit"
	RolePublic    Role = "public"
)

// Roles lists every role in descending privilege order.
var Roles = []Role{RoleAdmin, RoleVorstand, RoleTeam, RoleMitarbeit, RolePublic}

func (r Role) Valid() bool { return slices.Contains(Roles, r) }

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", Invalid("unknown role %q", s)
	}
	return r, nil
}

type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// UserPatch is the allow-list of fields a user update may touch.
type UserPatch struct {
	Name *string
	Role *Role
}

func (p UserPatch) Empty() bool { return p.Name == nil && p.Role == nil }

// NormalizeEmail is applied on every write and lookup of an email address,
// so addresses compare case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
	Email  string
	Name   string
	Role   Role
}

func NewPrincipal(u *User) *Principal {
	return &Principal{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func (p *Principal) HasRole(roles ...Role) bool {
	return p != nil && slices.Contains(roles, p.Role)
}
