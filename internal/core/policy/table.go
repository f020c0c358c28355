package policy

import "github.com/wfl/dashboard-api/internal/core/domain"

// Operation names a protected action.
type Operation string

const (
	OpUserCreate   Operation = "user:create"
	OpUserList     Operation = "user:list"
	OpUserMe       Operation = "user:me"
	OpUserRead     Operation = "user:read"
	OpUserUpdate   Operation = "user:update"
	OpUserPassword Operation = "user:password"
	OpUserDelete   Operation = "user:delete"

	OpProjectCreate Operation = "project:create"
	OpProjectUpdate Operation = "project:update"
	OpProjectDelete Operation = "project:delete"

	OpNewsCreate Operation = "news:create"
	OpNewsUpdate Operation = "news:update"
	OpNewsDelete Operation = "news:delete"

	OpEventCreate Operation = "event:create"
	OpEventUpdate Operation = "event:update"
	OpEventDelete Operation = "event:delete"

	OpRoomCreate Operation = "room:create"
	OpRoomUpdate Operation = "room:update"
	OpRoomDelete Operation = "room:delete"

	OpTaskCreate Operation = "task:create"
	OpTaskUpdate Operation = "task:update"
	OpTaskDelete Operation = "task:delete"

	OpMetricCreate Operation = "metric:create"
	OpMetricUpdate Operation = "metric:update"
	OpMetricDelete Operation = "metric:delete"

	OpSystemStatusCreate Operation = "system_status:create"
	OpSystemStatusUpdate Operation = "system_status:update"
	OpSystemStatusDelete Operation = "system_status:delete"
)

var (
	admins  = []domain.Role{domain.RoleAdmin}
	board   = []domain.Role{domain.RoleAdmin, domain.RoleVorstand}
	editors = []domain.Role{domain.RoleAdmin, domain.RoleVorstand, domain.RoleTeam}
	anyone  = []domain.Role{}
)

// Table maps each operation to the roles allowed to perform it. An empty
// set admits any authenticated principal; the matching ownership rule then
// narrows it down.
type Table map[Operation][]domain.Role

// DefaultTable is the dashboard's role table.
func DefaultTable() Table {
	return Table{
		OpUserCreate:   admins,
		OpUserList:     board,
		OpUserMe:       anyone,
		OpUserRead:     anyone,
		OpUserUpdate:   anyone,
		OpUserPassword: anyone,
		OpUserDelete:   admins,

		OpProjectCreate: editors,
		OpProjectUpdate: editors,
		OpProjectDelete: board,

		OpNewsCreate: editors,
		OpNewsUpdate: editors,
		OpNewsDelete: board,

		OpEventCreate: editors,
		OpEventUpdate: editors,
		OpEventDelete: board,

		OpRoomCreate: board,
		OpRoomUpdate: board,
		OpRoomDelete: admins,

		OpTaskCreate: editors,
		OpTaskUpdate: anyone,
		OpTaskDelete: board,

		OpMetricCreate: board,
		OpMetricUpdate: board,
		OpMetricDelete: board,

		OpSystemStatusCreate: editors,
		OpSystemStatusUpdate: editors,
		OpSystemStatusDelete: board,
	}
}

// rules flattens the table into casbin policy lines.
func (t Table) rules() [][]string {
	out := make([][]string, 0, len(t)*2)
	for op, roles := range t {
		if len(roles) == 0 {
			out = append(out, []string{wildcard, string(op)})
			continue
		}
		for _, r := range roles {
			out = append(out, []string{string(r), string(op)})
		}
	}
	return out
}
