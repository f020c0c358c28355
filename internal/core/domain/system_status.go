package domain

import "time"

// ServiceState is the health label of a tracked system.
type ServiceState string

const (
	StateOK      ServiceState = "ok"
	StateWarning ServiceState = "warning"
	StateDown    ServiceState = "down"
	StatePlanned ServiceState = "planned"
)

func (s ServiceState) Valid() bool {
	switch s {
	case StateOK, StateWarning, StateDown, StatePlanned:
		return true
	}
	return false
}

type SystemStatus struct {
	ID        string       `json:"id" bson:"_id"`
	Service   string       `json:"service" bson:"service"`
	Status    ServiceState `json:"status" bson:"status"`
	Message   string       `json:"message" bson:"message,omitempty"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

type SystemStatusPatch struct {
	Service *string
	Status  *ServiceState
	Message *string
}
