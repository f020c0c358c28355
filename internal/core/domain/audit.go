package domain

import "time"

// AuditEntry records one successful mutating request.
type AuditEntry struct {
	ActorID    string    `bson:"actor_id,omitempty"`
	ActorEmail string    `bson:"actor_email,omitempty"`
	Method     string    `bson:"method"`
	Path       string    `bson:"path"`
	Status     int       `bson:"status"`
	RequestID  string    `bson:"request_id,omitempty"`
	At         time.Time `bson:"at"`
}
