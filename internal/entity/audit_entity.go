package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is one persisted audit-trail entry, written by the NATS
// consumer for every event published to the audit stream.
type AuditLog struct {
	Id        uuid.UUID
	Level     string
	Module    string
	Message   string
	Details   map[string]interface{}
	CreatedAt time.Time
}
