package dto

import (
	"time"

	"github.com/google/uuid"
)

// Log IDs are content hashes of the underlying log line, not UUIDs.

type LogListResponse struct {
	Id        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Module    string `json:"module"`
	Message   string `json:"message"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}

// AuditLogResponse is one persisted audit-trail entry.
type AuditLogResponse struct {
	Id        uuid.UUID              `json:"id"`
	Action    string                 `json:"action"`
	Details   map[string]interface{} `json:"details"`
	CreatedAt time.Time              `json:"created_at"`
}
