package entity

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentStatus string

const (
	AssignmentStatusOpen AssignmentStatus = "open"
	AssignmentStatusDone AssignmentStatus = "done"
)

type Assignment struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Subject     string
	Description string
	Status      AssignmentStatus
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
