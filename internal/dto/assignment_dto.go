package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAssignmentRequest struct {
	Title       string    `json:"title" validate:"required"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" validate:"required"`
}

type UpdateAssignmentRequest struct {
	Id          uuid.UUID
	Title       string    `json:"title" validate:"required"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      string    `json:"status" validate:"omitempty,oneof=open done"`
	DueDate     time.Time `json:"due_date" validate:"required"`
}

type AssignmentResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     time.Time  `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
