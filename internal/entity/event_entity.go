package entity

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
