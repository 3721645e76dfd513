package unitofwork

import (
	"context"

	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ItemRepository() contract.ItemRepository
	AssignmentRepository() contract.AssignmentRepository
	EventRepository() contract.EventRepository
}
