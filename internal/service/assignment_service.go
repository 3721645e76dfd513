package service

import (
	"context"
	"time"

	"github.com/Lum1n0sity/scholarthynk-api/internal/apperror"
	"github.com/Lum1n0sity/scholarthynk-api/internal/dto"
	"github.com/Lum1n0sity/scholarthynk-api/internal/entity"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/specification"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAssignmentService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.AssignmentResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateAssignmentRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type assignmentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAssignmentService(uowFactory unitofwork.RepositoryFactory) IAssignmentService {
	return &assignmentService{uowFactory: uowFactory}
}

func toAssignmentResponse(a *entity.Assignment) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		Id:          a.Id,
		Title:       a.Title,
		Subject:     a.Subject,
		Description: a.Description,
		Status:      string(a.Status),
		DueDate:     a.DueDate,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (s *assignmentService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.AssignmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assignments, err := uow.AssignmentRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "due_date"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, toAssignmentResponse(a))
	}
	return result, nil
}

func (s *assignmentService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assignment := &entity.Assignment{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      entity.AssignmentStatusOpen,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now(),
	}

	if err := uow.AssignmentRepository().Create(ctx, assignment); err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

func (s *assignmentService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateAssignmentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assignment, err := uow.AssignmentRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if assignment == nil {
		return apperror.NotFound("assignment not found")
	}

	now := time.Now()
	assignment.Title = req.Title
	assignment.Subject = req.Subject
	assignment.Description = req.Description
	assignment.DueDate = req.DueDate
	if req.Status != "" {
		assignment.Status = entity.AssignmentStatus(req.Status)
	}
	assignment.UpdatedAt = &now

	return uow.AssignmentRepository().Update(ctx, assignment)
}

func (s *assignmentService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assignment, err := uow.AssignmentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if assignment == nil {
		return apperror.NotFound("assignment not found")
	}

	return uow.AssignmentRepository().Delete(ctx, id)
}
