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

type IEventService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.EventResponse, error)
	GetByDate(ctx context.Context, userId uuid.UUID, day time.Time) ([]*dto.EventResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEventRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type eventService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEventService(uowFactory unitofwork.RepositoryFactory) IEventService {
	return &eventService{uowFactory: uowFactory}
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (s *eventService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.EventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	events, err := uow.EventRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "date"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, toEventResponse(e))
	}
	return result, nil
}

func (s *eventService) GetByDate(ctx context.Context, userId uuid.UUID, day time.Time) ([]*dto.EventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	events, err := uow.EventRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OnDate{Field: "date", Day: day},
		specification.OrderBy{Field: "date"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, toEventResponse(e))
	}
	return result, nil
}

func (s *eventService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event := &entity.Event{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		CreatedAt:   time.Now(),
	}

	if err := uow.EventRepository().Create(ctx, event); err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

func (s *eventService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEventRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if event == nil {
		return apperror.NotFound("event not found")
	}

	now := time.Now()
	event.Title = req.Title
	event.Description = req.Description
	event.Date = req.Date
	event.UpdatedAt = &now

	return uow.EventRepository().Update(ctx, event)
}

func (s *eventService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if event == nil {
		return apperror.NotFound("event not found")
	}

	return uow.EventRepository().Delete(ctx, id)
}
