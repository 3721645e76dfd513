package mapper

import (
	"time"

	"github.com/Lum1n0sity/scholarthynk-api/internal/entity"
	"github.com/Lum1n0sity/scholarthynk-api/internal/model"
)

type AssignmentMapper struct{}

func NewAssignmentMapper() *AssignmentMapper {
	return &AssignmentMapper{}
}

func (m *AssignmentMapper) ToEntity(a *model.Assignment) *entity.Assignment {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Assignment{
		Id:          a.Id,
		UserId:      a.UserId,
		Title:       a.Title,
		Subject:     a.Subject,
		Description: a.Description,
		Status:      entity.AssignmentStatus(a.Status),
		DueDate:     a.DueDate,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *AssignmentMapper) ToModel(a *entity.Assignment) *model.Assignment {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Assignment{
		Id:          a.Id,
		UserId:      a.UserId,
		Title:       a.Title,
		Subject:     a.Subject,
		Description: a.Description,
		Status:      string(a.Status),
		DueDate:     a.DueDate,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *AssignmentMapper) ToEntities(assignments []*model.Assignment) []*entity.Assignment {
	entities := make([]*entity.Assignment, len(assignments))
	for i, a := range assignments {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
