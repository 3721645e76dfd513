package mapper

import (
	"encoding/json"

	"github.com/Lum1n0sity/scholarthynk-api/internal/entity"
	"github.com/Lum1n0sity/scholarthynk-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ItemMapper struct{}

func NewItemMapper() *ItemMapper {
	return &ItemMapper{}
}

func (m *ItemMapper) ToEntity(i *model.Item) *entity.Item {
	if i == nil {
		return nil
	}

	// A broken children payload is treated as an empty list rather than
	// failing the whole read; deletion re-checks each child anyway.
	children := make([]uuid.UUID, 0)
	if len(i.Children) > 0 {
		_ = json.Unmarshal(i.Children, &children)
	}

	return &entity.Item{
		Id:           i.Id,
		UserId:       i.UserId,
		Name:         i.Name,
		ParentId:     i.ParentId,
		Kind:         entity.ItemKind(i.Kind),
		Children:     children,
		Content:      i.Content,
		LastModified: i.LastModified,
		CreatedAt:    i.CreatedAt,
	}
}

func (m *ItemMapper) ToModel(i *entity.Item) *model.Item {
	if i == nil {
		return nil
	}

	children := i.Children
	if children == nil {
		children = make([]uuid.UUID, 0)
	}
	raw, _ := json.Marshal(children)

	return &model.Item{
		Id:           i.Id,
		UserId:       i.UserId,
		Name:         i.Name,
		ParentId:     i.ParentId,
		Kind:         string(i.Kind),
		Children:     datatypes.JSON(raw),
		Content:      i.Content,
		LastModified: i.LastModified,
		CreatedAt:    i.CreatedAt,
	}
}

func (m *ItemMapper) ToEntities(items []*model.Item) []*entity.Item {
	entities := make([]*entity.Item, len(items))
	for i, it := range items {
		entities[i] = m.ToEntity(it)
	}
	return entities
}
