package mapper

import (
	"testing"
	"time"

	"github.com/Lum1n0sity/scholarthynk-api/internal/entity"
	"github.com/Lum1n0sity/scholarthynk-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemMapperChildrenRoundTrip(t *testing.T) {
	m := NewItemMapper()
	parentId := uuid.New()
	childA := uuid.New()
	childB := uuid.New()

	item := &entity.Item{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		Name:         "Classes",
		ParentId:     &parentId,
		Kind:         entity.ItemKindFolder,
		Children:     []uuid.UUID{childA, childB},
		LastModified: time.Now(),
	}

	got := m.ToEntity(m.ToModel(item))
	require.NotNil(t, got)
	assert.Equal(t, item.Id, got.Id)
	assert.Equal(t, []uuid.UUID{childA, childB}, got.Children, "children order must survive the jsonb round trip")
}

func TestItemMapperNilChildrenBecomesEmptyList(t *testing.T) {
	m := NewItemMapper()

	mdl := m.ToModel(&entity.Item{Id: uuid.New(), Kind: entity.ItemKindNote})
	assert.Equal(t, "[]", string(mdl.Children))
}

func TestItemMapperToleratesBrokenChildrenPayload(t *testing.T) {
	m := NewItemMapper()

	got := m.ToEntity(&model.Item{
		Id:       uuid.New(),
		Kind:     "folder",
		Children: []byte("{not json"),
	})
	require.NotNil(t, got)
	assert.NotNil(t, got.Children)
	assert.Empty(t, got.Children)
}

func TestItemMapperNil(t *testing.T) {
	m := NewItemMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
