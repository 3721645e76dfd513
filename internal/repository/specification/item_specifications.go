package specification

import (
	"github.com/Lum1n0sity/scholarthynk-api/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByParent filters items by their parent folder. A nil ParentID means
// children of the synthetic root.
type ByParent struct {
	ParentID *uuid.UUID
}

func (s ByParent) Apply(db *gorm.DB) *gorm.DB {
	if s.ParentID == nil {
		return db.Where("parent_id IS NULL")
	}
	return db.Where("parent_id = ?", *s.ParentID)
}

// ByName filters items by name
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByKind filters items by kind (folder or note)
type ByKind struct {
	Kind entity.ItemKind
}

func (s ByKind) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("kind = ?", string(s.Kind))
}
