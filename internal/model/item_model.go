package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Item struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index:idx_fv_items_owner_parent"`
	Name         string         `gorm:"type:varchar(255);not null"`
	ParentId     *uuid.UUID     `gorm:"type:uuid;index:idx_fv_items_owner_parent"`
	Kind         string         `gorm:"type:varchar(10);not null"`
	Children     datatypes.JSON `gorm:"type:jsonb"`
	Content      string         `gorm:"type:text"`
	LastModified time.Time      `gorm:"not null"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (Item) TableName() string {
	return "fv_items"
}
