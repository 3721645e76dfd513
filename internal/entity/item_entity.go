package entity

import (
	"time"

	"github.com/google/uuid"
)

type ItemKind string

const (
	ItemKindFolder ItemKind = "folder"
	ItemKindNote   ItemKind = "note"
)

// RootName is the reserved path segment for the synthetic top-level
// container. It is never materialized as an Item.
const RootName = "root"

// Item is a single node of the file-viewer tree. Folders and notes live
// in the same flat collection; ParentId is nil for children of the
// synthetic root, and Children carries the ordered ids of a folder's
// direct children.
type Item struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Name         string
	ParentId     *uuid.UUID
	Kind         ItemKind
	Children     []uuid.UUID
	Content      string
	LastModified time.Time
	CreatedAt    time.Time
}

func (i *Item) IsFolder() bool {
	return i.Kind == ItemKindFolder
}
