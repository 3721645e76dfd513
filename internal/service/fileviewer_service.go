package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Lum1n0sity/scholarthynk-api/internal/apperror"
	"github.com/Lum1n0sity/scholarthynk-api/internal/dto"
	"github.com/Lum1n0sity/scholarthynk-api/internal/entity"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/specification"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/unitofwork"
	"github.com/Lum1n0sity/scholarthynk-api/pkg/events"
	pktNats "github.com/Lum1n0sity/scholarthynk-api/pkg/nats"

	"github.com/google/uuid"
)

// listingDateFormat renders lastModified for the file viewer UI.
const listingDateFormat = "02.01.2006"

// defaultNoteName is the initial name of every created note. Duplicate
// "Untitled" siblings are allowed on purpose.
const defaultNoteName = "Untitled"

type IFileViewerService interface {
	GetItems(ctx context.Context, userId uuid.UUID, req *dto.GetItemsRequest) (*dto.GetItemsResponse, error)
	CreateFolder(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) error
	CreateNote(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) error
	RenameItem(ctx context.Context, userId uuid.UUID, req *dto.RenameItemRequest) error
	DeleteItem(ctx context.Context, userId uuid.UUID, req *dto.DeleteItemRequest) error
	UpdateNote(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) error
}

type fileViewerService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewFileViewerService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IFileViewerService {
	return &fileViewerService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// resolvePath walks a symbolic path ["root", "Classes", "Math"] down the
// tree, one folder query per segment. It returns the id of the final
// folder, nil meaning the synthetic root. The failing segment is named
// in the NotFound error.
func (s *fileViewerService) resolvePath(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, path []string) (*uuid.UUID, error) {
	if len(path) == 0 || path[0] != entity.RootName {
		return nil, apperror.BadRequest("path must start at root")
	}

	var parentId *uuid.UUID
	for _, segment := range path[1:] {
		folder, err := uow.ItemRepository().FindOne(ctx,
			specification.OwnedBy{UserID: userId},
			specification.ByParent{ParentID: parentId},
			specification.ByName{Name: segment},
			specification.ByKind{Kind: entity.ItemKindFolder},
		)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, apperror.NotFound(fmt.Sprintf("folder %q not found", segment))
		}
		id := folder.Id
		parentId = &id
	}
	return parentId, nil
}

func (s *fileViewerService) GetItems(ctx context.Context, userId uuid.UUID, req *dto.GetItemsRequest) (*dto.GetItemsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	empty := &dto.GetItemsResponse{
		Folders: make([]dto.FolderEntry, 0),
		Files:   make([]dto.FileEntry, 0),
	}

	if len(req.Path) == 0 || req.Folder == "" {
		return nil, apperror.BadRequest("path and folder are required")
	}
	if req.Path[0] != entity.RootName {
		return nil, apperror.BadRequest("path must start at root")
	}

	// A location that no longer exists (e.g. deleted by a concurrent
	// request) yields empty lists rather than an error.
	parentId, err := s.resolvePath(ctx, uow, userId, req.Path)
	if err != nil {
		if appErr, ok := err.(*apperror.AppError); ok && appErr.Code == 404 {
			return empty, nil
		}
		return nil, err
	}

	targetId := parentId
	if req.Folder != entity.RootName {
		folder, err := uow.ItemRepository().FindOne(ctx,
			specification.OwnedBy{UserID: userId},
			specification.ByParent{ParentID: parentId},
			specification.ByName{Name: req.Folder},
			specification.ByKind{Kind: entity.ItemKindFolder},
		)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return empty, nil
		}
		id := folder.Id
		targetId = &id
	}

	children, err := uow.ItemRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByParent{ParentID: targetId},
	)
	if err != nil {
		return nil, err
	}

	res := empty
	for _, child := range children {
		formatted := child.LastModified.Format(listingDateFormat)
		if child.IsFolder() {
			res.Folders = append(res.Folders, dto.FolderEntry{
				Name:         child.Name,
				LastModified: formatted,
			})
		} else {
			res.Files = append(res.Files, dto.FileEntry{
				Name:         child.Name,
				Content:      child.Content,
				LastModified: formatted,
			})
		}
	}
	return res, nil
}

func (s *fileViewerService) CreateFolder(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) error {
	if req.Name == "" {
		return apperror.BadRequest("folder name is required")
	}
	if req.Name == entity.RootName {
		return apperror.BadRequest("folder name is reserved")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	parentId, err := s.resolvePath(ctx, uow, userId, req.Path)
	if err != nil {
		return err
	}

	existing, err := uow.ItemRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByParent{ParentID: parentId},
		specification.ByName{Name: req.Name},
		specification.ByKind{Kind: entity.ItemKindFolder},
	)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.Conflict("folder already exists")
	}

	folder := &entity.Item{
		Id:           uuid.New(),
		UserId:       userId,
		Name:         req.Name,
		ParentId:     parentId,
		Kind:         entity.ItemKindFolder,
		Children:     make([]uuid.UUID, 0),
		Content:      "",
		LastModified: time.Now(),
	}

	// Insert first, then link into the parent. A failure between the
	// two steps leaves an orphan, which listings and deletion both
	// tolerate.
	if err := uow.ItemRepository().Create(ctx, folder); err != nil {
		return err
	}

	if parentId != nil {
		if err := s.appendChild(ctx, uow, userId, *parentId, folder.Id); err != nil {
			return err
		}
	}

	s.publish(ctx, "FV_FOLDER_CREATED", userId, map[string]interface{}{
		"item_id": folder.Id,
		"name":    folder.Name,
	})
	return nil
}

func (s *fileViewerService) CreateNote(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	parentId, err := s.resolvePath(ctx, uow, userId, req.Path)
	if err != nil {
		return err
	}

	// No sibling uniqueness check: several "Untitled" notes may coexist.
	note := &entity.Item{
		Id:           uuid.New(),
		UserId:       userId,
		Name:         defaultNoteName,
		ParentId:     parentId,
		Kind:         entity.ItemKindNote,
		Children:     make([]uuid.UUID, 0),
		Content:      "",
		LastModified: time.Now(),
	}

	if err := uow.ItemRepository().Create(ctx, note); err != nil {
		return err
	}

	if parentId != nil {
		if err := s.appendChild(ctx, uow, userId, *parentId, note.Id); err != nil {
			return err
		}
	}

	s.publish(ctx, "FV_NOTE_CREATED", userId, map[string]interface{}{
		"item_id": note.Id,
	})
	return nil
}

func (s *fileViewerService) RenameItem(ctx context.Context, userId uuid.UUID, req *dto.RenameItemRequest) error {
	if req.NewName == entity.RootName {
		return apperror.BadRequest("name is reserved")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	parentId, err := s.resolvePath(ctx, uow, userId, req.Path)
	if err != nil {
		return err
	}

	item, err := uow.ItemRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByParent{ParentID: parentId},
		specification.ByName{Name: req.OldName},
	)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NotFound("item not found")
	}

	taken, err := uow.ItemRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByParent{ParentID: parentId},
		specification.ByName{Name: req.NewName},
	)
	if err != nil {
		return err
	}
	if taken != nil {
		return apperror.Conflict("name already in use")
	}

	item.Name = req.NewName
	if item.Kind == entity.ItemKindNote {
		item.LastModified = time.Now()
	}
	if err := uow.ItemRepository().Update(ctx, item); err != nil {
		return err
	}

	s.publish(ctx, "FV_ITEM_RENAMED", userId, map[string]interface{}{
		"item_id":  item.Id,
		"old_name": req.OldName,
		"new_name": req.NewName,
	})
	return nil
}

func (s *fileViewerService) DeleteItem(ctx context.Context, userId uuid.UUID, req *dto.DeleteItemRequest) error {
	if req.Name == entity.RootName {
		return apperror.BadRequest("root cannot be deleted")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	parentId, err := s.resolvePath(ctx, uow, userId, req.Path)
	if err != nil {
		return err
	}

	item, err := uow.ItemRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByParent{ParentID: parentId},
		specification.ByName{Name: req.Name},
	)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NotFound("item not found")
	}

	if item.IsFolder() {
		if err := s.deleteSubtree(ctx, uow, userId, item); err != nil {
			return err
		}
	} else {
		if err := uow.ItemRepository().Delete(ctx, item.Id); err != nil {
			return err
		}
	}

	if item.ParentId != nil {
		if err := s.removeChild(ctx, uow, userId, *item.ParentId, item.Id); err != nil {
			return err
		}
	}

	s.publish(ctx, "FV_ITEM_DELETED", userId, map[string]interface{}{
		"item_id": item.Id,
		"name":    item.Name,
	})
	return nil
}

// deleteSubtree removes a folder and everything below it, post-order so
// no descendant outlives its ancestor. Each delete is an independent
// store call; a failure mid-recursion leaves a partially deleted
// subtree, which is the accepted trade-off here.
func (s *fileViewerService) deleteSubtree(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, folder *entity.Item) error {
	for _, childId := range folder.Children {
		// Re-read the child: a dangling reference (already deleted by a
		// concurrent request) is skipped silently.
		child, err := uow.ItemRepository().FindOne(ctx,
			specification.ByID{ID: childId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return err
		}
		if child == nil {
			continue
		}

		if child.IsFolder() {
			if err := s.deleteSubtree(ctx, uow, userId, child); err != nil {
				return err
			}
		} else {
			if err := uow.ItemRepository().Delete(ctx, child.Id); err != nil {
				return err
			}
		}
	}

	return uow.ItemRepository().Delete(ctx, folder.Id)
}

func (s *fileViewerService) UpdateNote(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) error {
	if req.OldTitle == "" || req.NewTitle == "" {
		return apperror.BadRequest("title is required")
	}
	if req.NewTitle == entity.RootName {
		return apperror.BadRequest("title is reserved")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	parentId, err := s.resolvePath(ctx, uow, userId, req.Path)
	if err != nil {
		return err
	}

	note, err := uow.ItemRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByParent{ParentID: parentId},
		specification.ByName{Name: req.OldTitle},
		specification.ByKind{Kind: entity.ItemKindNote},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NotFound("note not found")
	}

	// No collision check on the new title; duplicate note names are
	// allowed, matching note creation.
	note.Name = req.NewTitle
	note.Content = req.Content
	note.LastModified = time.Now()
	if err := uow.ItemRepository().Update(ctx, note); err != nil {
		return err
	}

	s.publish(ctx, "FV_NOTE_UPDATED", userId, map[string]interface{}{
		"item_id": note.Id,
	})
	return nil
}

// appendChild links a freshly created item into its parent's ordered
// children list.
func (s *fileViewerService) appendChild(ctx context.Context, uow unitofwork.UnitOfWork, userId, parentId, childId uuid.UUID) error {
	parent, err := uow.ItemRepository().FindOne(ctx,
		specification.ByID{ID: parentId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if parent == nil {
		return apperror.NotFound("parent folder not found")
	}

	parent.Children = append(parent.Children, childId)
	return uow.ItemRepository().Update(ctx, parent)
}

// removeChild detaches an id from its parent's children list.
func (s *fileViewerService) removeChild(ctx context.Context, uow unitofwork.UnitOfWork, userId, parentId, childId uuid.UUID) error {
	parent, err := uow.ItemRepository().FindOne(ctx,
		specification.ByID{ID: parentId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if parent == nil {
		// Parent vanished concurrently; nothing left to detach from.
		return nil
	}

	filtered := parent.Children[:0]
	for _, id := range parent.Children {
		if id != childId {
			filtered = append(filtered, id)
		}
	}
	parent.Children = filtered
	return uow.ItemRepository().Update(ctx, parent)
}

func (s *fileViewerService) publish(ctx context.Context, eventType string, userId uuid.UUID, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	data["user_id"] = userId
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}
