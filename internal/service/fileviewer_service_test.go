package service

import (
	"context"
	"testing"
	"time"

	"github.com/Lum1n0sity/scholarthynk-api/internal/apperror"
	"github.com/Lum1n0sity/scholarthynk-api/internal/dto"
	"github.com/Lum1n0sity/scholarthynk-api/internal/entity"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/contract"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/specification"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memItemRepo is an in-memory ItemRepository that interprets the same
// specification values the GORM implementation translates to SQL.
type memItemRepo struct {
	items map[uuid.UUID]*entity.Item
	order []uuid.UUID
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func copyItem(i *entity.Item) *entity.Item {
	c := *i
	c.Children = append([]uuid.UUID(nil), i.Children...)
	return &c
}

func (r *memItemRepo) matches(item *entity.Item, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if item.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if item.UserId != s.UserID {
				return false
			}
		case specification.ByParent:
			if s.ParentID == nil {
				if item.ParentId != nil {
					return false
				}
			} else if item.ParentId == nil || *item.ParentId != *s.ParentID {
				return false
			}
		case specification.ByName:
			if item.Name != s.Name {
				return false
			}
		case specification.ByKind:
			if item.Kind != s.Kind {
				return false
			}
		}
	}
	return true
}

func (r *memItemRepo) Create(ctx context.Context, item *entity.Item) error {
	r.items[item.Id] = copyItem(item)
	r.order = append(r.order, item.Id)
	return nil
}

func (r *memItemRepo) Update(ctx context.Context, item *entity.Item) error {
	r.items[item.Id] = copyItem(item)
	return nil
}

func (r *memItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *memItemRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	for id, item := range r.items {
		if item.UserId == userId {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *memItemRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Item, error) {
	for _, id := range r.order {
		item, ok := r.items[id]
		if ok && r.matches(item, specs) {
			return copyItem(item), nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, id := range r.order {
		item, ok := r.items[id]
		if ok && r.matches(item, specs) {
			out = append(out, copyItem(item))
		}
	}
	return out, nil
}

func (r *memItemRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, item := range r.items {
		if r.matches(item, specs) {
			n++
		}
	}
	return n, nil
}

type memUnitOfWork struct {
	itemRepo       *memItemRepo
	userRepo       *memUserRepo
	assignmentRepo *memAssignmentRepo
	eventRepo      *memEventRepo
}

func (u *memUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memUnitOfWork) Commit() error                   { return nil }
func (u *memUnitOfWork) Rollback() error                 { return nil }

func (u *memUnitOfWork) UserRepository() contract.UserRepository             { return u.userRepo }
func (u *memUnitOfWork) ItemRepository() contract.ItemRepository             { return u.itemRepo }
func (u *memUnitOfWork) AssignmentRepository() contract.AssignmentRepository { return u.assignmentRepo }
func (u *memUnitOfWork) EventRepository() contract.EventRepository           { return u.eventRepo }

type memFactory struct {
	uow *memUnitOfWork
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func newTestService() (IFileViewerService, *memItemRepo) {
	repo := newMemItemRepo()
	factory := &memFactory{uow: &memUnitOfWork{itemRepo: repo}}
	return NewFileViewerService(factory, nil), repo
}

func assertStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func mustFind(t *testing.T, repo *memItemRepo, userId uuid.UUID, name string) *entity.Item {
	t.Helper()
	item, err := repo.FindOne(context.Background(),
		specification.OwnedBy{UserID: userId},
		specification.ByName{Name: name},
	)
	require.NoError(t, err)
	require.NotNil(t, item, "item %q not found", name)
	return item
}

func TestResolvePathNamesMissingSegment(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()

	err := svc.CreateFolder(context.Background(), userId, &dto.CreateFolderRequest{
		Path: []string{"root", "Classes"},
		Name: "Math",
	})
	assertStatus(t, err, 404)
	assert.Contains(t, err.Error(), "Classes")
}

func TestResolvePathRejectsNonRootStart(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()

	tests := []struct {
		name string
		path []string
	}{
		{"empty path", []string{}},
		{"wrong first segment", []string{"Classes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateFolder(context.Background(), userId, &dto.CreateFolderRequest{
				Path: tt.path,
				Name: "Math",
			})
			assertStatus(t, err, 400)
		})
	}
}

func TestCreateFolder(t *testing.T) {
	svc, repo := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Classes",
	}))

	classes := mustFind(t, repo, userId, "Classes")
	assert.Nil(t, classes.ParentId)
	assert.Equal(t, entity.ItemKindFolder, classes.Kind)
	assert.Empty(t, classes.Children)

	// Nested folder gets linked into the parent's children list.
	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root", "Classes"},
		Name: "Math",
	}))

	math := mustFind(t, repo, userId, "Math")
	require.NotNil(t, math.ParentId)
	assert.Equal(t, classes.Id, *math.ParentId)

	classes = mustFind(t, repo, userId, "Classes")
	assert.Equal(t, []uuid.UUID{math.Id}, classes.Children)
}

func TestCreateFolderRejectsReservedName(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()

	err := svc.CreateFolder(context.Background(), userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "root",
	})
	assertStatus(t, err, 400)
}

func TestCreateFolderConflictOnSibling(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Math",
	}))

	err := svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Math",
	})
	assertStatus(t, err, 409)

	// Same name under a different parent is fine.
	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Archive",
	}))
	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root", "Archive"},
		Name: "Math",
	}))
}

func TestCreateNoteAllowsDuplicateUntitled(t *testing.T) {
	svc, repo := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root"}}))
	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root"}}))

	notes, err := repo.FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByName{Name: "Untitled"},
		specification.ByKind{Kind: entity.ItemKindNote},
	)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestGetItemsPartitionsByKind(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Math",
	}))
	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root", "Math"}}))

	res, err := svc.GetItems(ctx, userId, &dto.GetItemsRequest{
		Path:   []string{"root"},
		Folder: "Math",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Folders)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "Untitled", res.Files[0].Name)
	assert.Equal(t, time.Now().Format("02.01.2006"), res.Files[0].LastModified)
}

func TestGetItemsSamePathResolvesDeterministically(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Classes",
	}))
	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root", "Classes"},
		Name: "Math",
	}))
	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root", "Classes", "Math"}}))

	req := &dto.GetItemsRequest{Path: []string{"root", "Classes"}, Folder: "Math"}

	first, err := svc.GetItems(ctx, userId, req)
	require.NoError(t, err)
	second, err := svc.GetItems(ctx, userId, req)
	require.NoError(t, err)
	assert.Equal(t, first, second, "resolving the same path twice must yield the same result")

	// An unrelated mutation elsewhere must not change what the path
	// resolves to.
	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Archive",
	}))

	third, err := svc.GetItems(ctx, userId, req)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestGetItemsMissingLocationYieldsEmptyLists(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name   string
		path   []string
		folder string
	}{
		{"missing path segment", []string{"root", "Gone"}, "root"},
		{"missing target folder", []string{"root"}, "Gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.GetItems(ctx, userId, &dto.GetItemsRequest{Path: tt.path, Folder: tt.folder})
			require.NoError(t, err)
			assert.NotNil(t, res.Folders)
			assert.NotNil(t, res.Files)
			assert.Empty(t, res.Folders)
			assert.Empty(t, res.Files)
		})
	}
}

func TestGetItemsScopedToOwner(t *testing.T) {
	svc, _ := newTestService()
	owner := uuid.New()
	other := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, owner, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Private",
	}))

	res, err := svc.GetItems(ctx, other, &dto.GetItemsRequest{
		Path:   []string{"root"},
		Folder: "root",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Folders)
}

func TestRenameItem(t *testing.T) {
	svc, repo := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Math",
	}))

	require.NoError(t, svc.RenameItem(ctx, userId, &dto.RenameItemRequest{
		Path:    []string{"root"},
		OldName: "Math",
		NewName: "Mathematics",
	}))

	renamed := mustFind(t, repo, userId, "Mathematics")
	assert.Equal(t, entity.ItemKindFolder, renamed.Kind)

	missing, err := repo.FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByName{Name: "Math"},
	)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRenameItemErrors(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "A",
	}))
	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "B",
	}))

	tests := []struct {
		name     string
		req      dto.RenameItemRequest
		wantCode int
	}{
		{"reserved new name", dto.RenameItemRequest{Path: []string{"root"}, OldName: "A", NewName: "root"}, 400},
		{"missing item", dto.RenameItemRequest{Path: []string{"root"}, OldName: "Gone", NewName: "C"}, 404},
		{"name taken by sibling", dto.RenameItemRequest{Path: []string{"root"}, OldName: "A", NewName: "B"}, 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertStatus(t, svc.RenameItem(ctx, userId, &tt.req), tt.wantCode)
		})
	}
}

func TestRenameTouchesLastModifiedOnNotesOnly(t *testing.T) {
	svc, repo := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Math",
	}))
	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root"}}))

	old := time.Now().Add(-48 * time.Hour)
	for _, name := range []string{"Math", "Untitled"} {
		item := mustFind(t, repo, userId, name)
		item.LastModified = old
		require.NoError(t, repo.Update(ctx, item))
	}

	require.NoError(t, svc.RenameItem(ctx, userId, &dto.RenameItemRequest{
		Path:    []string{"root"},
		OldName: "Math",
		NewName: "Mathematics",
	}))
	require.NoError(t, svc.RenameItem(ctx, userId, &dto.RenameItemRequest{
		Path:    []string{"root"},
		OldName: "Untitled",
		NewName: "Homework",
	}))

	folder := mustFind(t, repo, userId, "Mathematics")
	note := mustFind(t, repo, userId, "Homework")
	assert.True(t, folder.LastModified.Equal(old), "folder rename must not touch lastModified")
	assert.True(t, note.LastModified.After(old), "note rename must touch lastModified")
}

func TestDeleteItemProtectsRoot(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()

	err := svc.DeleteItem(context.Background(), userId, &dto.DeleteItemRequest{
		Path: []string{"root"},
		Name: "root",
	})
	assertStatus(t, err, 400)
}

func TestDeleteItemRemovesSubtree(t *testing.T) {
	svc, repo := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Classes",
	}))
	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root", "Classes"},
		Name: "Math",
	}))
	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root", "Classes", "Math"}}))
	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root", "Classes"}}))

	require.NoError(t, svc.DeleteItem(ctx, userId, &dto.DeleteItemRequest{
		Path: []string{"root"},
		Name: "Classes",
	}))

	count, err := repo.Count(ctx, specification.OwnedBy{UserID: userId})
	require.NoError(t, err)
	assert.Zero(t, count, "the whole subtree must be gone")
}

func TestDeleteItemDetachesFromParent(t *testing.T) {
	svc, repo := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Classes",
	}))
	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root", "Classes"},
		Name: "Math",
	}))
	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root", "Classes"},
		Name: "History",
	}))

	math := mustFind(t, repo, userId, "Math")
	history := mustFind(t, repo, userId, "History")

	require.NoError(t, svc.DeleteItem(ctx, userId, &dto.DeleteItemRequest{
		Path: []string{"root", "Classes"},
		Name: "Math",
	}))

	classes := mustFind(t, repo, userId, "Classes")
	assert.NotContains(t, classes.Children, math.Id)
	assert.Contains(t, classes.Children, history.Id)
}

func TestDeleteItemToleratesDanglingChild(t *testing.T) {
	svc, repo := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Classes",
	}))
	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root", "Classes"}}))

	// Simulate a concurrent delete that left a stale child reference.
	note := mustFind(t, repo, userId, "Untitled")
	require.NoError(t, repo.Delete(ctx, note.Id))

	require.NoError(t, svc.DeleteItem(ctx, userId, &dto.DeleteItemRequest{
		Path: []string{"root"},
		Name: "Classes",
	}))

	count, err := repo.Count(ctx, specification.OwnedBy{UserID: userId})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdateNote(t *testing.T) {
	svc, repo := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root"}}))

	require.NoError(t, svc.UpdateNote(ctx, userId, &dto.UpdateNoteRequest{
		Path:     []string{"root"},
		OldTitle: "Untitled",
		NewTitle: "Homework",
		Content:  "# Chapter 3 exercises",
	}))

	note := mustFind(t, repo, userId, "Homework")
	assert.Equal(t, "# Chapter 3 exercises", note.Content)
	assert.Equal(t, entity.ItemKindNote, note.Kind)
}

func TestUpdateNoteErrors(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Math",
	}))

	tests := []struct {
		name     string
		req      dto.UpdateNoteRequest
		wantCode int
	}{
		{"empty old title", dto.UpdateNoteRequest{Path: []string{"root"}, OldTitle: "", NewTitle: "X"}, 400},
		{"empty new title", dto.UpdateNoteRequest{Path: []string{"root"}, OldTitle: "X", NewTitle: ""}, 400},
		{"reserved new title", dto.UpdateNoteRequest{Path: []string{"root"}, OldTitle: "X", NewTitle: "root"}, 400},
		{"note missing", dto.UpdateNoteRequest{Path: []string{"root"}, OldTitle: "Gone", NewTitle: "X"}, 404},
		{"folder is not a note", dto.UpdateNoteRequest{Path: []string{"root"}, OldTitle: "Math", NewTitle: "X"}, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertStatus(t, svc.UpdateNote(ctx, userId, &tt.req), tt.wantCode)
		})
	}
}

func TestUpdateNoteAllowsDuplicateTitles(t *testing.T) {
	svc, repo := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root"}}))
	require.NoError(t, svc.UpdateNote(ctx, userId, &dto.UpdateNoteRequest{
		Path:     []string{"root"},
		OldTitle: "Untitled",
		NewTitle: "Homework",
	}))

	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root"}}))
	require.NoError(t, svc.UpdateNote(ctx, userId, &dto.UpdateNoteRequest{
		Path:     []string{"root"},
		OldTitle: "Untitled",
		NewTitle: "Homework",
	}))

	notes, err := repo.FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByName{Name: "Homework"},
	)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestFileViewerEndToEnd(t *testing.T) {
	svc, _ := newTestService()
	userId := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.CreateFolder(ctx, userId, &dto.CreateFolderRequest{
		Path: []string{"root"},
		Name: "Math",
	}))
	require.NoError(t, svc.CreateNote(ctx, userId, &dto.CreateNoteRequest{Path: []string{"root", "Math"}}))
	require.NoError(t, svc.UpdateNote(ctx, userId, &dto.UpdateNoteRequest{
		Path:     []string{"root", "Math"},
		OldTitle: "Untitled",
		NewTitle: "Homework",
		Content:  "exercises 1-10",
	}))

	res, err := svc.GetItems(ctx, userId, &dto.GetItemsRequest{
		Path:   []string{"root"},
		Folder: "Math",
	})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "Homework", res.Files[0].Name)
	assert.Equal(t, "exercises 1-10", res.Files[0].Content)

	require.NoError(t, svc.DeleteItem(ctx, userId, &dto.DeleteItemRequest{
		Path: []string{"root"},
		Name: "Math",
	}))

	res, err = svc.GetItems(ctx, userId, &dto.GetItemsRequest{
		Path:   []string{"root"},
		Folder: "root",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Folders)
	assert.Empty(t, res.Files)
}
