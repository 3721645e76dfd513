package dto

// GetItemsRequest asks for the direct children of a folder. Path is the
// segment list starting at "root"; Folder is the target folder name
// ("root" to list the top level).
type GetItemsRequest struct {
	Path   []string `json:"path" validate:"required,min=1"`
	Folder string   `json:"folder" validate:"required"`
}

// FolderEntry is a folder child in a listing.
type FolderEntry struct {
	Name         string `json:"name"`
	LastModified string `json:"lastModified"` // DD.MM.YYYY
}

// FileEntry is a note child in a listing.
type FileEntry struct {
	Name         string `json:"name"`
	Content      string `json:"content"`
	LastModified string `json:"lastModified"` // DD.MM.YYYY
}

type GetItemsResponse struct {
	Folders []FolderEntry `json:"folders"`
	Files   []FileEntry   `json:"files"`
}

type CreateFolderRequest struct {
	Path []string `json:"path" validate:"required,min=1"`
	Name string   `json:"name" validate:"required"`
}

type CreateNoteRequest struct {
	Path []string `json:"path" validate:"required,min=1"`
}

type RenameItemRequest struct {
	Path    []string `json:"path" validate:"required,min=1"`
	OldName string   `json:"oldName" validate:"required"`
	NewName string   `json:"newName" validate:"required"`
}

type DeleteItemRequest struct {
	Path []string `json:"path" validate:"required,min=1"`
	Name string   `json:"name" validate:"required"`
}

type UpdateNoteRequest struct {
	Path     []string `json:"path" validate:"required,min=1"`
	OldTitle string   `json:"oldTitle"`
	NewTitle string   `json:"newTitle"`
	Content  string   `json:"content"`
}
