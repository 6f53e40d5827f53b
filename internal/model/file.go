package model

// FileData is the backend's stored-file metadata, returned by the file
// upload and lookup endpoints.
type FileData struct {
	ID        string `json:"id"`
	FileName  string `json:"file_name"`
	Path      string `json:"path"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	IsActive  bool   `json:"is_active"`
	IsDeleted bool   `json:"is_deleted"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	DeletedAt string `json:"deleted_at"`
}
