package photo

type CreatePhotoRequest struct {
	ProjectID   int64    `json:"project_id" binding:"required"`
	Filename    string   `json:"filename" binding:"required"`
	FileID      string   `json:"file_id" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
