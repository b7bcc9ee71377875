package domain

import "time"

type Photo struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	ProjectID   int64     `json:"project_id"`
	UserID      int64     `json:"user_id"`
	Filename    string    `json:"filename"`
	FileID      string    `json:"file_id"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
