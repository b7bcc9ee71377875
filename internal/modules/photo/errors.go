package photo

import "errors"

var (
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrFileNotFound    = errors.New("referenced file does not exist")
)
