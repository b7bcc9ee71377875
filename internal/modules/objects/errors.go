package objects

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrObjectNotFound wraps gorm.ErrRecordNotFound so modules that
	// resolve file references through their own ObjectResolver interface
	// see the same not-found sentinel the repositories use.
	ErrObjectNotFound  = fmt.Errorf("object not found: %w", gorm.ErrRecordNotFound)
	ErrInvalidToken    = errors.New("upload token is invalid or expired")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("file type is not allowed")
	ErrEmptyFile       = errors.New("file is empty")
)
