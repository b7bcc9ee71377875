package auth

import (
	"context"

	"buildboard/internal/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type TokenGenerator interface {
	GenerateToken(userID, companyID int64, role string) (string, error)
}
