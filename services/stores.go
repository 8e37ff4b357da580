package services

import (
	"context"

	"github.com/bloglist-app/backend/models"
	"github.com/google/uuid"
)

// BlogStore is the persistence handle the services operate against. The
// gorm-backed database.BlogRepo satisfies it; tests substitute in-memory fakes.
type BlogStore interface {
	FindAll(ctx context.Context) ([]*models.Blog, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Blog, error)
	Add(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserStore is the persistence handle for user records.
type UserStore interface {
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Add(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}
