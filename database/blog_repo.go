package database

import (
	"context"
	"errors"

	"github.com/bloglist-app/backend/errs"
	"github.com/bloglist-app/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns all blogs with their owner expanded
func (r *BlogRepo) FindAll(ctx context.Context) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.WithContext(ctx).Preload("Owner").Find(&blogs).Error
	return blogs, err
}

// FindByID returns a blog by its ID
func (r *BlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).First(&blog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("blog")
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindByOwner returns all blogs whose OwnerID matches the given user id
func (r *BlogRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&blogs).Error
	return blogs, err
}

// Add inserts a new blog into the database
func (r *BlogRepo) Add(ctx context.Context, blog *models.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

// Update updates an existing blog in the database
func (r *BlogRepo) Update(ctx context.Context, blog *models.Blog) error {
	return r.db.WithContext(ctx).Save(blog).Error
}

// Delete removes a blog from the database by id
func (r *BlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Blog{}, id).Error
}
