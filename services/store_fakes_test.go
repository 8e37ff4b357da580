package services

import (
	"context"

	"github.com/bloglist-app/backend/errs"
	"github.com/bloglist-app/backend/models"
	"github.com/google/uuid"
)

// fakeBlogStore is an in-memory BlogStore keeping insertion order.
type fakeBlogStore struct {
	blogs     []*models.Blog
	addErr    error
	updateErr error
	deleteErr error
}

func (f *fakeBlogStore) FindAll(ctx context.Context) ([]*models.Blog, error) {
	out := make([]*models.Blog, len(f.blogs))
	copy(out, f.blogs)
	return out, nil
}

func (f *fakeBlogStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	for _, blog := range f.blogs {
		if blog.ID == id {
			clone := *blog
			return &clone, nil
		}
	}
	return nil, errs.NewNotFound("blog")
}

func (f *fakeBlogStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Blog, error) {
	var out []*models.Blog
	for _, blog := range f.blogs {
		if blog.OwnerID != nil && *blog.OwnerID == ownerID {
			out = append(out, blog)
		}
	}
	return out, nil
}

func (f *fakeBlogStore) Add(ctx context.Context, blog *models.Blog) error {
	if f.addErr != nil {
		return f.addErr
	}
	clone := *blog
	f.blogs = append(f.blogs, &clone)
	return nil
}

func (f *fakeBlogStore) Update(ctx context.Context, blog *models.Blog) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, existing := range f.blogs {
		if existing.ID == blog.ID {
			clone := *blog
			f.blogs[i] = &clone
			return nil
		}
	}
	clone := *blog
	f.blogs = append(f.blogs, &clone)
	return nil
}

func (f *fakeBlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, existing := range f.blogs {
		if existing.ID == id {
			f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users     []*models.User
	addErr    error
	updateErr error
}

func (f *fakeUserStore) FindAll(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			clone := *user
			clone.BlogIDs = append([]uuid.UUID(nil), user.BlogIDs...)
			return &clone, nil
		}
	}
	return nil, errs.NewNotFound("user")
}

func (f *fakeUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			clone := *user
			clone.BlogIDs = append([]uuid.UUID(nil), user.BlogIDs...)
			return &clone, nil
		}
	}
	return nil, errs.NewNotFound("user")
}

func (f *fakeUserStore) Add(ctx context.Context, user *models.User) error {
	if f.addErr != nil {
		return f.addErr
	}
	clone := *user
	f.users = append(f.users, &clone)
	return nil
}

func (f *fakeUserStore) Update(ctx context.Context, user *models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, existing := range f.users {
		if existing.ID == user.ID {
			clone := *user
			f.users[i] = &clone
			return nil
		}
	}
	clone := *user
	f.users = append(f.users, &clone)
	return nil
}

// mustUser returns the stored user by id, panicking if absent.
func (f *fakeUserStore) mustUser(id uuid.UUID) *models.User {
	for _, user := range f.users {
		if user.ID == id {
			return user
		}
	}
	panic("user not in fake store")
}
