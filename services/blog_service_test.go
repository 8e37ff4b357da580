package services

import (
	"context"
	"errors"
	"testing"

	"github.com/bloglist-app/backend/errs"
	"github.com/bloglist-app/backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStores() (*fakeBlogStore, *fakeUserStore, *models.User) {
	owner := &models.User{
		ID:       uuid.New(),
		Username: "mluukkai",
		BlogIDs:  []uuid.UUID{},
	}
	return &fakeBlogStore{}, &fakeUserStore{users: []*models.User{owner}}, owner
}

func TestBlogServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists blog and back-reference", func(t *testing.T) {
		blogStore, userStore, owner := newTestStores()
		service := NewBlogService(blogStore, userStore)

		blog, err := service.Create(ctx, Principal{ID: owner.ID.String()}, BlogSubmission{
			Title: "Go Concurrency Patterns",
			URL:   "https://go.dev/blog/pipelines",
			Likes: intPtr(3),
		})
		require.NoError(t, err)
		require.NotNil(t, blog.OwnerID)
		assert.Equal(t, owner.ID, *blog.OwnerID)
		assert.Equal(t, 3, blog.Likes)

		require.Len(t, blogStore.blogs, 1)
		assert.Equal(t, []uuid.UUID{blog.ID}, userStore.mustUser(owner.ID).BlogIDs)
	})

	t.Run("absent likes persists as zero", func(t *testing.T) {
		blogStore, userStore, owner := newTestStores()
		service := NewBlogService(blogStore, userStore)

		blog, err := service.Create(ctx, Principal{ID: owner.ID.String()}, BlogSubmission{
			Title: "t",
			URL:   "u",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, blog.Likes)
		assert.Equal(t, 0, blogStore.blogs[0].Likes)
	})

	t.Run("validation failure persists nothing", func(t *testing.T) {
		blogStore, userStore, owner := newTestStores()
		service := NewBlogService(blogStore, userStore)

		_, err := service.Create(ctx, Principal{ID: owner.ID.String()}, BlogSubmission{URL: "u"})
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Empty(t, blogStore.blogs)
		assert.Empty(t, userStore.mustUser(owner.ID).BlogIDs)
	})

	t.Run("unparseable principal is unauthorized", func(t *testing.T) {
		blogStore, userStore, _ := newTestStores()
		service := NewBlogService(blogStore, userStore)

		_, err := service.Create(ctx, Principal{ID: "not-a-uuid"}, BlogSubmission{Title: "t", URL: "u"})
		require.Error(t, err)
		assert.True(t, errs.IsUnauthorized(err))
		assert.Empty(t, blogStore.blogs)
	})

	t.Run("failed back-reference write surfaces and leaves blog row", func(t *testing.T) {
		blogStore, userStore, owner := newTestStores()
		userStore.updateErr = errors.New("connection reset")
		service := NewBlogService(blogStore, userStore)

		_, err := service.Create(ctx, Principal{ID: owner.ID.String()}, BlogSubmission{Title: "t", URL: "u"})
		require.Error(t, err)
		// The blog row stays: OwnerID is authoritative, reconcile repairs the list
		assert.Len(t, blogStore.blogs, 1)
		assert.Empty(t, userStore.mustUser(owner.ID).BlogIDs)
	})
}

func TestBlogServiceDelete(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeBlogStore, *fakeUserStore, *models.User, *models.Blog) {
		t.Helper()
		blogStore, userStore, owner := newTestStores()
		service := NewBlogService(blogStore, userStore)
		blog, err := service.Create(ctx, Principal{ID: owner.ID.String()}, BlogSubmission{
			Title: "t", URL: "u",
		})
		require.NoError(t, err)
		return blogStore, userStore, owner, blog
	}

	t.Run("owner delete removes blog and reference exactly once", func(t *testing.T) {
		blogStore, userStore, owner, blog := seed(t)
		service := NewBlogService(blogStore, userStore)

		err := service.Delete(ctx, Principal{ID: owner.ID.String()}, blog.ID)
		require.NoError(t, err)
		assert.Empty(t, blogStore.blogs)
		assert.Empty(t, userStore.mustUser(owner.ID).BlogIDs)
	})

	t.Run("non-owner delete is unauthorized and changes nothing", func(t *testing.T) {
		blogStore, userStore, owner, blog := seed(t)
		service := NewBlogService(blogStore, userStore)

		err := service.Delete(ctx, Principal{ID: uuid.New().String()}, blog.ID)
		require.Error(t, err)
		assert.True(t, errs.IsUnauthorized(err))
		assert.Len(t, blogStore.blogs, 1)
		assert.Equal(t, []uuid.UUID{blog.ID}, userStore.mustUser(owner.ID).BlogIDs)
	})

	t.Run("unknown blog is not found", func(t *testing.T) {
		blogStore, userStore, owner, _ := seed(t)
		service := NewBlogService(blogStore, userStore)

		err := service.Delete(ctx, Principal{ID: owner.ID.String()}, uuid.New())
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestBlogServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the four fields and preserves ownership", func(t *testing.T) {
		blogStore, userStore, owner := newTestStores()
		service := NewBlogService(blogStore, userStore)
		blog, err := service.Create(ctx, Principal{ID: owner.ID.String()}, BlogSubmission{
			Title: "old", Author: "A", URL: "old-url", Likes: intPtr(1),
		})
		require.NoError(t, err)

		// No principal parameter: updates are deliberately not owner-gated
		updated, err := service.Update(ctx, blog.ID, BlogSubmission{
			Title: "new", Author: "B", URL: "new-url", Likes: intPtr(9),
		})
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Title)
		assert.Equal(t, "B", updated.Author)
		assert.Equal(t, "new-url", updated.URL)
		assert.Equal(t, 9, updated.Likes)
		require.NotNil(t, updated.OwnerID)
		assert.Equal(t, owner.ID, *updated.OwnerID)
	})

	t.Run("absent likes resets to zero", func(t *testing.T) {
		blogStore, userStore, owner := newTestStores()
		service := NewBlogService(blogStore, userStore)
		blog, err := service.Create(ctx, Principal{ID: owner.ID.String()}, BlogSubmission{
			Title: "t", URL: "u", Likes: intPtr(5),
		})
		require.NoError(t, err)

		updated, err := service.Update(ctx, blog.ID, BlogSubmission{Title: "t", URL: "u"})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Likes)
	})

	t.Run("negative likes rejected, record untouched", func(t *testing.T) {
		blogStore, userStore, owner := newTestStores()
		service := NewBlogService(blogStore, userStore)
		blog, err := service.Create(ctx, Principal{ID: owner.ID.String()}, BlogSubmission{
			Title: "t", URL: "u", Likes: intPtr(5),
		})
		require.NoError(t, err)

		_, err = service.Update(ctx, blog.ID, BlogSubmission{Title: "t", URL: "u", Likes: intPtr(-7)})
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))

		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "likes", apiErr.Field)

		stored, err := blogStore.FindByID(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, stored.Likes)
	})

	t.Run("unknown blog is not found", func(t *testing.T) {
		blogStore, userStore, _ := newTestStores()
		service := NewBlogService(blogStore, userStore)

		_, err := service.Update(ctx, uuid.New(), BlogSubmission{Title: "t", URL: "u"})
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}
