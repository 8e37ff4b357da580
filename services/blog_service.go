package services

import (
	"context"

	"github.com/bloglist-app/backend/errs"
	"github.com/bloglist-app/backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BlogService owns the blog lifecycle and keeps the User⇄Blog relationship
// consistent. The two collections are written without a transaction:
// Blog.OwnerID is the source of truth and the user's cached blog-id list is
// derived, so any half-applied pair of writes is repairable by Reconciler.
type BlogService struct {
	blogs  BlogStore
	users  UserStore
	logger zerolog.Logger
}

func NewBlogService(blogs BlogStore, users UserStore) *BlogService {
	logger := log.With().Str("serviceName", "blogService").Logger()

	return &BlogService{
		blogs:  blogs,
		users:  users,
		logger: logger,
	}
}

// List returns all blogs with their owner expanded.
func (s *BlogService) List(ctx context.Context) ([]*models.Blog, error) {
	return s.blogs.FindAll(ctx)
}

// Get returns a single blog by id.
func (s *BlogService) Get(ctx context.Context, blogID uuid.UUID) (*models.Blog, error) {
	return s.blogs.FindByID(ctx, blogID)
}

// Create validates the submission, persists a blog owned by the principal
// and appends its id to the owner's cached list. The blog row is written
// first: if the user update then fails, the blog's back-reference is
// missing but OwnerID already records the ownership, so a reconcile pass
// restores the list.
func (s *BlogService) Create(ctx context.Context, principal Principal, sub BlogSubmission) (*models.Blog, error) {
	validated, err := ValidateBlogSubmission(sub)
	if err != nil {
		return nil, err
	}

	ownerID, err := uuid.Parse(principal.ID)
	if err != nil {
		return nil, errs.NewUnauthorizedError("invalid principal id")
	}

	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		ID:      uuid.New(),
		Title:   validated.Title,
		Author:  validated.Author,
		URL:     validated.URL,
		Likes:   validated.Likes,
		OwnerID: &owner.ID,
	}

	if err := s.blogs.Add(ctx, blog); err != nil {
		return nil, errs.NewDatabaseError("create", "blog", err)
	}

	owner.BlogIDs = append(owner.BlogIDs, blog.ID)
	if err := s.users.Update(ctx, owner); err != nil {
		s.logger.Error().Err(err).
			Str("blogId", blog.ID.String()).
			Str("ownerId", owner.ID.String()).
			Msg("blog created but owner back-reference not persisted; run reconcile to repair")
		return nil, errs.NewDatabaseError("update", "user", err)
	}

	return blog, nil
}

// Update overwrites title, author, url and likes on an existing blog and
// returns the updated record. All other stored fields, ownership included,
// are preserved. No ownership check runs here.
func (s *BlogService) Update(ctx context.Context, blogID uuid.UUID, sub BlogSubmission) (*models.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	likes := 0
	if sub.Likes != nil {
		likes = *sub.Likes
	}
	if likes < 0 {
		return nil, errs.NewValidationError("likes", "likes must not be negative")
	}

	blog.Title = sub.Title
	blog.Author = sub.Author
	blog.URL = sub.URL
	blog.Likes = likes

	if err := s.blogs.Update(ctx, blog); err != nil {
		return nil, errs.NewDatabaseError("update", "blog", err)
	}
	return blog, nil
}

// Delete removes a blog after the owner check. The id is dropped from the
// owner's cached list and the user persisted before the blog row is
// deleted; a crash between the two leaves a blog no list references, which
// the reconcile pass repairs from OwnerID.
func (s *BlogService) Delete(ctx context.Context, principal Principal, blogID uuid.UUID) error {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return err
	}

	if err := AuthorizeDelete(principal, blog); err != nil {
		return err
	}

	owner, err := s.users.FindByID(ctx, *blog.OwnerID)
	if err == nil {
		owner.BlogIDs = removeID(owner.BlogIDs, blogID)
		if err := s.users.Update(ctx, owner); err != nil {
			return errs.NewDatabaseError("update", "user", err)
		}
	} else if !errs.IsNotFound(err) {
		return err
	}

	if err := s.blogs.Delete(ctx, blogID); err != nil {
		return errs.NewDatabaseError("delete", "blog", err)
	}
	return nil
}

// removeID drops every occurrence of id, preserving the order of the rest.
func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	kept := ids[:0:0]
	for _, candidate := range ids {
		if candidate != id {
			kept = append(kept, candidate)
		}
	}
	return kept
}
