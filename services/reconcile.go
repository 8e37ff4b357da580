package services

import (
	"context"
	"sort"

	"github.com/bloglist-app/backend/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Reconciler rebuilds every user's cached blog-id list from Blog.OwnerID.
// It is the recovery story for the non-transactional paired writes in
// BlogService: after a crash between the blog write and the user write,
// running the reconciler restores the derived list to match the
// authoritative ownership field.
type Reconciler struct {
	users  UserStore
	blogs  BlogStore
	logger zerolog.Logger
}

func NewReconciler(users UserStore, blogs BlogStore) *Reconciler {
	logger := log.With().Str("serviceName", "reconciler").Logger()

	return &Reconciler{
		users:  users,
		blogs:  blogs,
		logger: logger,
	}
}

// Run scans the blog collection, groups ids by owner and rewrites every
// user whose cached list drifted. It returns the number of users repaired.
func (r *Reconciler) Run(ctx context.Context) (int, error) {
	blogs, err := r.blogs.FindAll(ctx)
	if err != nil {
		return 0, errs.NewDatabaseError("find", "blogs", err)
	}

	byOwner := make(map[uuid.UUID][]uuid.UUID)
	for _, blog := range blogs {
		if blog.OwnerID != nil {
			byOwner[*blog.OwnerID] = append(byOwner[*blog.OwnerID], blog.ID)
		}
	}

	users, err := r.users.FindAll(ctx)
	if err != nil {
		return 0, errs.NewDatabaseError("find", "users", err)
	}

	repaired := 0
	for _, user := range users {
		derived := byOwner[user.ID]
		if derived == nil {
			derived = []uuid.UUID{}
		}
		if sameIDSet(user.BlogIDs, derived) {
			continue
		}

		user.BlogIDs = derived
		if err := r.users.Update(ctx, user); err != nil {
			return repaired, errs.NewDatabaseError("update", "user", err)
		}
		repaired++
		r.logger.Info().
			Str("userId", user.ID.String()).
			Int("blogCount", len(derived)).
			Msg("rebuilt cached blog list")
	}

	return repaired, nil
}

// sameIDSet compares two id lists ignoring order. The cached list keeps
// insertion order while the rebuilt one follows scan order, and order is
// not part of the ownership invariant.
func sameIDSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	as := make([]string, len(a))
	bs := make([]string, len(b))
	for i := range a {
		as[i] = a[i].String()
		bs[i] = b[i].String()
	}
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
