package services

import (
	"strings"

	"github.com/bloglist-app/backend/errs"
	"github.com/bloglist-app/backend/models"
)

// Principal is the authenticated identity attached to an incoming request.
// The ID is the string form of the user id as carried in the token claims.
type Principal struct {
	ID       string
	Username string
}

// canonicalID normalizes an identifier for comparison. Principal ids come
// out of token claims as strings while owner ids are typed uuids, so both
// sides are reduced to a trimmed lowercase form before comparing.
func canonicalID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// AuthorizeDelete allows the delete only when the principal is the blog's
// owner. A blog without an owner cannot be deleted through this path.
// Updates deliberately run no such check; only delete is owner-gated.
func AuthorizeDelete(principal Principal, blog *models.Blog) error {
	if blog.OwnerID == nil {
		return errs.NewUnauthorizedError("blog has no owner")
	}
	if canonicalID(principal.ID) != canonicalID(blog.OwnerID.String()) {
		return errs.NewUnauthorizedError("only the owner can delete a blog")
	}
	return nil
}
