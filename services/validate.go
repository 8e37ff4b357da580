package services

import (
	"github.com/bloglist-app/backend/errs"
)

// Usernames and passwords of 3 characters or fewer are rejected.
const minCredentialLength = 4

// BlogSubmission is the raw, unvalidated payload of a blog create or
// update request. Likes is a pointer so an absent field can be told apart
// from an explicit 0.
type BlogSubmission struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// NewBlog is a blog submission that passed validation. Downstream code
// only ever sees this shape.
type NewBlog struct {
	Title  string
	Author string
	URL    string
	Likes  int
}

// UserRegistration is the raw payload of a registration request.
type UserRegistration struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ValidateBlogSubmission checks required fields and coerces an absent
// likes value to 0. Author is free text and may be empty.
func ValidateBlogSubmission(sub BlogSubmission) (*NewBlog, error) {
	if sub.Title == "" {
		return nil, errs.NewValidationError("title", "title is required")
	}
	if sub.URL == "" {
		return nil, errs.NewValidationError("url", "url is required")
	}

	likes := 0
	if sub.Likes != nil {
		likes = *sub.Likes
	}
	if likes < 0 {
		return nil, errs.NewValidationError("likes", "likes must not be negative")
	}

	return &NewBlog{
		Title:  sub.Title,
		Author: sub.Author,
		URL:    sub.URL,
		Likes:  likes,
	}, nil
}

// ValidateUserRegistration checks that username and password are present
// and long enough. Name is optional.
func ValidateUserRegistration(reg UserRegistration) error {
	if reg.Username == "" {
		return errs.NewValidationError("username", "username is required")
	}
	if len(reg.Username) < minCredentialLength {
		return errs.NewValidationError("username", "username must be at least 4 characters")
	}
	if reg.Password == "" {
		return errs.NewValidationError("password", "password is required")
	}
	if len(reg.Password) < minCredentialLength {
		return errs.NewValidationError("password", "password must be at least 4 characters")
	}
	return nil
}
