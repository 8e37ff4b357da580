package services

import (
	"context"

	"github.com/bloglist-app/backend/auth"
	"github.com/bloglist-app/backend/errs"
	"github.com/bloglist-app/backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// UserService handles registration, login and user listing.
type UserService struct {
	users  UserStore
	blogs  BlogStore
	tokens *auth.TokenIssuer
	logger zerolog.Logger
}

func NewUserService(users UserStore, blogs BlogStore, tokens *auth.TokenIssuer) *UserService {
	logger := log.With().Str("serviceName", "userService").Logger()

	return &UserService{
		users:  users,
		blogs:  blogs,
		tokens: tokens,
		logger: logger,
	}
}

// UserWithBlogs pairs a user with its owned blogs expanded for display.
type UserWithBlogs struct {
	User  *models.User   `json:"user"`
	Blogs []*models.Blog `json:"blogs"`
}

// LoginResult is what a successful authentication hands back to the client.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// Register validates the registration, rejects duplicate usernames and
// persists the user with a bcrypt password hash. The plaintext password is
// never stored.
func (s *UserService) Register(ctx context.Context, reg UserRegistration) (*models.User, error) {
	if err := ValidateUserRegistration(reg); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByUsername(ctx, reg.Username); err == nil {
		return nil, errs.NewValidationError("username", "username must be unique")
	} else if !errs.IsNotFound(err) {
		return nil, errs.NewDatabaseError("find", "user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcryptCost)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("hashing password", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     reg.Username,
		Name:         reg.Name,
		PasswordHash: string(hash),
		BlogIDs:      []uuid.UUID{},
	}

	// The unique index on username backstops the pre-check above; a
	// constraint race surfaces through the database error classifier.
	if err := s.users.Add(ctx, user); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}

	return user, nil
}

// Authenticate verifies the credentials and issues a signed token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errs.IsNotFound(err) {
		return nil, errs.NewUnauthorizedError("invalid username or password")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errs.NewUnauthorizedError("invalid username or password")
	}

	token, err := s.tokens.Issue(user.ID.String(), user.Username)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("issuing token", err)
	}

	return &LoginResult{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// List returns all users with their owned blogs expanded. The expansion
// queries Blog.OwnerID rather than dereferencing the cached id list, so a
// drifted cache never changes what is displayed.
func (s *UserService) List(ctx context.Context) ([]UserWithBlogs, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "users", err)
	}

	result := make([]UserWithBlogs, 0, len(users))
	for _, user := range users {
		blogs, err := s.blogs.FindByOwner(ctx, user.ID)
		if err != nil {
			return nil, errs.NewDatabaseError("find", "blogs", err)
		}
		result = append(result, UserWithBlogs{User: user, Blogs: blogs})
	}
	return result, nil
}
