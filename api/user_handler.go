package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/bloglist-app/backend/errs"
	"github.com/bloglist-app/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder   Responder
	logger      zerolog.Logger
	userService *services.UserService
}

func newUserHandler(userService *services.UserService) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		userService: userService,
	}
}

// UserCollection represents multiple users with their blogs expanded
type UserCollection struct {
	Users []services.UserWithBlogs `json:"users"`
	Total int                      `json:"total,omitempty"`
}

// getAllUsers retrieves all users with their owned blogs expanded
// @Summary Get all users
// @Description Retrieves all users with their owned blogs expanded
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} UserCollection "List of users with blogs"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching users"
// @Router /api/users [get]
func (h userHandler) getAllUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userService.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		response := UserCollection{
			Users: users,
			Total: len(users),
		}

		h.responder.WriteJSON(w, response)
	}
}

// registerUser creates a new user account
// @Summary Register user
// @Description Registers a new user account with a unique username
// @Tags Users
// @Accept json
// @Produce json
// @Param user body services.UserRegistration true "Registration data"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid registration data or duplicate username"
// @Router /api/users [post]
func (h userHandler) registerUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var registration services.UserRegistration
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&registration); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode registration request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		user, err := h.userService.Register(r.Context(), registration)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, user)
	}
}
