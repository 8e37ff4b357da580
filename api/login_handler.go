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

type loginHandler struct {
	responder   Responder
	logger      zerolog.Logger
	userService *services.UserService
}

func newLoginHandler(userService *services.UserService) loginHandler {
	logger := log.With().Str("handlerName", "loginHandler").Logger()

	return loginHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		userService: userService,
	}
}

// LoginRequest carries the credentials of a login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login authenticates a user and issues a bearer token
// @Summary Log in
// @Description Verifies credentials and returns a signed bearer token
// @Tags Login
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} services.LoginResult "Token and user identity"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid credentials"
// @Router /api/login [post]
func (h loginHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var request LoginRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&request); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		result, err := h.userService.Authenticate(r.Context(), request.Username, request.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, result)
	}
}
