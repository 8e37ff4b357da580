package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/bloglist-app/backend/errs"
	"github.com/bloglist-app/backend/models"
	"github.com/bloglist-app/backend/services"
	"github.com/bloglist-app/backend/stats"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogHandler struct {
	responder   Responder
	logger      zerolog.Logger
	blogService *services.BlogService
}

func newBlogHandler(blogService *services.BlogService) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		blogService: blogService,
	}
}

// BlogCollection represents multiple blogs with a total count
type BlogCollection struct {
	Blogs []*models.Blog `json:"blogs"`
	Total int            `json:"total,omitempty"`
}

// StatsReport represents aggregate statistics over the blog collection
type StatsReport struct {
	Count      int                `json:"count"`
	TotalLikes int                `json:"totalLikes"`
	Favorite   *models.Blog       `json:"favorite,omitempty"`
	MostBlogs  *stats.AuthorCount `json:"mostBlogs,omitempty"`
	MostLikes  *stats.AuthorLikes `json:"mostLikes,omitempty"`
}

// getAllBlogs retrieves all blogs with their owner expanded
// @Summary Get all blogs
// @Description Retrieves all blogs from the database with their owner expanded
// @Tags Blogs
// @Accept json
// @Produce json
// @Success 200 {object} BlogCollection "List of blogs"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blogs"
// @Router /api/blogs [get]
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogService.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blogs", err))
			return
		}

		response := BlogCollection{
			Blogs: blogs,
			Total: len(blogs),
		}

		h.responder.WriteJSON(w, response)
	}
}

// getBlog retrieves a specific blog by ID
// @Summary Get blog
// @Description Retrieves a single blog by ID
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 200 {object} models.Blog "Blog details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Router /api/blogs/{blogID} [get]
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseBlogID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.blogService.Get(r.Context(), blogID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// createBlog creates a new blog owned by the authenticated principal
// @Summary Create blog
// @Description Creates a new blog owned by the authenticated user
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blog body services.BlogSubmission true "Blog data"
// @Success 201 {object} models.Blog "Created blog"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog data"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid token"
// @Router /api/blogs [post]
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var submission services.BlogSubmission
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&submission); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		blog, err := h.blogService.Create(r.Context(), principal, submission)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, blog)
	}
}

// updateBlog updates an existing blog
// @Summary Update blog
// @Description Overwrites title, author, url and likes on an existing blog
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Param blog body services.BlogSubmission true "Updated blog data"
// @Success 200 {object} models.Blog "Updated blog"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog data"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Router /api/blogs/{blogID} [put]
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseBlogID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var submission services.BlogSubmission
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&submission); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		blog, err := h.blogService.Update(r.Context(), blogID, submission)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// deleteBlog deletes a blog owned by the authenticated principal
// @Summary Delete blog
// @Description Deletes a blog; only its owner may do so
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized - Principal is not the owner"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Router /api/blogs/{blogID} [delete]
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogID, err := parseBlogID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogService.Delete(r.Context(), principal, blogID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteNoContent(w)
	}
}

// getStats computes aggregate statistics over a snapshot of all blogs
// @Summary Get blog statistics
// @Description Computes total likes, favorite blog and per-author aggregates
// @Tags Blogs
// @Accept json
// @Produce json
// @Success 200 {object} StatsReport "Aggregate statistics"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blogs"
// @Router /api/blogs/stats [get]
func (h blogHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogService.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blogs", err))
			return
		}

		report := StatsReport{
			Count:      len(blogs),
			TotalLikes: stats.TotalLikes(blogs),
		}

		// An empty collection yields a zero report rather than an error
		if favorite, err := stats.FavoriteBlog(blogs); err == nil {
			report.Favorite = favorite
		}
		if mostBlogs, err := stats.MostBlogs(blogs); err == nil {
			report.MostBlogs = mostBlogs
		}
		if mostLikes, err := stats.MostLikes(blogs); err == nil {
			report.MostLikes = mostLikes
		}

		h.responder.WriteJSON(w, report)
	}
}

// parseBlogID extracts and parses the blogID route parameter
func parseBlogID(r *http.Request) (uuid.UUID, error) {
	blogIDStr := chi.URLParam(r, "blogID")
	if blogIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing blogID")
	}

	blogID, err := uuid.Parse(blogIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid blogID")
	}
	return blogID, nil
}
