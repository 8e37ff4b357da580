package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes sets up all routes; blog mutations that need a principal
// sit behind the auth middleware
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Login endpoint
		r.Post("/api/login", handlers.loginHandler.login())

		// User Handler endpoints
		r.Get("/api/users", handlers.userHandler.getAllUsers())
		r.Post("/api/users", handlers.userHandler.registerUser())

		// Blog Handler endpoints
		r.Get("/api/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/api/blogs/stats", handlers.blogHandler.getStats())
		r.Get("/api/blogs/{blogID}", handlers.blogHandler.getBlog())
		r.Put("/api/blogs/{blogID}", handlers.blogHandler.updateBlog())

		// Owner-scoped blog mutations
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Post("/api/blogs", handlers.blogHandler.createBlog())
			r.Delete("/api/blogs/{blogID}", handlers.blogHandler.deleteBlog())
		})
	})
}
