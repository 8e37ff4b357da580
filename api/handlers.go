package api

import (
	"github.com/bloglist-app/backend/auth"
	"github.com/bloglist-app/backend/database"
	"github.com/bloglist-app/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, tokens *auth.TokenIssuer) *routeHandlers {
	blogService := services.NewBlogService(database.BlogRepo(), database.UserRepo())
	userService := services.NewUserService(database.UserRepo(), database.BlogRepo(), tokens)

	return &routeHandlers{
		blogHandler:  newBlogHandler(blogService),
		userHandler:  newUserHandler(userService),
		loginHandler: newLoginHandler(userService),
	}
}
