package database

import (
	"github.com/bloglist-app/backend/models"
	"gorm.io/gorm"
)

type Database struct {
	userRepo *UserRepo
	blogRepo *BlogRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo: NewUserRepo(db),
		blogRepo: NewBlogRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

// Migrate creates or updates the users and blogs tables
func (d Database) Migrate() error {
	return d.userRepo.db.AutoMigrate(&models.User{}, &models.Blog{})
}
