// Package stats computes aggregate statistics over a snapshot of the blog
// collection. Every function is pure and deterministic for a given input
// slice; none of them touch the database.
package stats

import (
	"github.com/bloglist-app/backend/errs"
	"github.com/bloglist-app/backend/models"
)

// AuthorCount is the result of MostBlogs: the author holding the most blogs.
type AuthorCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is the result of MostLikes: the author holding the most total likes.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// Dummy returns len+1. Kept as a trivial health-check style aggregate.
func Dummy(blogs []*models.Blog) int {
	return len(blogs) + 1
}

// TotalLikes sums likes across all blogs; an empty slice sums to 0.
func TotalLikes(blogs []*models.Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes. When several blogs
// share the maximum, the first one in input order wins.
func FavoriteBlog(blogs []*models.Blog) (*models.Blog, error) {
	if len(blogs) == 0 {
		return nil, errs.NewEmptyInputError("blog collection")
	}

	favorite := blogs[0]
	for _, blog := range blogs[1:] {
		if blog.Likes > favorite.Likes {
			favorite = blog
		}
	}
	return favorite, nil
}

// MostBlogs groups blogs by author string (the empty string is a group of
// its own) and returns the author with the largest group. Ties go to the
// author first encountered in input order.
func MostBlogs(blogs []*models.Blog) (*AuthorCount, error) {
	if len(blogs) == 0 {
		return nil, errs.NewEmptyInputError("blog collection")
	}

	counts := make(map[string]int, len(blogs))
	var order []string
	for _, blog := range blogs {
		if _, seen := counts[blog.Author]; !seen {
			order = append(order, blog.Author)
		}
		counts[blog.Author]++
	}

	top := &AuthorCount{Author: order[0], Blogs: counts[order[0]]}
	for _, author := range order[1:] {
		if counts[author] > top.Blogs {
			top = &AuthorCount{Author: author, Blogs: counts[author]}
		}
	}
	return top, nil
}

// MostLikes groups blogs by author string and returns the author with the
// largest summed likes. Same first-occurrence tie-break as MostBlogs.
func MostLikes(blogs []*models.Blog) (*AuthorLikes, error) {
	if len(blogs) == 0 {
		return nil, errs.NewEmptyInputError("blog collection")
	}

	sums := make(map[string]int, len(blogs))
	var order []string
	for _, blog := range blogs {
		if _, seen := sums[blog.Author]; !seen {
			order = append(order, blog.Author)
		}
		sums[blog.Author] += blog.Likes
	}

	top := &AuthorLikes{Author: order[0], Likes: sums[order[0]]}
	for _, author := range order[1:] {
		if sums[author] > top.Likes {
			top = &AuthorLikes{Author: author, Likes: sums[author]}
		}
	}
	return top, nil
}
