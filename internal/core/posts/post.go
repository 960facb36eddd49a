package posts

import (
	"time"

	"Inkwell/internal/core/users"
)

// Post represents a blog post.
// LikesCount and CommentsCount are denormalized counters maintained by the
// repository in the same transaction as the like / comment write, so they
// always equal the cardinality of the backing sets.
type Post struct {
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Author        *users.Profile `json:"author,omitempty"`
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	CoverImage    string         `json:"coverImage,omitempty"`
	AuthorID      string         `json:"authorId"`
	Tags          []string       `json:"tags"`
	LikesCount    int            `json:"likesCount"`
	CommentsCount int            `json:"commentsCount"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CoverImage string   `json:"coverImage"`
	Tags       []string `json:"tags"`
}

// UpdatePostRequest represents a partial post update.
// Nil fields keep their current value; a non-nil Tags replaces the tag list.
type UpdatePostRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	CoverImage *string   `json:"coverImage"`
	Tags       *[]string `json:"tags"`
}

// ListPostsRequest represents a paginated post listing query
type ListPostsRequest struct {
	Tag      string
	AuthorID string
	Page     int
	Limit    int
}

// ListPostsResponse carries one page of posts plus pagination totals
type ListPostsResponse struct {
	Posts      []*Post `json:"posts"`
	TotalPosts int     `json:"totalPosts"`
	TotalPages int     `json:"totalPages"`
	Page       int     `json:"currentPage"`
}

// LikeResult reports the counter state after a like or unlike
type LikeResult struct {
	LikesCount int  `json:"likesCount"`
	Liked      bool `json:"liked"`
}
