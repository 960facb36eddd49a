package comments

import (
	"time"

	"Inkwell/internal/core/users"
)

// Comment represents a comment on a post. A comment with a nil ParentID is
// top-level; one with a ParentID is a reply. Replies never nest further:
// creation rejects a parent that is itself a reply.
type Comment struct {
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	Author     *users.Profile `json:"author,omitempty"`
	ParentID   *string        `json:"parentId,omitempty"`
	ID         string         `json:"id"`
	Content    string         `json:"content"`
	PostID     string         `json:"postId"`
	AuthorID   string         `json:"authorId"`
	Replies    []*Comment     `json:"replies,omitempty"`
	LikesCount int            `json:"likesCount"`
}

// CreateCommentRequest represents input for creating a comment
type CreateCommentRequest struct {
	Content  string  `json:"content"`
	PostID   string  `json:"postId"`
	ParentID *string `json:"parentId"`
}

// UpdateCommentRequest represents a content edit
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// ListCommentsRequest represents a paginated top-level comment query
type ListCommentsRequest struct {
	PostID string
	Page   int
	Limit  int
}

// ListCommentsResponse carries one page of top-level comments, each with its
// replies attached, plus pagination totals. Totals count top-level comments
// only.
type ListCommentsResponse struct {
	Comments      []*Comment `json:"comments"`
	TotalComments int        `json:"totalComments"`
	TotalPages    int        `json:"totalPages"`
	Page          int        `json:"currentPage"`
}

// LikeResult reports the counter state after a like or unlike
type LikeResult struct {
	LikesCount int  `json:"likesCount"`
	Liked      bool `json:"liked"`
}
