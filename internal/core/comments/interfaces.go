package comments

import "context"

// Service defines the business logic interface for comments
type Service interface {
	// Create validates and persists a new comment. The parent post must
	// exist; a reply's parent must exist, belong to the same post, and be
	// top-level. The post's comment counter moves with the insert.
	Create(ctx context.Context, authorID string, req CreateCommentRequest) (*Comment, error)

	// ListByPost returns one page of top-level comments, newest first, each
	// with one level of replies attached and all authors expanded
	ListByPost(ctx context.Context, req ListCommentsRequest) (*ListCommentsResponse, error)

	// ForPost returns every comment on a post, newest first, with authors
	// expanded. Used when a single post is fetched with its full thread.
	ForPost(ctx context.Context, postID string) ([]*Comment, error)

	// Update edits a comment's content; only the author may edit
	Update(ctx context.Context, id, actorID string, req UpdateCommentRequest) (*Comment, error)

	// Delete removes a comment and its replies, moving the post's comment
	// counter accordingly
	Delete(ctx context.Context, id, actorID string) error

	// Like adds userID to the comment's likes set; a duplicate is a no-op
	Like(ctx context.Context, id, userID string) (*LikeResult, error)

	// Unlike removes userID from the likes set, symmetric to Like
	Unlike(ctx context.Context, id, userID string) (*LikeResult, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a comment and increments the owning post's comment
	// counter by one in the same transaction
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a comment with its author profile expanded,
	// ErrCommentNotFound if absent
	GetByID(ctx context.Context, id string) (*Comment, error)

	// ListTopLevel returns top-level comments for a post, newest first,
	// plus the total top-level count
	ListTopLevel(ctx context.Context, postID string, limit, offset int) ([]*Comment, int, error)

	// ListReplies returns all replies whose parent is in parentIDs, newest
	// first, authors expanded
	ListReplies(ctx context.Context, parentIDs []string) ([]*Comment, error)

	// ListByPost returns every comment on a post, newest first
	ListByPost(ctx context.Context, postID string) ([]*Comment, error)

	// Update persists a content edit
	Update(ctx context.Context, comment *Comment) error

	// Delete removes the comment and its replies, decrementing the post's
	// comment counter by the number of rows removed, all in one transaction
	Delete(ctx context.Context, id string) error

	// AddLike atomically adds userID to the comment's likes set, bumping
	// the counter only when membership actually changed. Returns the
	// resulting count and whether a row was added.
	AddLike(ctx context.Context, commentID, userID string) (int, bool, error)

	// RemoveLike is the symmetric atomic removal
	RemoveLike(ctx context.Context, commentID, userID string) (int, bool, error)
}
