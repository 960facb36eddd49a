package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// Create validates and persists a new post authored by authorID
	Create(ctx context.Context, authorID string, req CreatePostRequest) (*Post, error)

	// Get retrieves a single post with its author expanded
	Get(ctx context.Context, id string) (*Post, error)

	// List returns one page of posts, newest first, optionally filtered by
	// tag or author
	List(ctx context.Context, req ListPostsRequest) (*ListPostsResponse, error)

	// Update applies a partial update; only the author may mutate the post
	Update(ctx context.Context, id, actorID string, req UpdatePostRequest) (*Post, error)

	// Delete removes a post and, by cascade, its comments
	Delete(ctx context.Context, id, actorID string) error

	// Like adds actorID to the post's likes set. Already a member is a
	// no-op; the returned count always equals the set's cardinality.
	Like(ctx context.Context, id, userID string) (*LikeResult, error)

	// Unlike removes actorID from the post's likes set, symmetric to Like
	Unlike(ctx context.Context, id, userID string) (*LikeResult, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post with its author profile expanded,
	// ErrPostNotFound if absent
	GetByID(ctx context.Context, id string) (*Post, error)

	// List returns posts newest first plus the total matching count.
	// Zero-value filter fields are ignored.
	List(ctx context.Context, tag, authorID string, limit, offset int) ([]*Post, int, error)

	// Update persists title/content/tags/cover changes
	Update(ctx context.Context, post *Post) error

	// Delete removes the post; its comments and likes go with it
	Delete(ctx context.Context, id string) error

	// AddLike atomically adds userID to the post's likes set and bumps the
	// counter when the membership actually changed. Returns the resulting
	// count and whether a row was added.
	AddLike(ctx context.Context, postID, userID string) (int, bool, error)

	// RemoveLike is the symmetric atomic removal
	RemoveLike(ctx context.Context, postID, userID string) (int, bool, error)
}
