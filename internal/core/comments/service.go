package comments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"Inkwell/internal/core/posts"
)

const (
	minContentLen = 1
	maxContentLen = 500

	// DefaultPageSize is used when a listing request carries no limit
	DefaultPageSize = 20

	maxPageSize = 100
)

type commentService struct {
	repo     Repository
	postRepo posts.Repository
}

// NewCommentService creates a comment service. The post repository is used
// to verify the owning post exists before a comment is created.
func NewCommentService(repo Repository, postRepo posts.Repository) Service {
	return &commentService{repo: repo, postRepo: postRepo}
}

func (s *commentService) Create(ctx context.Context, authorID string, req CreateCommentRequest) (*Comment, error) {
	content := strings.TrimSpace(req.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if req.PostID == "" {
		return nil, NewValidationError("postId", "postId is required")
	}

	// The owning post must resolve before anything is written
	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != req.PostID {
			return nil, NewValidationError("parentId", "parent comment belongs to a different post")
		}
		// Retrieval only expands one level, so deeper nesting would be
		// invisible. Refuse it instead.
		if parent.ParentID != nil {
			return nil, NewValidationError("parentId", "replies cannot be nested more than one level")
		}
	}

	now := time.Now().UTC()
	comment := &Comment{
		ID:        uuid.New().String(),
		Content:   content,
		PostID:    req.PostID,
		AuthorID:  authorID,
		ParentID:  req.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Repository.Create moves the post's comment counter in the same
	// transaction as the insert, so the count tracks the comment
	// population even if we crash right after this call.
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return s.repo.GetByID(ctx, comment.ID)
}

func (s *commentService) ListByPost(ctx context.Context, req ListCommentsRequest) (*ListCommentsResponse, error) {
	page, limit, err := validatePagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	if req.PostID == "" {
		return nil, NewValidationError("postId", "postId is required")
	}

	offset := (page - 1) * limit
	topLevel, total, err := s.repo.ListTopLevel(ctx, req.PostID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	if err := s.attachReplies(ctx, topLevel); err != nil {
		return nil, err
	}

	if topLevel == nil {
		topLevel = []*Comment{}
	}

	return &ListCommentsResponse{
		Comments:      topLevel,
		TotalComments: total,
		TotalPages:    (total + limit - 1) / limit,
		Page:          page,
	}, nil
}

func (s *commentService) ForPost(ctx context.Context, postID string) ([]*Comment, error) {
	items, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments for post: %w", err)
	}
	if items == nil {
		items = []*Comment{}
	}
	return items, nil
}

func (s *commentService) Update(ctx context.Context, id, actorID string, req UpdateCommentRequest) (*Comment, error) {
	// Existence before ownership
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != actorID {
		return nil, ErrNotAuthor
	}

	content := strings.TrimSpace(req.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id, actorID string) error {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.AuthorID != actorID {
		return ErrNotAuthor
	}

	return s.repo.Delete(ctx, id)
}

func (s *commentService) Like(ctx context.Context, id, userID string) (*LikeResult, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	count, _, err := s.repo.AddLike(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to like comment: %w", err)
	}

	return &LikeResult{LikesCount: count, Liked: true}, nil
}

func (s *commentService) Unlike(ctx context.Context, id, userID string) (*LikeResult, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	count, _, err := s.repo.RemoveLike(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to unlike comment: %w", err)
	}

	return &LikeResult{LikesCount: count, Liked: false}, nil
}

// attachReplies loads one level of replies for the given top-level comments
// and nests them under their parents, newest first
func (s *commentService) attachReplies(ctx context.Context, parents []*Comment) error {
	if len(parents) == 0 {
		return nil
	}

	parentIDs := make([]string, len(parents))
	byID := make(map[string]*Comment, len(parents))
	for i, parent := range parents {
		parentIDs[i] = parent.ID
		byID[parent.ID] = parent
		parent.Replies = []*Comment{}
	}

	replies, err := s.repo.ListReplies(ctx, parentIDs)
	if err != nil {
		return fmt.Errorf("failed to load replies: %w", err)
	}

	for _, reply := range replies {
		if reply.ParentID == nil {
			continue
		}
		if parent, ok := byID[*reply.ParentID]; ok {
			parent.Replies = append(parent.Replies, reply)
		}
	}

	return nil
}

func validateContent(content string) error {
	if len(content) < minContentLen {
		return NewValidationError("content", "comment must not be empty")
	}
	if len(content) > maxContentLen {
		return NewValidationError("content", fmt.Sprintf("comment cannot exceed %d characters", maxContentLen))
	}
	return nil
}

func validatePagination(page, limit int) (int, int, error) {
	if page < 1 {
		return 0, 0, NewValidationError("page", "page must be >= 1")
	}
	if limit < 1 {
		return 0, 0, NewValidationError("limit", "limit must be >= 1")
	}
	if limit > maxPageSize {
		return 0, 0, NewValidationError("limit", fmt.Sprintf("limit cannot exceed %d", maxPageSize))
	}
	return page, limit, nil
}
