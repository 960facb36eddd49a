package posts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	minTitleLen   = 3
	maxTitleLen   = 100
	minContentLen = 10

	// MaxPageSize bounds a single listing page
	MaxPageSize = 100
)

type postService struct {
	repo Repository
}

// NewPostService creates a post service backed by the given repository
func NewPostService(repo Repository) Service {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, authorID string, req CreatePostRequest) (*Post, error) {
	title := strings.TrimSpace(req.Title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &Post{
		ID:         uuid.New().String(),
		Title:      title,
		Content:    req.Content,
		Tags:       NormalizeTags(req.Tags),
		CoverImage: strings.TrimSpace(req.CoverImage),
		AuthorID:   authorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return s.repo.GetByID(ctx, post.ID)
}

func (s *postService) Get(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) List(ctx context.Context, req ListPostsRequest) (*ListPostsResponse, error) {
	page, limit, err := validatePagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	items, total, err := s.repo.List(ctx, strings.ToLower(strings.TrimSpace(req.Tag)), req.AuthorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if items == nil {
		items = []*Post{}
	}

	return &ListPostsResponse{
		Posts:      items,
		TotalPosts: total,
		TotalPages: totalPages(total, limit),
		Page:       page,
	}, nil
}

func (s *postService) Update(ctx context.Context, id, actorID string, req UpdatePostRequest) (*Post, error) {
	// Existence before ownership: an absent post must read as not found,
	// never as forbidden.
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actorID {
		return nil, ErrNotAuthor
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
		post.Title = title
	}
	if req.Content != nil {
		if err := validateContent(*req.Content); err != nil {
			return nil, err
		}
		post.Content = *req.Content
	}
	if req.Tags != nil {
		post.Tags = NormalizeTags(*req.Tags)
	}
	if req.CoverImage != nil {
		post.CoverImage = strings.TrimSpace(*req.CoverImage)
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

func (s *postService) Delete(ctx context.Context, id, actorID string) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return ErrNotAuthor
	}

	return s.repo.Delete(ctx, id)
}

func (s *postService) Like(ctx context.Context, id, userID string) (*LikeResult, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	// AddLike is atomic at the persistence layer: membership and counter
	// change together or not at all, so a duplicate like is a pure no-op.
	count, _, err := s.repo.AddLike(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	return &LikeResult{LikesCount: count, Liked: true}, nil
}

func (s *postService) Unlike(ctx context.Context, id, userID string) (*LikeResult, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	count, _, err := s.repo.RemoveLike(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to unlike post: %w", err)
	}

	return &LikeResult{LikesCount: count, Liked: false}, nil
}

// NormalizeTags lowercases and trims tags, dropping empties while
// preserving order
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			normalized = append(normalized, tag)
		}
	}
	return normalized
}

func validateTitle(title string) error {
	if len(title) < minTitleLen {
		return NewValidationError("title", fmt.Sprintf("title must be at least %d characters", minTitleLen))
	}
	if len(title) > maxTitleLen {
		return NewValidationError("title", fmt.Sprintf("title cannot exceed %d characters", maxTitleLen))
	}
	return nil
}

func validateContent(content string) error {
	if len(content) < minContentLen {
		return NewValidationError("content", fmt.Sprintf("content must be at least %d characters", minContentLen))
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
	if limit > MaxPageSize {
		return 0, 0, NewValidationError("limit", fmt.Sprintf("limit cannot exceed %d", MaxPageSize))
	}
	return page, limit, nil
}

func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}
