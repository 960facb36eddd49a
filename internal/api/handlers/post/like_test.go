package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/core/posts"
)

// mockPostService implements posts.Service for handler tests
type mockPostService struct {
	createFunc func(ctx context.Context, authorID string, req posts.CreatePostRequest) (*posts.Post, error)
	getFunc    func(ctx context.Context, id string) (*posts.Post, error)
	listFunc   func(ctx context.Context, req posts.ListPostsRequest) (*posts.ListPostsResponse, error)
	updateFunc func(ctx context.Context, id, actorID string, req posts.UpdatePostRequest) (*posts.Post, error)
	deleteFunc func(ctx context.Context, id, actorID string) error
	likeFunc   func(ctx context.Context, id, userID string) (*posts.LikeResult, error)
	unlikeFunc func(ctx context.Context, id, userID string) (*posts.LikeResult, error)
}

func (m *mockPostService) Create(ctx context.Context, authorID string, req posts.CreatePostRequest) (*posts.Post, error) {
	return m.createFunc(ctx, authorID, req)
}

func (m *mockPostService) Get(ctx context.Context, id string) (*posts.Post, error) {
	return m.getFunc(ctx, id)
}

func (m *mockPostService) List(ctx context.Context, req posts.ListPostsRequest) (*posts.ListPostsResponse, error) {
	return m.listFunc(ctx, req)
}

func (m *mockPostService) Update(ctx context.Context, id, actorID string, req posts.UpdatePostRequest) (*posts.Post, error) {
	return m.updateFunc(ctx, id, actorID, req)
}

func (m *mockPostService) Delete(ctx context.Context, id, actorID string) error {
	return m.deleteFunc(ctx, id, actorID)
}

func (m *mockPostService) Like(ctx context.Context, id, userID string) (*posts.LikeResult, error) {
	return m.likeFunc(ctx, id, userID)
}

func (m *mockPostService) Unlike(ctx context.Context, id, userID string) (*posts.LikeResult, error) {
	return m.unlikeFunc(ctx, id, userID)
}

func likeRouter(service posts.Service) chi.Router {
	handler := NewLikeHandler(service)
	r := chi.NewRouter()
	r.Post("/posts/{id}/like", handler.HandleLike)
	r.Delete("/posts/{id}/like", handler.HandleUnlike)
	return r
}

func TestHandleLike(t *testing.T) {
	service := &mockPostService{
		likeFunc: func(ctx context.Context, id, userID string) (*posts.LikeResult, error) {
			assert.Equal(t, "p1", id)
			return &posts.LikeResult{LikesCount: 1, Liked: true}, nil
		},
	}

	rec := httptest.NewRecorder()
	likeRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/posts/p1/like", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Post liked successfully", body["message"])
	assert.Equal(t, float64(1), body["likesCount"])
	assert.Equal(t, true, body["liked"])
}

func TestHandleLikeMissingPost(t *testing.T) {
	service := &mockPostService{
		likeFunc: func(ctx context.Context, id, userID string) (*posts.LikeResult, error) {
			return nil, posts.ErrPostNotFound
		},
	}

	rec := httptest.NewRecorder()
	likeRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/posts/missing/like", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Post not found", body["message"])
}

func TestHandleUnlike(t *testing.T) {
	service := &mockPostService{
		unlikeFunc: func(ctx context.Context, id, userID string) (*posts.LikeResult, error) {
			return &posts.LikeResult{LikesCount: 0, Liked: false}, nil
		},
	}

	rec := httptest.NewRecorder()
	likeRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/posts/p1/like", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Post unliked successfully", body["message"])
	assert.Equal(t, float64(0), body["likesCount"])
	assert.Equal(t, false, body["liked"])
}
