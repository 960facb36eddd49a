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

func listRouter(service posts.Service) chi.Router {
	handler := NewListHandler(service)
	r := chi.NewRouter()
	r.Get("/posts", handler.HandleList)
	r.Get("/posts/user/{userId}", handler.HandleListByUser)
	return r
}

func TestHandleListDefaults(t *testing.T) {
	var captured posts.ListPostsRequest
	service := &mockPostService{
		listFunc: func(ctx context.Context, req posts.ListPostsRequest) (*posts.ListPostsResponse, error) {
			captured = req
			return &posts.ListPostsResponse{Posts: []*posts.Post{}, Page: req.Page, TotalPages: 0}, nil
		},
	}

	rec := httptest.NewRecorder()
	listRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, DefaultPageSize, captured.Limit)
	assert.Empty(t, captured.Tag)
}

func TestHandleListEnvelope(t *testing.T) {
	service := &mockPostService{
		listFunc: func(ctx context.Context, req posts.ListPostsRequest) (*posts.ListPostsResponse, error) {
			assert.Equal(t, "go", req.Tag)
			assert.Equal(t, 2, req.Page)
			assert.Equal(t, 5, req.Limit)
			return &posts.ListPostsResponse{
				Posts:      []*posts.Post{{ID: "p1", Title: "Hello World"}},
				TotalPosts: 11,
				TotalPages: 3,
				Page:       2,
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	listRouter(service).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/posts?tag=go&page=2&limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(11), body["totalPosts"])
	assert.Equal(t, float64(3), body["totalPages"])
	assert.Equal(t, float64(2), body["currentPage"])
	assert.Len(t, body["posts"], 1)
}

func TestHandleListByUser(t *testing.T) {
	service := &mockPostService{
		listFunc: func(ctx context.Context, req posts.ListPostsRequest) (*posts.ListPostsResponse, error) {
			assert.Equal(t, "u42", req.AuthorID)
			return &posts.ListPostsResponse{Posts: []*posts.Post{}, Page: 1}, nil
		},
	}

	rec := httptest.NewRecorder()
	listRouter(service).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/posts/user/u42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleListValidationError(t *testing.T) {
	service := &mockPostService{
		listFunc: func(ctx context.Context, req posts.ListPostsRequest) (*posts.ListPostsResponse, error) {
			return nil, posts.NewValidationError("page", "page must be >= 1")
		},
	}

	rec := httptest.NewRecorder()
	listRouter(service).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/posts?page=-1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "page must be >= 1", body["message"])
}
