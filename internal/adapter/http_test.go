// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/models"
)

// newTestAdapter создаёт httpBlogAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpBlogAdapter {
	t.Helper()

	a, err := NewHTTPBlogAdapter(serverURL, time.Second, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBlogAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func ptr[T any](v T) *T { return &v }

// ── Auth ────────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/users/", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Username)

		writeJSON(t, w, http.StatusCreated, models.UserResponse{ID: 7, Username: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Empty(t, a.Token())
}

func TestRegister_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			Detail: "Invalid input.",
			Errors: map[string][]string{"username": {"A user with that username already exists."}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid input.", apiErr.Detail)
	assert.Equal(t, []string{"A user with that username already exists."}, apiErr.Errors["username"])
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/jwt/create/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.AccessTokenResponse{Access: "header.payload.sig"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "header.payload.sig", token)
	assert.Equal(t, "header.payload.sig", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "No active account found with the given credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "No active account")
	assert.Empty(t, a.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

func TestVerifyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.VerifyTokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Token == "good" {
			writeJSON(t, w, http.StatusOK, map[string]string{})
			return
		}
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Token is invalid or expired"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.VerifyToken(context.Background(), "good"))
	assert.ErrorIs(t, a.VerifyToken(context.Background(), "bad"), ErrUnauthorized)
}

func TestMe_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/users/me/", r.URL.Path)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.UserResponse{ID: 1, Username: "admin", IsStaff: ptr(true)})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  abc ")

	got, err := a.Me(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got.IsStaff)
	assert.True(t, *got.IsStaff)
}

// ── Posts ───────────────────────────────────────────────────────────────────

func TestListPosts_Anonymous(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/posts/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.Post{
			{ID: 1, Author: "alice", Title: "first", Text: "a", CreatedAt: created},
			{ID: 2, Author: "bob", Title: "second", Text: "b", CreatedAt: created, Published: true},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	posts, err := a.ListPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "alice", posts[0].Author)
	assert.True(t, posts[1].Published)
	assert.True(t, created.Equal(posts[0].CreatedAt))
}

func TestGetPost_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/42/", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Detail: "Not found."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetPost(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePost_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"title": "Hello", "text": "World"}, body)

		writeJSON(t, w, http.StatusCreated, models.Post{ID: 3, Author: "alice", Title: "Hello", Text: "World"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	post, err := a.CreatePost(context.Background(), models.PostRequest{Title: ptr("Hello"), Text: ptr("World")})
	require.NoError(t, err)
	assert.Equal(t, int64(3), post.ID)
	assert.Equal(t, "alice", post.Author)
}

func TestUpdatePost_SendsOnlyProvidedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/posts/5/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"published": false}, body)

		writeJSON(t, w, http.StatusOK, models.Post{ID: 5, Title: "kept"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	post, err := a.UpdatePost(context.Background(), 5, models.PostRequest{Published: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "kept", post.Title)
}

func TestUpdatePost_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Detail: "You do not have permission to perform this action."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	_, err := a.UpdatePost(context.Background(), 5, models.PostRequest{Text: ptr("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeletePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/posts/9/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	assert.NoError(t, a.DeletePost(context.Background(), 9))
}

func TestMapHTTPError_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeletePost(context.Background(), 1)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Detail)
	assert.Nil(t, apiErr.Unwrap())
}

func TestNewHTTPBlogAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPBlogAdapter("  ", time.Second, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
