package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpBlogAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogAdapter constructs the REST implementation of [BlogAPI].
// address may omit the scheme, in which case http is assumed. A non-positive
// timeout falls back to 15s.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPBlogAdapter(address string, timeout time.Duration, logger *logger.Logger) (BlogAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid blog api address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpBlogAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBlogAdapter) Register(ctx context.Context, credentials models.Credentials) (models.UserResponse, error) {
	var user models.UserResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&user).
		Post("/auth/users/")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpBlogAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var token models.AccessTokenResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&token).
		Post("/auth/jwt/create/")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if token.Access == "" {
		return "", fmt.Errorf("login response carries no access token")
	}

	h.SetToken(token.Access)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")
	return token.Access, nil
}

func (h *httpBlogAdapter) VerifyToken(ctx context.Context, token string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.VerifyTokenRequest{Token: token}).
		Post("/auth/jwt/verify/")
	if err != nil {
		return fmt.Errorf("verify token request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBlogAdapter) Me(ctx context.Context) (models.UserResponse, error) {
	var user models.UserResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/auth/users/me/")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpBlogAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	resp, err := h.authedRequest(ctx).
		SetResult(&posts).
		Get("/posts/")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpBlogAdapter) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post
	resp, err := h.authedRequest(ctx).
		SetResult(&post).
		Get(postPath(id))
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpBlogAdapter) CreatePost(ctx context.Context, req models.PostRequest) (models.Post, error) {
	var post models.Post
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&post).
		Post("/posts/")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpBlogAdapter) UpdatePost(ctx context.Context, id int64, req models.PostRequest) (models.Post, error) {
	var post models.Post
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&post).
		Patch(postPath(id))
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpBlogAdapter) DeletePost(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(postPath(id))
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBlogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func postPath(id int64) string {
	return "/posts/" + strconv.FormatInt(id, 10) + "/"
}
