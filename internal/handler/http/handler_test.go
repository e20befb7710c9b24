package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/internal/service"
	"github.com/MKhiriev/api-blog/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockPostService implements service.PostService. Unset functions panic,
// which makes unexpected calls fail the test.
type mockPostService struct {
	listFn   func(ctx context.Context) ([]models.Post, error)
	getFn    func(ctx context.Context, id int64) (models.Post, error)
	createFn func(ctx context.Context, requester *models.Requester, input models.PostInput) (models.Post, error)
	updateFn func(ctx context.Context, id int64, requester *models.Requester, input models.PostInput) (models.Post, error)
	deleteFn func(ctx context.Context, id int64, requester *models.Requester) error

	// createAuth and updateAuth run before the body is read.
	createAuth func(requester *models.Requester) error
	updateAuth func(id int64, requester *models.Requester) error
}

func (m *mockPostService) List(ctx context.Context) ([]models.Post, error) {
	return m.listFn(ctx)
}

func (m *mockPostService) Get(ctx context.Context, id int64) (models.Post, error) {
	return m.getFn(ctx, id)
}

func (m *mockPostService) Create(ctx context.Context, requester *models.Requester, read models.PostInputReader) (models.Post, error) {
	if m.createAuth != nil {
		if err := m.createAuth(requester); err != nil {
			return models.Post{}, err
		}
	}
	input, err := read()
	if err != nil {
		return models.Post{}, err
	}
	return m.createFn(ctx, requester, input)
}

func (m *mockPostService) Update(ctx context.Context, id int64, requester *models.Requester, read models.PostInputReader) (models.Post, error) {
	if m.updateAuth != nil {
		if err := m.updateAuth(id, requester); err != nil {
			return models.Post{}, err
		}
	}
	input, err := read()
	if err != nil {
		return models.Post{}, err
	}
	return m.updateFn(ctx, id, requester, input)
}

func (m *mockPostService) Delete(ctx context.Context, id int64, requester *models.Requester) error {
	return m.deleteFn(ctx, id, requester)
}

// mockAuthService implements service.AuthService.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	verifyTokenFn  func(ctx context.Context, request models.VerifyTokenRequest) error
	authenticateFn func(ctx context.Context, tokenString string) (*models.Requester, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) VerifyToken(ctx context.Context, request models.VerifyTokenRequest) error {
	return m.verifyTokenFn(ctx, request)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (*models.Requester, error) {
	return m.authenticateFn(ctx, tokenString)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var (
	authorRequester = &models.Requester{UserID: 1, Username: "TestUser"}
	otherRequester  = &models.Requester{UserID: 2, Username: "TestUser_2"}
	staffRequester  = &models.Requester{UserID: 3, Username: "admin", IsStaff: true}
)

// tokenAuth resolves a fixed set of bearer tokens to requesters; any other
// token is rejected.
func tokenAuth() *mockAuthService {
	known := map[string]*models.Requester{
		"author-token": authorRequester,
		"other-token":  otherRequester,
		"staff-token":  staffRequester,
	}
	return &mockAuthService{
		authenticateFn: func(_ context.Context, token string) (*models.Requester, error) {
			if r, ok := known[token]; ok {
				return r, nil
			}
			return nil, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

func newTestHandler(posts service.PostService, auth service.AuthService) *Handler {
	if auth == nil {
		auth = tokenAuth()
	}
	return NewHandler(&service.Services{
		PostService:    posts,
		AuthService:    auth,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, logger.Nop())
}

func newTestRouter(posts service.PostService, auth service.AuthService) http.Handler {
	return newTestHandler(posts, auth).Init()
}

// doRequest sends a request through router. A non-empty token is sent as a
// bearer credential; body is sent as JSON.
func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.registry)
	assert.NotNil(t, h.metrics)
}

// TestNewHandler_IndependentRegistries verifies that two handlers can coexist
// without duplicate metric registration.
func TestNewHandler_IndependentRegistries(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1.registry, h2.registry)
}
