package service

import (
	"context"

	"github.com/MKhiriev/api-blog/models"
)

// PostService implements the post operations. A nil requester is anonymous.
//
// Detail operations resolve the post first, then authorize, then validate,
// so callers observe not-found before authentication or permission errors
// and those before validation errors.
type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id int64) (models.Post, error)
	Create(ctx context.Context, requester *models.Requester, read models.PostInputReader) (models.Post, error)
	Update(ctx context.Context, id int64, requester *models.Requester, read models.PostInputReader) (models.Post, error)
	Delete(ctx context.Context, id int64, requester *models.Requester) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	VerifyToken(ctx context.Context, request models.VerifyTokenRequest) error
	// Authenticate resolves a bearer token to the current state of its user.
	Authenticate(ctx context.Context, tokenString string) (*models.Requester, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
