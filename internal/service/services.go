package service

import (
	"github.com/MKhiriev/api-blog/internal/config"
	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/internal/store"
	"github.com/MKhiriev/api-blog/internal/validators"
	"github.com/MKhiriev/api-blog/models"
)

type Services struct {
	PostService    PostService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		PostService:    NewPostService(storages.PostRepository, validators.NewPostValidator(), logger),
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
