package service

import (
	"github.com/reut-b/profile-site/internal/logger"
	"github.com/reut-b/profile-site/internal/store"
)

// Services aggregates all business-logic services for injection into the
// HTTP layer.
type Services struct {
	Auth AuthService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		Auth: NewAuthService(storages.UserRepository, storages.Pictures, logger),
	}
}
