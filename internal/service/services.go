package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Services groups everything the shell calls.
type Services struct {
	AuthService    AuthService
	TaskService    TaskService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. cfg selects plain or bcrypt
// password storage.
func NewServices(storages *store.Storages, cfg config.AppAuth, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	var hasher crypto.PasswordHasher
	if cfg.PasswordHashing == config.PasswordHashingBcrypt {
		hasher = crypto.NewBcryptHasher(0)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, logger),
		TaskService:    NewTaskService(storages.TaskRepository, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
