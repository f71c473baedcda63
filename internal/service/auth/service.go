package auth

import (
	"lockin_backend/internal/config"
	"lockin_backend/internal/repository"
	"lockin_backend/internal/service"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager       trm.Manager
	accountRepo     repository.AccountRepository
	authRepo        repository.AuthRepository
	jwtConfig       config.JWTConfig
	startingBalance int
	now             func() time.Time
}

func NewAuthService(
	txManager trm.Manager,
	accountRepo repository.AccountRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	startingBalance int,
) service.AuthService {
	return &serv{
		txManager:       txManager,
		accountRepo:     accountRepo,
		authRepo:        authRepo,
		jwtConfig:       jwtConfig,
		startingBalance: startingBalance,
		now:             time.Now,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
