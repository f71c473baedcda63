package service

import (
	"context"
	"lockin_backend/internal/model"
)

type LedgerService interface {
	Debit(ctx context.Context, accountID int64, amount int) (balance int, err error)
	Credit(ctx context.Context, accountID int64, amount int) (balance int, err error)
	Balance(ctx context.Context, accountID int64) (int, error)
}

type StudyService interface {
	RecordSession(ctx context.Context, accountID int64, req model.RecordSession) (sessionID int64, err error)
	CloseSession(ctx context.Context, accountID, sessionID int64) error
}

type CasinoService interface {
	Spin(ctx context.Context, accountID int64, req model.Spin) (*model.SpinResult, error)
	Stats(ctx context.Context, accountID int64) (*model.CasinoStats, error)
}

type AggregationService interface {
	DashboardStats(ctx context.Context, accountID int64) (*model.DashboardStats, error)
	Leaderboard(ctx context.Context, accountID int64) (*model.Leaderboard, error)
	Progress(ctx context.Context, accountID int64) (*model.Progress, error)
}

type AccountService interface {
	ResetProgress(ctx context.Context, accountID int64) error
	DeleteAccount(ctx context.Context, accountID int64) error
}

type AuthService interface {
	Register(ctx context.Context, account *model.Account, password string) (*model.AuthData, error)
	Login(ctx context.Context, username, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
