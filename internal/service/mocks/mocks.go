// Package mocks - testify моки сервисов для тестов хендлеров
package mocks

import (
	"context"
	"lockin_backend/internal/model"

	"github.com/stretchr/testify/mock"
)

type CasinoService struct {
	mock.Mock
}

func (m *CasinoService) Spin(ctx context.Context, accountID int64, req model.Spin) (*model.SpinResult, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SpinResult), args.Error(1)
}

func (m *CasinoService) Stats(ctx context.Context, accountID int64) (*model.CasinoStats, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CasinoStats), args.Error(1)
}

type StudyService struct {
	mock.Mock
}

func (m *StudyService) RecordSession(ctx context.Context, accountID int64, req model.RecordSession) (int64, error) {
	args := m.Called(ctx, accountID, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StudyService) CloseSession(ctx context.Context, accountID, sessionID int64) error {
	args := m.Called(ctx, accountID, sessionID)
	return args.Error(0)
}

type AggregationService struct {
	mock.Mock
}

func (m *AggregationService) DashboardStats(ctx context.Context, accountID int64) (*model.DashboardStats, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func (m *AggregationService) Leaderboard(ctx context.Context, accountID int64) (*model.Leaderboard, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Leaderboard), args.Error(1)
}

func (m *AggregationService) Progress(ctx context.Context, accountID int64) (*model.Progress, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Progress), args.Error(1)
}

type AccountService struct {
	mock.Mock
}

func (m *AccountService) ResetProgress(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *AccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, account *model.Account, password string) (*model.AuthData, error) {
	args := m.Called(ctx, account, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthData), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, username, password string) (*model.AuthData, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthData), args.Error(1)
}

func (m *AuthService) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
