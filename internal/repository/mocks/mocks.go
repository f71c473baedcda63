// Package mocks - testify моки репозиториев и фейковый менеджер транзакций для тестов сервисов
package mocks

import (
	"context"
	"lockin_backend/internal/model"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/mock"
)

// TxManager выполняет функцию сразу, без БД. Ошибка функции возвращается как есть
type TxManager struct {
	Calls int
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) CreateAccount(ctx context.Context, account *model.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AccountRepository) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *AccountRepository) GetAccountForUpdate(ctx context.Context, id int64) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *AccountRepository) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *AccountRepository) GetBalance(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *AccountRepository) Debit(ctx context.Context, id int64, amount int) (int, error) {
	args := m.Called(ctx, id, amount)
	return args.Int(0), args.Error(1)
}

func (m *AccountRepository) Credit(ctx context.Context, id int64, amount int) (int, error) {
	args := m.Called(ctx, id, amount)
	return args.Int(0), args.Error(1)
}

func (m *AccountRepository) UpdateStudyProgress(ctx context.Context, id int64, addMinutes, streak int, lastStudyDate time.Time) error {
	args := m.Called(ctx, id, addMinutes, streak, lastStudyDate)
	return args.Error(0)
}

func (m *AccountRepository) ResetProgress(ctx context.Context, id int64, balance int) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

func (m *AccountRepository) DeleteAccount(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AccountRepository) TopByStudyMinutes(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaderboardEntry), args.Error(1)
}

func (m *AccountRepository) RankByStudyMinutes(ctx context.Context, id int64) (int, int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Int(1), args.Error(2)
}

type StudyRepository struct {
	mock.Mock
}

func (m *StudyRepository) CreateSession(ctx context.Context, session *model.StudySession) (int64, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StudyRepository) CloseSession(ctx context.Context, accountID, sessionID int64, endedAt time.Time) error {
	args := m.Called(ctx, accountID, sessionID, endedAt)
	return args.Error(0)
}

func (m *StudyRepository) ListSessions(ctx context.Context, accountID int64, from, to time.Time) ([]model.StudySession, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudySession), args.Error(1)
}

func (m *StudyRepository) CountSessions(ctx context.Context, accountID int64) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

func (m *StudyRepository) DeleteSessions(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

type SpinRepository struct {
	mock.Mock
}

func (m *SpinRepository) CreateSpin(ctx context.Context, spin *model.SpinRecord) (int64, error) {
	args := m.Called(ctx, spin)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SpinRepository) Totals(ctx context.Context, accountID int64) (model.SpinTotals, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(model.SpinTotals), args.Error(1)
}

func (m *SpinRepository) CountSince(ctx context.Context, accountID int64, since time.Time) (int, error) {
	args := m.Called(ctx, accountID, since)
	return args.Int(0), args.Error(1)
}

func (m *SpinRepository) DeleteSpins(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

type AuthRepository struct {
	mock.Mock
}

func (m *AuthRepository) CreateSession(ctx context.Context, session *model.AuthSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *AuthRepository) GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *AuthRepository) GetAccountBySessionID(ctx context.Context, sessionID string) (*model.Account, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *AuthRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *AuthRepository) DeleteAccountSessions(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *AuthRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
