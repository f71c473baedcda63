package repository

import (
	"context"
	"errors"
	"lockin_backend/internal/model"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) (id int64, err error)
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	GetAccountForUpdate(ctx context.Context, id int64) (*model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)

	GetBalance(ctx context.Context, id int64) (int, error)
	Debit(ctx context.Context, id int64, amount int) (balance int, err error)
	Credit(ctx context.Context, id int64, amount int) (balance int, err error)

	UpdateStudyProgress(ctx context.Context, id int64, addMinutes, streak int, lastStudyDate time.Time) error
	ResetProgress(ctx context.Context, id int64, balance int) error
	DeleteAccount(ctx context.Context, id int64) error

	TopByStudyMinutes(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
	RankByStudyMinutes(ctx context.Context, id int64) (rank int, minutes int, err error)
}

type StudyRepository interface {
	CreateSession(ctx context.Context, session *model.StudySession) (id int64, err error)
	CloseSession(ctx context.Context, accountID, sessionID int64, endedAt time.Time) error
	ListSessions(ctx context.Context, accountID int64, from, to time.Time) ([]model.StudySession, error)
	CountSessions(ctx context.Context, accountID int64) (int, error)
	DeleteSessions(ctx context.Context, accountID int64) error
}

type SpinRepository interface {
	CreateSpin(ctx context.Context, spin *model.SpinRecord) (id int64, err error)
	Totals(ctx context.Context, accountID int64) (model.SpinTotals, error)
	CountSince(ctx context.Context, accountID int64, since time.Time) (int, error)
	DeleteSpins(ctx context.Context, accountID int64) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.AuthSession) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	GetAccountBySessionID(ctx context.Context, sessionID string) (*model.Account, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteAccountSessions(ctx context.Context, accountID int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

const uniqueViolationCode = "23505"

// IsUniqueViolation - нарушение уникального индекса (логин или почта заняты)
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
