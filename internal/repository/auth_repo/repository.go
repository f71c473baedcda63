package auth_repo

import (
	"context"
	"errors"
	"fmt"
	"lockin_backend/internal/model"
	"lockin_backend/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "auth_sessions"
	colSessionID   = "session_id"
	colAccountID   = "account_id"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAuthRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.AuthRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateSession - создает сессию в БД
// Принимает model.AuthSession - (ID, AccountID, хэш RefreshToken, ExpiresAt)
func (r *repo) CreateSession(ctx context.Context, session *model.AuthSession) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colSessionID, colAccountID, colRefreshHash, colExpiredTime).
		Values(session.ID, session.AccountID, session.RefreshToken, session.ExpiresAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.conn(ctx).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("create auth session: %w", err)
	}

	return nil
}

// GetRefreshTokenBySessionID - хэш refresh токена по session ID.
// Просроченная сессия считается отсутствующей
func (r *repo) GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (string, error) {
	// Формируем запрос
	query := sq.Select(colRefreshHash).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		Where(sq.Gt{colExpiredTime: time.Now().UTC()}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	var refreshHash string
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&refreshHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("get refresh token: %w", err)
	}

	return refreshHash, nil
}

// GetAccountBySessionID - аккаунт владельца сессии
func (r *repo) GetAccountBySessionID(ctx context.Context, sessionID string) (*model.Account, error) {
	// Формируем запрос
	query := sq.Select("a.id", "a.username", "a.email", "a.balance").
		From(table + " s").
		Join("accounts a ON s." + colAccountID + " = a.id").
		Where(sq.Eq{"s." + colSessionID: sessionID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var account model.Account
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&account.ID, &account.Username, &account.Email, &account.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("get account by session: %w", err)
	}

	return &account, nil
}

// DeleteSession - удаляет сессию из БД.
// Принимает sessionID которую надо удалить
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colSessionID: sessionID}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// DeleteAccountSessions - завершает все сессии аккаунта
func (r *repo) DeleteAccountSessions(ctx context.Context, accountID int64) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colAccountID: accountID}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// DeleteExpired - чистит просроченные сессии, возвращает сколько удалено
func (r *repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.LtOrEq{colExpiredTime: now}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *repo) exec(ctx context.Context, query sq.Sqlizer) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.conn(ctx).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("delete auth session: %w", err)
	}

	return nil
}
