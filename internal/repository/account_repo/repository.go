package account_repo

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
	table              = "accounts"
	colID              = "id"
	colUsername        = "username"
	colEmail           = "email"
	colPasswordHash    = "password_hash"
	colBalance         = "balance"
	colStudyMinutes    = "total_study_minutes"
	colCurrentStreak   = "current_streak"
	colLastStudyDate   = "last_study_date"
	colCreatedAt       = "created_at"
	leaderboardOrderBy = colStudyMinutes + " DESC, " + colID + " ASC"
)

var accountColumns = []string{
	colID, colUsername, colEmail, colPasswordHash, colBalance,
	colStudyMinutes, colCurrentStreak, colLastStudyDate, colCreatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAccountRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.AccountRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// conn возвращает текущую транзакцию из контекста или пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateAccount - создает аккаунт и возвращает его ID.
// Занятый логин или почта -> model.ErrAlreadyExists
func (r *repo) CreateAccount(ctx context.Context, account *model.Account) (int64, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUsername, colEmail, colPasswordHash, colBalance).
		Values(account.Username, account.Email, account.PasswordHash, account.Balance).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return 0, model.ErrAlreadyExists
		}
		return 0, fmt.Errorf("create account: %w", err)
	}

	return id, nil
}

func (r *repo) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	return r.getOne(ctx, sq.Select(accountColumns...).From(table).Where(sq.Eq{colID: id}))
}

// GetAccountForUpdate - то же, что GetAccount, но блокирует строку до конца транзакции.
// Так сериализуются операции над одним аккаунтом
func (r *repo) GetAccountForUpdate(ctx context.Context, id int64) (*model.Account, error) {
	return r.getOne(ctx, sq.Select(accountColumns...).From(table).Where(sq.Eq{colID: id}).Suffix("FOR UPDATE"))
}

func (r *repo) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	return r.getOne(ctx, sq.Select(accountColumns...).From(table).Where(sq.Eq{colUsername: username}))
}

func (r *repo) getOne(ctx context.Context, query sq.SelectBuilder) (*model.Account, error) {
	sqlStr, args, err := query.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	var a model.Account
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Balance,
		&a.TotalStudyMinutes, &a.CurrentStreak, &a.LastStudyDate, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	return &a, nil
}

// GetBalance - получение баланса по ID аккаунта
func (r *repo) GetBalance(ctx context.Context, id int64) (int, error) {
	// Формируем запрос
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrNotFound
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// Debit - списание одним условным UPDATE, который заодно берёт блокировку строки.
// Если строка не обновилась, различаем отсутствие аккаунта и нехватку средств
func (r *repo) Debit(ctx context.Context, id int64, amount int) (int, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" - ?", amount)).
		Where(sq.Eq{colID: id}).
		Where(sq.GtOrEq{colBalance: amount}).
		Suffix("RETURNING " + colBalance).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("debit: %w", err)
	}

	// Строка не обновилась: проверяем, есть ли аккаунт вообще
	if _, err := r.GetBalance(ctx, id); err != nil {
		return 0, err
	}
	return 0, model.ErrInsufficientFunds
}

// Credit - начисление, возвращает новый баланс
func (r *repo) Credit(ctx context.Context, id int64, amount int) (int, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", amount)).
		Where(sq.Eq{colID: id}).
		Suffix("RETURNING " + colBalance).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrNotFound
		}
		return 0, fmt.Errorf("credit: %w", err)
	}

	return balance, nil
}

// UpdateStudyProgress - прибавляет минуты и сохраняет посчитанный стрик
func (r *repo) UpdateStudyProgress(ctx context.Context, id int64, addMinutes, streak int, lastStudyDate time.Time) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colStudyMinutes, sq.Expr(colStudyMinutes+" + ?", addMinutes)).
		Set(colCurrentStreak, streak).
		Set(colLastStudyDate, lastStudyDate).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.execOne(ctx, query, "update study progress")
}

// ResetProgress - возвращает аккаунт к начальному состоянию
func (r *repo) ResetProgress(ctx context.Context, id int64, balance int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, balance).
		Set(colStudyMinutes, 0).
		Set(colCurrentStreak, 0).
		Set(colLastStudyDate, nil).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.execOne(ctx, query, "reset progress")
}

func (r *repo) DeleteAccount(ctx context.Context, id int64) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.execOne(ctx, query, "delete account")
}

// execOne выполняет запрос, который обязан затронуть ровно одну строку
func (r *repo) execOne(ctx context.Context, query sq.Sqlizer, op string) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// TopByStudyMinutes - первые limit аккаунтов по минутам учёбы, при равенстве выше тот, кто раньше зарегистрирован
func (r *repo) TopByStudyMinutes(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	// Формируем запрос
	query := sq.Select(colID, colUsername, colStudyMinutes).
		From(table).
		OrderBy(leaderboardOrderBy).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]model.LeaderboardEntry, 0, limit)
	for rows.Next() {
		e := model.LeaderboardEntry{Rank: len(entries) + 1}
		if err := rows.Scan(&e.AccountID, &e.Username, &e.TotalStudyMinutes); err != nil {
			return nil, fmt.Errorf("leaderboard scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard rows: %w", err)
	}

	return entries, nil
}

// RankByStudyMinutes - место аккаунта в том же порядке, что и TopByStudyMinutes
func (r *repo) RankByStudyMinutes(ctx context.Context, id int64) (int, int, error) {
	query := rankQuery(id)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, 0, err
	}

	var rank, minutes int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&rank, &minutes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, model.ErrNotFound
		}
		return 0, 0, fmt.Errorf("leaderboard rank: %w", err)
	}

	return rank, minutes, nil
}

func rankQuery(id int64) sq.SelectBuilder {
	// Впереди те, у кого больше минут, либо столько же минут и меньший ID
	ahead := "(SELECT COUNT(*) FROM " + table + " o WHERE o." + colStudyMinutes + " > a." + colStudyMinutes +
		" OR (o." + colStudyMinutes + " = a." + colStudyMinutes + " AND o." + colID + " < a." + colID + ")) + 1"

	return sq.Select(ahead, "a."+colStudyMinutes).
		From(table + " a").
		Where(sq.Eq{"a." + colID: id}).
		PlaceholderFormat(sq.Dollar)
}
