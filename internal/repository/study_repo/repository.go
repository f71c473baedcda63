package study_repo

import (
	"context"
	"fmt"
	"lockin_backend/internal/model"
	"lockin_backend/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "study_sessions"
	colID        = "id"
	colAccountID = "account_id"
	colDuration  = "duration_minutes"
	colStartedAt = "started_at"
	colEndedAt   = "ended_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewStudyRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.StudyRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateSession - добавляет учебную сессию, возвращает её ID
func (r *repo) CreateSession(ctx context.Context, session *model.StudySession) (int64, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colAccountID, colDuration, colStartedAt, colEndedAt).
		Values(session.AccountID, session.DurationMinutes, session.StartedAt, session.EndedAt).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("create study session: %w", err)
	}

	return id, nil
}

// CloseSession - проставляет ended_at, только если сессия ещё открыта и принадлежит аккаунту
func (r *repo) CloseSession(ctx context.Context, accountID, sessionID int64, endedAt time.Time) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colEndedAt, endedAt).
		Where(sq.Eq{colID: sessionID, colAccountID: accountID, colEndedAt: nil}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("close study session: %w", err)
	}
	if res.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// ListSessions - сессии аккаунта с started_at в полуинтервале [from, to)
func (r *repo) ListSessions(ctx context.Context, accountID int64, from, to time.Time) ([]model.StudySession, error) {
	// Формируем запрос
	query := sq.Select(colID, colAccountID, colDuration, colStartedAt, colEndedAt).
		From(table).
		Where(sq.Eq{colAccountID: accountID}).
		Where(sq.GtOrEq{colStartedAt: from}).
		Where(sq.Lt{colStartedAt: to}).
		OrderBy(colStartedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.StudySession
	for rows.Next() {
		var s model.StudySession
		if err := rows.Scan(&s.ID, &s.AccountID, &s.DurationMinutes, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, fmt.Errorf("scan study session: %w", err)
		}
		s.StartedAt = s.StartedAt.UTC()
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}

	return sessions, nil
}

func (r *repo) CountSessions(ctx context.Context, accountID int64) (int, error) {
	// Формируем запрос
	query := sq.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{colAccountID: accountID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count study sessions: %w", err)
	}

	return count, nil
}

func (r *repo) DeleteSessions(ctx context.Context, accountID int64) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colAccountID: accountID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn(ctx).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("delete study sessions: %w", err)
	}

	return nil
}
