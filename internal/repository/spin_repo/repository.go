package spin_repo

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
	table        = "spin_records"
	colID        = "id"
	colAccountID = "account_id"
	colBet       = "bet_amount"
	colSlot1     = "slot_1"
	colSlot2     = "slot_2"
	colSlot3     = "slot_3"
	colWin       = "win_amount"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.SpinRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateSpin - сохраняет раунд. Записи только добавляются, UPDATE для них нет
func (r *repo) CreateSpin(ctx context.Context, spin *model.SpinRecord) (int64, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colAccountID, colBet, colSlot1, colSlot2, colSlot3, colWin, colCreatedAt).
		Values(spin.AccountID, spin.BetAmount, spin.Slots[0], spin.Slots[1], spin.Slots[2], spin.WinAmount, spin.CreatedAt).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("create spin record: %w", err)
	}

	return id, nil
}

// Totals - количество спинов, выигрышных спинов и сумма выигрышей
func (r *repo) Totals(ctx context.Context, accountID int64) (model.SpinTotals, error) {
	// Формируем запрос
	query := sq.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE "+colWin+" > 0)",
		"COALESCE(SUM("+colWin+"), 0)",
	).
		From(table).
		Where(sq.Eq{colAccountID: accountID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.SpinTotals{}, err
	}

	var t model.SpinTotals
	if err := r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&t.Count, &t.Wins, &t.Winnings); err != nil {
		return model.SpinTotals{}, fmt.Errorf("spin totals: %w", err)
	}

	return t, nil
}

// CountSince - количество спинов начиная с since
func (r *repo) CountSince(ctx context.Context, accountID int64, since time.Time) (int, error) {
	// Формируем запрос
	query := sq.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{colAccountID: accountID}).
		Where(sq.GtOrEq{colCreatedAt: since}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count spins: %w", err)
	}

	return count, nil
}

func (r *repo) DeleteSpins(ctx context.Context, accountID int64) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colAccountID: accountID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn(ctx).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("delete spin records: %w", err)
	}

	return nil
}
