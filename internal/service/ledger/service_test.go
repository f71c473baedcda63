package ledger

import (
	"context"
	"lockin_backend/internal/model"
	"lockin_backend/internal/repository/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebit(t *testing.T) {
	ctx := context.Background()

	t.Run("списание в пределах баланса", func(t *testing.T) {
		repo := new(mocks.AccountRepository)
		repo.On("Debit", ctx, int64(1), 50).Return(950, nil).Once()

		balance, err := NewLedgerService(repo).Debit(ctx, 1, 50)
		require.NoError(t, err)
		assert.Equal(t, 950, balance)
		repo.AssertExpectations(t)
	})

	t.Run("нехватка средств", func(t *testing.T) {
		repo := new(mocks.AccountRepository)
		repo.On("Debit", ctx, int64(1), 5000).Return(0, model.ErrInsufficientFunds).Once()

		_, err := NewLedgerService(repo).Debit(ctx, 1, 5000)
		assert.ErrorIs(t, err, model.ErrInsufficientFunds)
		repo.AssertExpectations(t)
	})

	t.Run("отрицательная сумма не доходит до хранилища", func(t *testing.T) {
		repo := new(mocks.AccountRepository)

		_, err := NewLedgerService(repo).Debit(ctx, 1, -1)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		repo.AssertNotCalled(t, "Debit")
	})
}

func TestCredit(t *testing.T) {
	ctx := context.Background()

	t.Run("начисление", func(t *testing.T) {
		repo := new(mocks.AccountRepository)
		repo.On("Credit", ctx, int64(2), 125).Return(1125, nil).Once()

		balance, err := NewLedgerService(repo).Credit(ctx, 2, 125)
		require.NoError(t, err)
		assert.Equal(t, 1125, balance)
	})

	t.Run("нулевое начисление возвращает текущий баланс", func(t *testing.T) {
		repo := new(mocks.AccountRepository)
		repo.On("Credit", ctx, int64(2), 0).Return(1000, nil).Once()

		balance, err := NewLedgerService(repo).Credit(ctx, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, 1000, balance)
	})

	t.Run("отрицательная сумма", func(t *testing.T) {
		repo := new(mocks.AccountRepository)

		_, err := NewLedgerService(repo).Credit(ctx, 2, -10)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestBalance_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.AccountRepository)
	repo.On("GetBalance", ctx, int64(9)).Return(0, model.ErrNotFound).Once()

	_, err := NewLedgerService(repo).Balance(ctx, 9)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
