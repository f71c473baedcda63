package ledger

import (
	"context"
	"lockin_backend/internal/model"
	"lockin_backend/internal/repository"
	"lockin_backend/internal/service"
)

type serv struct {
	accountRepo repository.AccountRepository
}

// NewLedgerService - баланс очков аккаунта.
// Сам транзакций не открывает: вызовы присоединяются к транзакции из контекста вызывающего
func NewLedgerService(accountRepo repository.AccountRepository) service.LedgerService {
	return &serv{
		accountRepo: accountRepo,
	}
}

// Debit - списание. При нехватке средств баланс не меняется, возвращается model.ErrInsufficientFunds
func (s *serv) Debit(ctx context.Context, accountID int64, amount int) (int, error) {
	if amount < 0 {
		return 0, model.ErrInvalidInput
	}
	return s.accountRepo.Debit(ctx, accountID, amount)
}

func (s *serv) Credit(ctx context.Context, accountID int64, amount int) (int, error) {
	if amount < 0 {
		return 0, model.ErrInvalidInput
	}
	return s.accountRepo.Credit(ctx, accountID, amount)
}

func (s *serv) Balance(ctx context.Context, accountID int64) (int, error) {
	return s.accountRepo.GetBalance(ctx, accountID)
}
