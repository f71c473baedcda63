package account

import (
	"context"
	"lockin_backend/internal/repository"
	"lockin_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager       trm.Manager
	accountRepo     repository.AccountRepository
	studyRepo       repository.StudyRepository
	spinRepo        repository.SpinRepository
	authRepo        repository.AuthRepository
	startingBalance int
}

func NewAccountService(
	txManager trm.Manager,
	accountRepo repository.AccountRepository,
	studyRepo repository.StudyRepository,
	spinRepo repository.SpinRepository,
	authRepo repository.AuthRepository,
	startingBalance int,
) service.AccountService {
	return &serv{
		txManager:       txManager,
		accountRepo:     accountRepo,
		studyRepo:       studyRepo,
		spinRepo:        spinRepo,
		authRepo:        authRepo,
		startingBalance: startingBalance,
	}
}

// ResetProgress - удаляет сессии и спины, возвращает баланс, минуты и стрик к начальным значениям
func (s *serv) ResetProgress(ctx context.Context, accountID int64) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.accountRepo.GetAccountForUpdate(txCtx, accountID); err != nil {
			return err
		}
		if err := s.spinRepo.DeleteSpins(txCtx, accountID); err != nil {
			return err
		}
		if err := s.studyRepo.DeleteSessions(txCtx, accountID); err != nil {
			return err
		}
		return s.accountRepo.ResetProgress(txCtx, accountID, s.startingBalance)
	})
}

// DeleteAccount - удаляет аккаунт вместе со всеми его данными и сессиями авторизации
func (s *serv) DeleteAccount(ctx context.Context, accountID int64) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.spinRepo.DeleteSpins(txCtx, accountID); err != nil {
			return err
		}
		if err := s.studyRepo.DeleteSessions(txCtx, accountID); err != nil {
			return err
		}
		if err := s.authRepo.DeleteAccountSessions(txCtx, accountID); err != nil {
			return err
		}
		return s.accountRepo.DeleteAccount(txCtx, accountID)
	})
}
