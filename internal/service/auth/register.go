package auth

import (
	"context"
	"lockin_backend/internal/model"
	"lockin_backend/pkg/pass"
	"strings"
)

func (s *serv) Register(ctx context.Context, account *model.Account, password string) (*model.AuthData, error) {
	account.Username = strings.TrimSpace(account.Username)
	account.Email = strings.TrimSpace(account.Email)
	if account.Username == "" || account.Email == "" || password == "" {
		return nil, model.ErrInvalidInput
	}

	// Хэширование пароля
	passwordHash, err := pass.HashPassword(password)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = passwordHash
	account.Balance = s.startingBalance

	var data *model.AuthData

	// Аккаунт и первая сессия создаются в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Создать аккаунт, занятый логин или почта -> model.ErrAlreadyExists
		account.ID, err = s.accountRepo.CreateAccount(txCtx, account)
		if err != nil {
			return err
		}

		// 2. Сессия и токены
		data, err = s.openSession(txCtx, account)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
