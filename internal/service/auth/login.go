package auth

import (
	"context"
	"errors"
	"lockin_backend/internal/model"
	"lockin_backend/pkg/pass"
)

func (s *serv) Login(ctx context.Context, username, password string) (*model.AuthData, error) {
	// Получение аккаунта из бд по логину
	account, err := s.accountRepo.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrUnauthorized
		}
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(account.PasswordHash, password) {
		return nil, model.ErrUnauthorized
	}

	return s.openSession(ctx, account)
}
