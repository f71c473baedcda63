package auth

import (
	"context"
	"errors"
	"lockin_backend/internal/model"
	"lockin_backend/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	// Получение хэша refresh токена из хранилища по sessionID
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrUnauthorized
		}
		return "", err
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(data.RefreshToken, refreshTokenHash) {
		return "", model.ErrUnauthorized
	}

	// Получение аккаунта по sessionID
	account, err := s.authRepo.GetAccountBySessionID(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrUnauthorized
		}
		return "", err
	}

	// Генерация нового access токена
	return token.GenerateAccessToken(
		account,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.authRepo.DeleteSession(ctx, sessionID)
}
