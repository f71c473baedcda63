package auth

import (
	"context"
	"lockin_backend/internal/model"
	"lockin_backend/pkg/token"
)

// openSession - создает сессию с хэшем refresh токена и выпускает пару токенов
func (s *serv) openSession(ctx context.Context, account *model.Account) (*model.AuthData, error) {
	// Генерация sessionID
	sessionID := generateSessionID()

	// Генерация refresh токена
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	// Создать сессию, в БД хранится только хэш
	err = s.authRepo.CreateSession(ctx, &model.AuthSession{
		ID:           sessionID,
		AccountID:    account.ID,
		RefreshToken: token.HashRefreshToken(refreshToken),
		ExpiresAt:    s.now().UTC().Add(s.jwtConfig.RefreshTokenDuration()),
	})
	if err != nil {
		return nil, err
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		account,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
