package converter

import (
	"lockin_backend/internal/api/dto/auth"
	"lockin_backend/internal/model"
)

func RegisterRequestToAccount(req *auth.RegisterRequest) *model.Account {
	return &model.Account{
		Username: req.Username,
		Email:    req.Email,
	}
}

func ToTokenResponse(accessToken string) auth.TokenResponse {
	return auth.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}
}
