package model

import "time"

// AuthSession - сессия авторизации (refresh токен), не путать со StudySession
type AuthSession struct {
	ID           string
	AccountID    int64
	RefreshToken string
	ExpiresAt    time.Time
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
