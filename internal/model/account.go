package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StartingBalance - баланс нового аккаунта и баланс после сброса прогресса
const StartingBalance = 1000

type Account struct {
	ID                int64
	Username          string
	Email             string
	PasswordHash      string
	Balance           int
	TotalStudyMinutes int
	CurrentStreak     int
	LastStudyDate     *time.Time // UTC дата без времени, nil если сессий ещё не было
	CreatedAt         time.Time
}

type AccountClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
