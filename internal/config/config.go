package config

import (
	"lockin_backend/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	Symbols() []model.Symbol
	MinBet() int
	MaxBet() int
	JackpotMultiplier() int
	DoubleMultiplier() float64
	StartingBalance() int
	StudyPointsPerMinute() int
	StudyMaxSessionMinutes() int
}

type HTTPConfig interface {
	Address() string
	AllowedOrigins() []string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type JanitorConfig interface {
	Interval() time.Duration
}

type LogConfig interface {
	Level() string
	Pretty() bool
}
