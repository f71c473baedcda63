package env

import (
	"errors"
	"fmt"
	"lockin_backend/internal/config"
	"lockin_backend/internal/model"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

type symbolYAML struct {
	Label  string `yaml:"label"`
	Weight int    `yaml:"weight"`
}

type gameYAML struct {
	Casino struct {
		MinBet            int          `yaml:"min_bet"`
		MaxBet            int          `yaml:"max_bet"`
		JackpotMultiplier int          `yaml:"jackpot_multiplier"`
		DoubleMultiplier  float64      `yaml:"double_multiplier"`
		Symbols           []symbolYAML `yaml:"symbols"`
	} `yaml:"casino"`
	Account struct {
		StartingBalance int `yaml:"starting_balance"`
	} `yaml:"account"`
	Study struct {
		PointsPerMinute   int `yaml:"points_per_minute"`
		MaxSessionMinutes int `yaml:"max_session_minutes"`
	} `yaml:"study"`
}

type gameConfig struct {
	symbols           []model.Symbol
	minBet            int
	maxBet            int
	jackpotMultiplier int
	doubleMultiplier  float64
	startingBalance   int
	pointsPerMinute   int
	maxSessionMinutes int
}

// DefaultGameConfig - правила игры по умолчанию (10 символов, ставка 10..500)
func DefaultGameConfig() config.GameConfig {
	return &gameConfig{
		symbols: []model.Symbol{
			{Label: "+0.1 Grade", Weight: 100},
			{Label: "Pizza Slice", Weight: 80},
			{Label: "Trophy", Weight: 120},
			{Label: "Star Points", Weight: 60},
			{Label: "Mystery Box", Weight: 90},
			{Label: "Achievement", Weight: 110},
			{Label: "Power Up", Weight: 70},
			{Label: "Extra Life", Weight: 85},
			{Label: "Royal Bonus", Weight: 150},
			{Label: "Jackpot", Weight: 200},
		},
		minBet:            10,
		maxBet:            500,
		jackpotMultiplier: 3,
		doubleMultiplier:  1.5,
		startingBalance:   model.StartingBalance,
		pointsPerMinute:   1,
		maxSessionMinutes: 720,
	}
}

// NewGameConfigFromYAML читает правила игры из YAML.
// Незаданные поля берутся из DefaultGameConfig
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	return parseGameConfig(data)
}

func parseGameConfig(data []byte) (config.GameConfig, error) {
	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := DefaultGameConfig().(*gameConfig)

	if len(raw.Casino.Symbols) > 0 {
		cfg.symbols = make([]model.Symbol, 0, len(raw.Casino.Symbols))
		for _, s := range raw.Casino.Symbols {
			if s.Weight <= 0 {
				return nil, fmt.Errorf("symbol %q: weight must be positive", s.Label)
			}
			cfg.symbols = append(cfg.symbols, model.Symbol{Label: s.Label, Weight: s.Weight})
		}
	}
	if raw.Casino.MinBet != 0 {
		cfg.minBet = raw.Casino.MinBet
	}
	if raw.Casino.MaxBet != 0 {
		cfg.maxBet = raw.Casino.MaxBet
	}
	if raw.Casino.JackpotMultiplier != 0 {
		cfg.jackpotMultiplier = raw.Casino.JackpotMultiplier
	}
	if raw.Casino.DoubleMultiplier != 0 {
		cfg.doubleMultiplier = raw.Casino.DoubleMultiplier
	}
	if raw.Account.StartingBalance != 0 {
		cfg.startingBalance = raw.Account.StartingBalance
	}
	if raw.Study.PointsPerMinute != 0 {
		cfg.pointsPerMinute = raw.Study.PointsPerMinute
	}
	if raw.Study.MaxSessionMinutes != 0 {
		cfg.maxSessionMinutes = raw.Study.MaxSessionMinutes
	}

	if cfg.minBet <= 0 || cfg.minBet > cfg.maxBet {
		return nil, errors.New("invalid bet limits")
	}
	if cfg.startingBalance < 0 || cfg.pointsPerMinute < 0 {
		return nil, errors.New("starting balance and points per minute must not be negative")
	}
	if cfg.maxSessionMinutes <= 0 {
		return nil, errors.New("max session minutes must be positive")
	}
	// Награда за самую длинную сессию должна помещаться в INTEGER колонки баланса
	if cfg.pointsPerMinute > math.MaxInt32/cfg.maxSessionMinutes {
		return nil, errors.New("points per minute too large for max session minutes")
	}

	return cfg, nil
}

func (g *gameConfig) Symbols() []model.Symbol {
	return g.symbols
}

func (g *gameConfig) MinBet() int {
	return g.minBet
}

func (g *gameConfig) MaxBet() int {
	return g.maxBet
}

func (g *gameConfig) JackpotMultiplier() int {
	return g.jackpotMultiplier
}

func (g *gameConfig) DoubleMultiplier() float64 {
	return g.doubleMultiplier
}

func (g *gameConfig) StartingBalance() int {
	return g.startingBalance
}

func (g *gameConfig) StudyPointsPerMinute() int {
	return g.pointsPerMinute
}

func (g *gameConfig) StudyMaxSessionMinutes() int {
	return g.maxSessionMinutes
}
