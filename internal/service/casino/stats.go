package casino

import (
	"context"
	"lockin_backend/internal/model"
	"math"
	"time"
)

// Stats - сводка по казино для аккаунта, считается на лету
func (s *serv) Stats(ctx context.Context, accountID int64) (*model.CasinoStats, error) {
	balance, err := s.ledger.Balance(ctx, accountID)
	if err != nil {
		return nil, err
	}

	totals, err := s.spinRepo.Totals(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	spinsToday, err := s.spinRepo.CountSince(ctx, accountID, today)
	if err != nil {
		return nil, err
	}

	return &model.CasinoStats{
		TotalPoints:   balance,
		TotalWinnings: totals.Winnings,
		SpinsToday:    spinsToday,
		WinRate:       winRate(totals),
	}, nil
}

// winRate - процент выигрышных спинов с одним знаком после запятой
func winRate(t model.SpinTotals) float64 {
	if t.Count == 0 {
		return 0
	}
	return math.Round(float64(t.Wins)*1000/float64(t.Count)) / 10
}
