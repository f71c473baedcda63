package converter

import (
	"lockin_backend/internal/api/dto/casino"
	"lockin_backend/internal/model"
)

func ToSpin(req casino.SpinRequest) model.Spin {
	return model.Spin{
		Bet: req.BetAmount,
	}
}

func ToSpinResponse(res model.SpinResult) casino.SpinResponse {
	return casino.SpinResponse{
		Slots:      res.Slots,
		WinAmount:  res.WinAmount,
		IsJackpot:  res.IsJackpot,
		IsDouble:   res.IsDouble,
		NewBalance: res.Balance,
	}
}

func ToCasinoStatsResponse(stats model.CasinoStats) casino.StatsResponse {
	return casino.StatsResponse{
		TotalPoints:   stats.TotalPoints,
		TotalWinnings: stats.TotalWinnings,
		SpinsToday:    stats.SpinsToday,
		WinRate:       stats.WinRate,
	}
}
