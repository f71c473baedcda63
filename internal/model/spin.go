package model

import "time"

type Spin struct {
	Bet int
}

// SpinResult - то, что видит игрок после спина
type SpinResult struct {
	Slots     [3]int
	WinAmount int
	IsJackpot bool
	IsDouble  bool
	Balance   int
}

// SpinRecord - неизменяемая запись раунда для аудита
type SpinRecord struct {
	ID        int64
	AccountID int64
	BetAmount int
	Slots     [3]int
	WinAmount int
	CreatedAt time.Time
}

type Symbol struct {
	Label  string
	Weight int
}

type CasinoStats struct {
	TotalPoints   int
	TotalWinnings int
	SpinsToday    int
	WinRate       float64
}

// SpinTotals - агрегаты по спинам аккаунта из хранилища
type SpinTotals struct {
	Count    int
	Wins     int
	Winnings int
}
