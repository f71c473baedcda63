package casino

type SpinRequest struct {
	BetAmount int `json:"bet_amount"` // Ставка, 10..500
}

type SpinResponse struct {
	Slots      [3]int `json:"slots"`       // Индексы символов 0..9
	WinAmount  int    `json:"win_amount"`  // Выигрыш
	IsJackpot  bool   `json:"is_jackpot"`  // Три одинаковых
	IsDouble   bool   `json:"is_double"`   // Два одинаковых
	NewBalance int    `json:"new_balance"` // Баланс после спина
}

type StatsResponse struct {
	TotalPoints   int     `json:"total_points"`
	TotalWinnings int     `json:"total_winnings"`
	SpinsToday    int     `json:"spins_today"`
	WinRate       float64 `json:"win_rate"` // Проценты, один знак после запятой
}
