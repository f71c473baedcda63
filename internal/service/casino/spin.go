package casino

import (
	"context"
	"lockin_backend/internal/model"
	"math"
)

const reels = 3

// Spin - один раунд: списать ставку, выбросить символы, начислить выигрыш, записать раунд.
// Любая ошибка откатывает транзакцию, списание снаружи не видно
func (s *serv) Spin(ctx context.Context, accountID int64, req model.Spin) (*model.SpinResult, error) {
	if req.Bet < s.cfg.MinBet() || req.Bet > s.cfg.MaxBet() {
		return nil, model.ErrInvalidInput
	}

	var res *model.SpinResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledger.Debit(txCtx, accountID, req.Bet); err != nil {
			return err
		}

		slots := s.draw()
		out := s.evaluate(slots, req.Bet)

		balance, err := s.ledger.Credit(txCtx, accountID, out.WinAmount)
		if err != nil {
			return err
		}
		out.Balance = balance

		_, err = s.spinRepo.CreateSpin(txCtx, &model.SpinRecord{
			AccountID: accountID,
			BetAmount: req.Bet,
			Slots:     slots,
			WinAmount: out.WinAmount,
			CreatedAt: s.now().UTC(),
		})
		if err != nil {
			return err
		}

		res = &out
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// draw - три независимых равновероятных индекса символов
func (s *serv) draw() [reels]int {
	n := len(s.cfg.Symbols())

	var slots [reels]int
	for i := range slots {
		slots[i] = s.intn(n)
	}
	return slots
}

// evaluate - выплата зависит только от символов и ставки.
// Три одинаковых - вес символа x jackpot_multiplier, два - floor(ставка x double_multiplier)
func (s *serv) evaluate(slots [reels]int, bet int) model.SpinResult {
	res := model.SpinResult{Slots: slots}

	a, b, c := slots[0], slots[1], slots[2]
	switch {
	case a == b && b == c:
		res.IsJackpot = true
		res.WinAmount = s.cfg.Symbols()[a].Weight * s.cfg.JackpotMultiplier()
	case a == b || b == c || a == c:
		res.IsDouble = true
		res.WinAmount = int(math.Floor(float64(bet) * s.cfg.DoubleMultiplier()))
	}

	return res
}
