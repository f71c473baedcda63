package casino

import (
	"lockin_backend/internal/config"
	"lockin_backend/internal/repository"
	"lockin_backend/internal/service"
	"math/rand/v2"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager trm.Manager
	ledger    service.LedgerService
	spinRepo  repository.SpinRepository
	cfg       config.GameConfig
	intn      func(n int) int
	now       func() time.Time
}

// NewCasinoService - слот 3 барабана по 10 символов.
// Исход определяет только сервер, клиент передаёт одну ставку
func NewCasinoService(
	txManager trm.Manager,
	ledger service.LedgerService,
	spinRepo repository.SpinRepository,
	cfg config.GameConfig,
) service.CasinoService {
	return &serv{
		txManager: txManager,
		ledger:    ledger,
		spinRepo:  spinRepo,
		cfg:       cfg,
		intn:      rand.IntN,
		now:       time.Now,
	}
}
