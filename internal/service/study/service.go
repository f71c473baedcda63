package study

import (
	"lockin_backend/internal/config"
	"lockin_backend/internal/repository"
	"lockin_backend/internal/service"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager       trm.Manager
	accountRepo     repository.AccountRepository
	studyRepo       repository.StudyRepository
	ledger          service.LedgerService
	pointsPerMinute int
	maxMinutes      int
	now             func() time.Time
}

// NewStudyService - учёт учебных сессий, стрика и начисление очков за учёбу
func NewStudyService(
	txManager trm.Manager,
	accountRepo repository.AccountRepository,
	studyRepo repository.StudyRepository,
	ledger service.LedgerService,
	cfg config.GameConfig,
) service.StudyService {
	return &serv{
		txManager:       txManager,
		accountRepo:     accountRepo,
		studyRepo:       studyRepo,
		ledger:          ledger,
		pointsPerMinute: cfg.StudyPointsPerMinute(),
		maxMinutes:      cfg.StudyMaxSessionMinutes(),
		now:             time.Now,
	}
}
