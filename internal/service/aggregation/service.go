package aggregation

import (
	"lockin_backend/internal/repository"
	"lockin_backend/internal/service"
	"time"
)

// leaderboardSize - сколько аккаунтов попадает в таблицу лидеров
const leaderboardSize = 10

type serv struct {
	accountRepo repository.AccountRepository
	studyRepo   repository.StudyRepository
	spinRepo    repository.SpinRepository
	now         func() time.Time
}

// NewAggregationService - представления только для чтения, пересчитываются на каждый запрос
func NewAggregationService(
	accountRepo repository.AccountRepository,
	studyRepo repository.StudyRepository,
	spinRepo repository.SpinRepository,
) service.AggregationService {
	return &serv{
		accountRepo: accountRepo,
		studyRepo:   studyRepo,
		spinRepo:    spinRepo,
		now:         time.Now,
	}
}
