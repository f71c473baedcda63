package worker

import (
	"context"
	"fmt"
	"lockin_backend/internal/repository"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

const sweepTimeout = 30 * time.Second

// Janitor периодически удаляет просроченные сессии авторизации.
// Баланс и учебные данные он не трогает
type Janitor struct {
	scheduler gocron.Scheduler
	authRepo  repository.AuthRepository
	interval  time.Duration
	now       func() time.Time
}

func NewJanitor(authRepo repository.AuthRepository, interval time.Duration) (*Janitor, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &Janitor{
		scheduler: sched,
		authRepo:  authRepo,
		interval:  interval,
		now:       time.Now,
	}, nil
}

// Start регистрирует задачу и запускает планировщик, не блокирует
func (j *Janitor) Start() error {
	_, err := j.scheduler.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
			defer cancel()

			if _, err := j.Sweep(ctx); err != nil {
				log.Error().Err(err).Msg("janitor: sweep failed")
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("register janitor job: %w", err)
	}

	j.scheduler.Start()
	log.Info().Dur("interval", j.interval).Msg("janitor started")
	return nil
}

// Sweep - один проход очистки
func (j *Janitor) Sweep(ctx context.Context) (int64, error) {
	removed, err := j.authRepo.DeleteExpired(ctx, j.now().UTC())
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		log.Info().Int64("removed", removed).Msg("janitor: expired auth sessions removed")
	}
	return removed, nil
}

func (j *Janitor) Shutdown() error {
	return j.scheduler.Shutdown()
}
