package study

import (
	"context"
	"lockin_backend/internal/model"
	"time"
)

// RecordSession - сохраняет сессию, обновляет минуты и стрик, начисляет очки.
// Всё в одной транзакции под блокировкой строки аккаунта
func (s *serv) RecordSession(ctx context.Context, accountID int64, req model.RecordSession) (int64, error) {
	if req.DurationMinutes <= 0 || req.DurationMinutes > s.maxMinutes {
		return 0, model.ErrInvalidInput
	}

	now := s.now().UTC()
	today := truncateDay(now)

	var sessionID int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		account, err := s.accountRepo.GetAccountForUpdate(txCtx, accountID)
		if err != nil {
			return err
		}

		sessionID, err = s.studyRepo.CreateSession(txCtx, &model.StudySession{
			AccountID:       accountID,
			DurationMinutes: req.DurationMinutes,
			StartedAt:       now,
		})
		if err != nil {
			return err
		}

		streak := nextStreak(account.LastStudyDate, account.CurrentStreak, today)
		if err := s.accountRepo.UpdateStudyProgress(txCtx, accountID, req.DurationMinutes, streak, today); err != nil {
			return err
		}

		if points := req.DurationMinutes * s.pointsPerMinute; points > 0 {
			if _, err := s.ledger.Credit(txCtx, accountID, points); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return sessionID, nil
}

// CloseSession - проставляет время окончания открытой сессии
func (s *serv) CloseSession(ctx context.Context, accountID, sessionID int64) error {
	return s.studyRepo.CloseSession(ctx, accountID, sessionID, s.now().UTC())
}

// nextStreak: тот же день - без изменений, вчера - +1, иначе счёт начинается заново
func nextStreak(lastStudyDate *time.Time, current int, today time.Time) int {
	if lastStudyDate == nil {
		return 1
	}

	last := truncateDay(lastStudyDate.UTC())
	switch {
	case last.Equal(today):
		return max(current, 1)
	case last.AddDate(0, 0, 1).Equal(today):
		return current + 1
	default:
		return 1
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
