package aggregation

import (
	"context"
	"lockin_backend/internal/model"
)

func (s *serv) DashboardStats(ctx context.Context, accountID int64) (*model.DashboardStats, error) {
	account, err := s.accountRepo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := startOfDay(now)
	weekStart := startOfWeek(now)

	sessions, err := s.studyRepo.ListSessions(ctx, accountID, weekStart, weekStart.Add(7*day))
	if err != nil {
		return nil, err
	}

	total, err := s.studyRepo.CountSessions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{
		Username:          account.Username,
		TotalStudyMinutes: account.TotalStudyMinutes,
		TotalSessions:     total,
		CurrentStreak:     account.CurrentStreak,
		Balance:           account.Balance,
	}
	for _, session := range sessions {
		stats.WeekMinutes += session.DurationMinutes
		if !session.StartedAt.Before(today) && session.StartedAt.Before(today.Add(day)) {
			stats.TodaySessions++
		}
	}

	return stats, nil
}

// Leaderboard - топ по минутам учёбы и место вызывающего, даже если он вне топа
func (s *serv) Leaderboard(ctx context.Context, accountID int64) (*model.Leaderboard, error) {
	entries, err := s.accountRepo.TopByStudyMinutes(ctx, leaderboardSize)
	if err != nil {
		return nil, err
	}

	rank, minutes, err := s.accountRepo.RankByStudyMinutes(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &model.Leaderboard{
		Entries:        entries,
		MyRank:         rank,
		MyStudyMinutes: minutes,
	}, nil
}
