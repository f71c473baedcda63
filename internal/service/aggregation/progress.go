package aggregation

import (
	"context"
	"fmt"
	"lockin_backend/internal/model"
	"time"
)

const trailingWeeks = 4

var weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Progress - недельная и месячная разбивка, календарь месяца, сводка и достижения
func (s *serv) Progress(ctx context.Context, accountID int64) (*model.Progress, error) {
	account, err := s.accountRepo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	totalSessions, err := s.studyRepo.CountSessions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	spins, err := s.spinRepo.Totals(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	weekStart := startOfWeek(now)
	monthStart := startOfMonth(now)

	// Одним запросом берём сессии, покрывающие и 4 недели, и текущий месяц
	from := minTime(weekStart.AddDate(0, 0, -7*(trailingWeeks-1)), monthStart)
	to := maxTime(weekStart.AddDate(0, 0, 7), monthStart.AddDate(0, 1, 0))
	sessions, err := s.studyRepo.ListSessions(ctx, accountID, from, to)
	if err != nil {
		return nil, err
	}

	list := achievements(metrics{
		sessions: totalSessions,
		minutes:  account.TotalStudyMinutes,
		streak:   account.CurrentStreak,
		balance:  account.Balance,
		spins:    spins.Count,
	})

	completed := 0
	for _, a := range list {
		if a.Unlocked {
			completed++
		}
	}

	summary := model.ProgressSummary{
		TotalStudyMinutes:     account.TotalStudyMinutes,
		TotalSessions:         totalSessions,
		CurrentStreak:         account.CurrentStreak,
		CompletedAchievements: completed,
		TotalAchievements:     len(list),
	}
	if totalSessions > 0 {
		summary.AvgSessionMinutes = account.TotalStudyMinutes / totalSessions
	}

	return &model.Progress{
		Summary:      summary,
		Weekly:       weeklyBuckets(sessions, weekStart),
		Monthly:      monthlyBuckets(sessions, weekStart),
		Calendar:     monthCalendar(sessions, monthStart),
		Achievements: list,
		Badges:       badges(list),
	}, nil
}

// weeklyBuckets - минуты по дням текущей недели, Mon..Sun
func weeklyBuckets(sessions []model.StudySession, weekStart time.Time) []model.DayMinutes {
	res := make([]model.DayMinutes, len(weekdays))
	for i, name := range weekdays {
		res[i].Day = name
	}

	for _, session := range sessions {
		idx, ok := bucket(session.StartedAt, weekStart, day, len(weekdays))
		if ok {
			res[idx].Minutes += session.DurationMinutes
		}
	}
	return res
}

// monthlyBuckets - минуты по неделям за последние 4 недели, текущая неделя последняя
func monthlyBuckets(sessions []model.StudySession, weekStart time.Time) []model.WeekMinutes {
	from := weekStart.AddDate(0, 0, -7*(trailingWeeks-1))

	res := make([]model.WeekMinutes, trailingWeeks)
	for i := range res {
		res[i].Week = fmt.Sprintf("Week %d", i+1)
	}

	for _, session := range sessions {
		idx, ok := bucket(session.StartedAt, from, 7*day, trailingWeeks)
		if ok {
			res[idx].Minutes += session.DurationMinutes
		}
	}
	return res
}

// monthCalendar - запись на каждый день месяца, дни без учёбы с нулём
func monthCalendar(sessions []model.StudySession, monthStart time.Time) model.Calendar {
	next := monthStart.AddDate(0, 1, 0)
	days := int(next.Sub(monthStart) / day)

	cal := model.Calendar{
		Year:  monthStart.Year(),
		Month: int(monthStart.Month()),
		Days:  make([]model.CalendarDay, days),
	}
	for i := range cal.Days {
		cal.Days[i].Day = i + 1
	}

	for _, session := range sessions {
		idx, ok := bucket(session.StartedAt, monthStart, day, days)
		if ok {
			cal.Days[idx].Minutes += session.DurationMinutes
		}
	}
	return cal
}

func bucket(t, from time.Time, width time.Duration, n int) (int, bool) {
	t = t.UTC()
	if t.Before(from) {
		return 0, false
	}
	idx := int(t.Sub(from) / width)
	if idx >= n {
		return 0, false
	}
	return idx, true
}
