package converter

import (
	"lockin_backend/internal/api/dto/stats"
	"lockin_backend/internal/model"
)

func ToUserStatsResponse(s model.DashboardStats) stats.UserStatsResponse {
	return stats.UserStatsResponse{
		Username:          s.Username,
		TodaySessions:     s.TodaySessions,
		WeekMinutes:       s.WeekMinutes,
		TotalStudyMinutes: s.TotalStudyMinutes,
		TotalSessions:     s.TotalSessions,
		CurrentStreak:     s.CurrentStreak,
		Balance:           s.Balance,
	}
}

func ToLeaderboardResponse(l model.Leaderboard) stats.LeaderboardResponse {
	entries := make([]stats.LeaderboardEntry, 0, len(l.Entries))
	for _, e := range l.Entries {
		entries = append(entries, stats.LeaderboardEntry{
			Rank:              e.Rank,
			Username:          e.Username,
			TotalStudyMinutes: e.TotalStudyMinutes,
		})
	}

	return stats.LeaderboardResponse{
		Leaderboard:    entries,
		MyRank:         l.MyRank,
		MyStudyMinutes: l.MyStudyMinutes,
	}
}

func ToProgressResponse(p model.Progress) stats.ProgressResponse {
	weekly := make([]stats.DayMinutes, 0, len(p.Weekly))
	for _, d := range p.Weekly {
		weekly = append(weekly, stats.DayMinutes{Day: d.Day, Minutes: d.Minutes})
	}

	monthly := make([]stats.WeekMinutes, 0, len(p.Monthly))
	for _, w := range p.Monthly {
		monthly = append(monthly, stats.WeekMinutes{Week: w.Week, Minutes: w.Minutes})
	}

	days := make([]stats.CalendarDay, 0, len(p.Calendar.Days))
	for _, d := range p.Calendar.Days {
		days = append(days, stats.CalendarDay{Day: d.Day, Minutes: d.Minutes})
	}

	achievements := make([]stats.Achievement, 0, len(p.Achievements))
	for _, a := range p.Achievements {
		achievements = append(achievements, stats.Achievement{
			Code:     a.Code,
			Name:     a.Name,
			Icon:     a.Icon,
			Unit:     a.Unit,
			Current:  a.Current,
			Target:   a.Target,
			Percent:  a.Percent,
			Unlocked: a.Unlocked,
		})
	}

	badges := make([]stats.Badge, 0, len(p.Badges))
	for _, b := range p.Badges {
		badges = append(badges, stats.Badge{Code: b.Code, Name: b.Name, Icon: b.Icon})
	}

	return stats.ProgressResponse{
		Summary: stats.Summary{
			TotalStudyMinutes:     p.Summary.TotalStudyMinutes,
			TotalSessions:         p.Summary.TotalSessions,
			AvgSessionMinutes:     p.Summary.AvgSessionMinutes,
			CurrentStreak:         p.Summary.CurrentStreak,
			CompletedAchievements: p.Summary.CompletedAchievements,
			TotalAchievements:     p.Summary.TotalAchievements,
		},
		WeeklyData:   weekly,
		MonthlyData:  monthly,
		Calendar:     stats.Calendar{Year: p.Calendar.Year, Month: p.Calendar.Month, Days: days},
		Achievements: achievements,
		Badges:       badges,
	}
}
