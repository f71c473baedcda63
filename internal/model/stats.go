package model

type DashboardStats struct {
	Username          string
	TodaySessions     int
	WeekMinutes       int
	TotalStudyMinutes int
	TotalSessions     int
	CurrentStreak     int
	Balance           int
}

type LeaderboardEntry struct {
	Rank              int
	AccountID         int64
	Username          string
	TotalStudyMinutes int
}

type Leaderboard struct {
	Entries        []LeaderboardEntry
	MyRank         int
	MyStudyMinutes int
}

type DayMinutes struct {
	Day     string // Mon..Sun
	Minutes int
}

type WeekMinutes struct {
	Week    string // Week 1..Week 4, последняя - текущая
	Minutes int
}

type CalendarDay struct {
	Day     int
	Minutes int
}

type Calendar struct {
	Year  int
	Month int
	Days  []CalendarDay
}

type Achievement struct {
	Code     string
	Name     string
	Icon     string
	Unit     string
	Current  int
	Target   int
	Percent  int
	Unlocked bool
}

type Badge struct {
	Code string
	Name string
	Icon string
}

type ProgressSummary struct {
	TotalStudyMinutes     int
	TotalSessions         int
	AvgSessionMinutes     int
	CurrentStreak         int
	CompletedAchievements int
	TotalAchievements     int
}

type Progress struct {
	Summary      ProgressSummary
	Weekly       []DayMinutes
	Monthly      []WeekMinutes
	Calendar     Calendar
	Achievements []Achievement
	Badges       []Badge
}
