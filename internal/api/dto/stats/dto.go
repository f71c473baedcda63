package stats

type UserStatsResponse struct {
	Username          string `json:"username"`
	TodaySessions     int    `json:"today_sessions"`
	WeekMinutes       int    `json:"week_minutes"`
	TotalStudyMinutes int    `json:"total_study_minutes"`
	TotalSessions     int    `json:"total_sessions"`
	CurrentStreak     int    `json:"current_streak"`
	Balance           int    `json:"balance"`
}

type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	Username          string `json:"username"`
	TotalStudyMinutes int    `json:"total_study_minutes"`
}

type LeaderboardResponse struct {
	Leaderboard    []LeaderboardEntry `json:"leaderboard"`
	MyRank         int                `json:"my_rank"`
	MyStudyMinutes int                `json:"my_study_minutes"`
}

type DayMinutes struct {
	Day     string `json:"day"`
	Minutes int    `json:"minutes"`
}

type WeekMinutes struct {
	Week    string `json:"week"`
	Minutes int    `json:"minutes"`
}

type CalendarDay struct {
	Day     int `json:"day"`
	Minutes int `json:"minutes"`
}

type Calendar struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

type Achievement struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Unit     string `json:"unit"`
	Current  int    `json:"current"`
	Target   int    `json:"target"`
	Percent  int    `json:"percent"`
	Unlocked bool   `json:"unlocked"`
}

type Badge struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Summary struct {
	TotalStudyMinutes     int `json:"total_study_minutes"`
	TotalSessions         int `json:"total_sessions"`
	AvgSessionMinutes     int `json:"avg_session_minutes"`
	CurrentStreak         int `json:"current_streak"`
	CompletedAchievements int `json:"completed_achievements"`
	TotalAchievements     int `json:"total_achievements"`
}

type ProgressResponse struct {
	Summary      Summary       `json:"summary"`
	WeeklyData   []DayMinutes  `json:"weekly_data"`
	MonthlyData  []WeekMinutes `json:"monthly_data"`
	Calendar     Calendar      `json:"calendar"`
	Achievements []Achievement `json:"achievements"`
	Badges       []Badge       `json:"badges"`
}
