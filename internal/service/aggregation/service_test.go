package aggregation

import (
	"context"
	"lockin_backend/internal/model"
	"lockin_backend/internal/repository/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// вторник
var testNow = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

func at(month time.Month, d, hour, minute int) time.Time {
	return time.Date(2026, month, d, hour, minute, 0, 0, time.UTC)
}

func session(start time.Time, minutes int) model.StudySession {
	return model.StudySession{AccountID: 1, DurationMinutes: minutes, StartedAt: start}
}

func newTestService(accounts *mocks.AccountRepository, sessions *mocks.StudyRepository, spins *mocks.SpinRepository) *serv {
	s := NewAggregationService(accounts, sessions, spins).(*serv)
	s.now = func() time.Time { return testNow }
	return s
}

func TestStartOfWeek(t *testing.T) {
	monday := at(time.March, 9, 0, 0)

	assert.Equal(t, monday, startOfWeek(at(time.March, 9, 0, 0)))
	assert.Equal(t, monday, startOfWeek(testNow))
	assert.Equal(t, monday, startOfWeek(at(time.March, 15, 23, 59)))
	assert.Equal(t, at(time.March, 16, 0, 0), startOfWeek(at(time.March, 16, 0, 1)))
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	accounts := new(mocks.AccountRepository)
	sessions := new(mocks.StudyRepository)

	accounts.On("GetAccount", ctx, int64(1)).Return(&model.Account{
		ID: 1, Username: "alice", Balance: 1320, TotalStudyMinutes: 900, CurrentStreak: 2,
	}, nil).Once()
	sessions.On("ListSessions", ctx, int64(1), at(time.March, 9, 0, 0), at(time.March, 16, 0, 0)).
		Return([]model.StudySession{
			session(at(time.March, 9, 8, 0), 25),
			session(at(time.March, 10, 11, 0), 40),
			session(at(time.March, 10, 23, 59), 20),
		}, nil).Once()
	sessions.On("CountSessions", ctx, int64(1)).Return(31, nil).Once()

	stats, err := newTestService(accounts, sessions, nil).DashboardStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &model.DashboardStats{
		Username:          "alice",
		TodaySessions:     2,
		WeekMinutes:       85,
		TotalStudyMinutes: 900,
		TotalSessions:     31,
		CurrentStreak:     2,
		Balance:           1320,
	}, stats)
}

func TestDashboardStats_NotFound(t *testing.T) {
	ctx := context.Background()
	accounts := new(mocks.AccountRepository)
	accounts.On("GetAccount", ctx, int64(8)).Return(nil, model.ErrNotFound).Once()

	_, err := newTestService(accounts, new(mocks.StudyRepository), nil).DashboardStats(ctx, 8)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLeaderboard_CallerOutsideTop(t *testing.T) {
	ctx := context.Background()
	accounts := new(mocks.AccountRepository)

	top := make([]model.LeaderboardEntry, 0, leaderboardSize)
	for i := range leaderboardSize {
		top = append(top, model.LeaderboardEntry{Rank: i + 1, AccountID: int64(i + 100), TotalStudyMinutes: 1000 - i*10})
	}
	accounts.On("TopByStudyMinutes", ctx, leaderboardSize).Return(top, nil).Once()
	accounts.On("RankByStudyMinutes", ctx, int64(1)).Return(14, 35, nil).Once()

	board, err := newTestService(accounts, nil, nil).Leaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, board.Entries, leaderboardSize)
	assert.Equal(t, 14, board.MyRank)
	assert.Equal(t, 35, board.MyStudyMinutes)
	for i := 1; i < len(board.Entries); i++ {
		assert.Greater(t, board.Entries[i-1].TotalStudyMinutes, board.Entries[i].TotalStudyMinutes)
	}
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	accounts := new(mocks.AccountRepository)
	sessions := new(mocks.StudyRepository)
	spins := new(mocks.SpinRepository)

	accounts.On("GetAccount", ctx, int64(1)).Return(&model.Account{
		ID: 1, Balance: 1200, TotalStudyMinutes: 600, CurrentStreak: 30,
	}, nil).Once()
	sessions.On("CountSessions", ctx, int64(1)).Return(120, nil).Once()
	spins.On("Totals", ctx, int64(1)).Return(model.SpinTotals{Count: 7, Wins: 2, Winnings: 150}, nil).Once()
	// окно от понедельника за 3 недели до текущей до конца месяца
	sessions.On("ListSessions", ctx, int64(1), at(time.February, 16, 0, 0), at(time.April, 1, 0, 0)).
		Return([]model.StudySession{
			session(at(time.February, 20, 10, 0), 30),
			session(at(time.March, 2, 9, 0), 60),
			session(at(time.March, 9, 8, 0), 25),
			session(at(time.March, 10, 11, 0), 40),
			session(at(time.March, 10, 23, 59), 20),
		}, nil).Once()

	p, err := newTestService(accounts, sessions, spins).Progress(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, []model.DayMinutes{
		{Day: "Mon", Minutes: 25}, {Day: "Tue", Minutes: 60}, {Day: "Wed"}, {Day: "Thu"},
		{Day: "Fri"}, {Day: "Sat"}, {Day: "Sun"},
	}, p.Weekly)

	assert.Equal(t, []model.WeekMinutes{
		{Week: "Week 1", Minutes: 30}, {Week: "Week 2"}, {Week: "Week 3", Minutes: 60}, {Week: "Week 4", Minutes: 85},
	}, p.Monthly)

	assert.Equal(t, 2026, p.Calendar.Year)
	assert.Equal(t, 3, p.Calendar.Month)
	require.Len(t, p.Calendar.Days, 31)
	assert.Equal(t, model.CalendarDay{Day: 2, Minutes: 60}, p.Calendar.Days[1])
	assert.Equal(t, model.CalendarDay{Day: 9, Minutes: 25}, p.Calendar.Days[8])
	assert.Equal(t, model.CalendarDay{Day: 10, Minutes: 60}, p.Calendar.Days[9])
	assert.Equal(t, model.CalendarDay{Day: 31}, p.Calendar.Days[30])

	assert.Equal(t, model.ProgressSummary{
		TotalStudyMinutes:     600,
		TotalSessions:         120,
		AvgSessionMinutes:     5,
		CurrentStreak:         30,
		CompletedAchievements: 2,
		TotalAchievements:     5,
	}, p.Summary)

	require.Len(t, p.Badges, 2)
	assert.Equal(t, "study_marathon", p.Badges[0].Code)
	assert.Equal(t, "consistency_king", p.Badges[1].Code)
}

func TestAchievements(t *testing.T) {
	list := achievements(metrics{sessions: 120, minutes: 600, streak: 30, balance: 1200, spins: 7})
	require.Len(t, list, len(achievementDefs))

	byCode := make(map[string]model.Achievement, len(list))
	for _, a := range list {
		byCode[a.Code] = a
	}

	marathon := byCode["study_marathon"]
	assert.Equal(t, 100, marathon.Current)
	assert.Equal(t, 100, marathon.Percent)
	assert.True(t, marathon.Unlocked)

	focus := byCode["deep_focus"]
	assert.Equal(t, 10, focus.Current)
	assert.Equal(t, 50, focus.Percent)
	assert.False(t, focus.Unlocked)

	assert.True(t, byCode["consistency_king"].Unlocked)
	assert.Equal(t, 24, byCode["high_roller"].Percent)
	assert.Equal(t, 7, byCode["lucky_spinner"].Percent)
}

func TestBadges_EmptyIsNotNil(t *testing.T) {
	b := badges(achievements(metrics{}))
	assert.NotNil(t, b)
	assert.Empty(t, b)
}
