package aggregation

import "lockin_backend/internal/model"

type metric int

const (
	metricSessions metric = iota
	metricHours
	metricStreak
	metricBalance
	metricSpins
)

type achievementDef struct {
	code   string
	name   string
	icon   string
	unit   string
	metric metric
	target int
}

var achievementDefs = []achievementDef{
	{code: "study_marathon", name: "Study Marathon", icon: "📚", unit: "sessions", metric: metricSessions, target: 100},
	{code: "deep_focus", name: "Deep Focus", icon: "🎯", unit: "hours", metric: metricHours, target: 20},
	{code: "consistency_king", name: "Consistency King", icon: "🔥", unit: "days", metric: metricStreak, target: 30},
	{code: "high_roller", name: "High Roller", icon: "💰", unit: "points", metric: metricBalance, target: 5000},
	{code: "lucky_spinner", name: "Lucky Spinner", icon: "🎰", unit: "spins", metric: metricSpins, target: 100},
}

type metrics struct {
	sessions int
	minutes  int
	streak   int
	balance  int
	spins    int
}

func (m metrics) value(k metric) int {
	switch k {
	case metricSessions:
		return m.sessions
	case metricHours:
		return m.minutes / 60
	case metricStreak:
		return m.streak
	case metricBalance:
		return m.balance
	case metricSpins:
		return m.spins
	default:
		return 0
	}
}

// achievements - прогресс по каждому достижению, current не превышает target
func achievements(m metrics) []model.Achievement {
	res := make([]model.Achievement, 0, len(achievementDefs))
	for _, def := range achievementDefs {
		current := min(m.value(def.metric), def.target)
		res = append(res, model.Achievement{
			Code:     def.code,
			Name:     def.name,
			Icon:     def.icon,
			Unit:     def.unit,
			Current:  current,
			Target:   def.target,
			Percent:  current * 100 / def.target,
			Unlocked: current >= def.target,
		})
	}
	return res
}

// badges - значки за открытые достижения
func badges(list []model.Achievement) []model.Badge {
	res := make([]model.Badge, 0)
	for _, a := range list {
		if a.Unlocked {
			res = append(res, model.Badge{Code: a.Code, Name: a.Name, Icon: a.Icon})
		}
	}
	return res
}
