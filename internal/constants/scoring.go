package constants

// Reference scoring values. These seed the default scoring configuration and
// can be overridden per install via config.toml; tests pin them.
const (
	BasePoints       = 10.0
	EasyMultiplier   = 1.0
	MediumMultiplier = 1.2
	HardMultiplier   = 1.5

	// StreakStepBonus is the extra multiplier per consecutive day beyond the
	// first, capped at MaxStreakBonus.
	StreakStepBonus = 0.05
	MaxStreakBonus  = 0.50

	// WeeklyConsistencyBonus is awarded once per (habit, ISO week) when the
	// week's completion count reaches the habit's target frequency.
	WeeklyConsistencyBonus = 20

	// ReportTopHabits caps the per-habit breakdown in the monthly report
	ReportTopHabits = 5
)

// Milestone thresholds. Streak and completion badges fire on exact equality,
// points badges on first crossing.
var (
	StreakBadgeThresholds     = []int{3, 7, 14, 30, 60, 100}
	CompletionBadgeThresholds = []int{30, 100}
	PointsBadgeThresholds     = []int{100, 500, 1000, 2000, 5000}
)
