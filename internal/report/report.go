// Package report builds derived monthly views over stored completions and
// grants. Reports are pure reads: nothing here writes, and the same month
// always aggregates to the same report.
package report

import (
	"sort"

	"habitual/internal/calendar"
	"habitual/internal/constants"
	"habitual/internal/models"
	"habitual/internal/storage"
)

// Tier maps a monthly point total to a reward label. Thresholds are the
// minimum points for the tier; tiers are kept sorted ascending.
type Tier struct {
	Threshold  int    `toml:"threshold"`
	Label      string `toml:"label"`
	Suggestion string `toml:"suggestion"`
}

// DefaultTiers returns the reference reward ladder
func DefaultTiers() []Tier {
	return []Tier{
		{Threshold: 0, Label: "Starter", Suggestion: "a quiet evening off"},
		{Threshold: 200, Label: "Bronze", Suggestion: "treat yourself to a nice coffee"},
		{Threshold: 400, Label: "Silver", Suggestion: "buy that book you wanted"},
		{Threshold: 700, Label: "Gold", Suggestion: "dinner out somewhere good"},
		{Threshold: 1000, Label: "Platinum", Suggestion: "plan a day trip"},
	}
}

type Aggregator struct {
	store storage.Provider
	tiers []Tier
	topN  int
}

func NewAggregator(store storage.Provider, tiers []Tier) *Aggregator {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Threshold < sorted[j].Threshold })
	return &Aggregator{store: store, tiers: sorted, topN: constants.ReportTopHabits}
}

// Monthly aggregates one calendar month. Points include grant points awarded
// in the month; best streak is the maximum snapshot stored on the month's
// completions, not a recomputation.
func (a *Aggregator) Monthly(year, month int) (models.MonthlyReport, error) {
	first, last, err := calendar.MonthBounds(year, month)
	if err != nil {
		return models.MonthlyReport{}, err
	}
	start, end := calendar.FormatDay(first), calendar.FormatDay(last)

	completions, err := a.store.CompletionsInRange(start, end)
	if err != nil {
		return models.MonthlyReport{}, err
	}
	grants, err := a.store.GrantsInRange(start, end)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	rep := models.MonthlyReport{
		Period: start[:7],
		Grants: grants,
	}

	perHabit := make(map[string]*models.HabitTotals)
	for _, c := range completions {
		rep.Points += c.Points
		rep.Completions++
		if c.Streak > rep.BestStreak {
			rep.BestStreak = c.Streak
		}
		totals, ok := perHabit[c.HabitID]
		if !ok {
			totals = &models.HabitTotals{HabitID: c.HabitID}
			perHabit[c.HabitID] = totals
		}
		totals.Completions++
		totals.Points += c.Points
	}
	for _, g := range grants {
		rep.Points += g.Points
	}
	rep.DistinctHabits = len(perHabit)
	rep.TopHabits, err = a.topHabits(perHabit)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	tier := a.TierFor(rep.Points)
	rep.RewardTier = tier.Label
	rep.RewardText = tier.Suggestion
	return rep, nil
}

// TierFor returns the highest tier whose threshold the point total meets.
func (a *Aggregator) TierFor(points int) Tier {
	best := a.tiers[0]
	for _, t := range a.tiers {
		if points >= t.Threshold {
			best = t
		}
	}
	return best
}

// topHabits resolves habit names and orders the breakdown by completions,
// then points, then name, keeping the first topN rows.
func (a *Aggregator) topHabits(perHabit map[string]*models.HabitTotals) ([]models.HabitTotals, error) {
	if len(perHabit) == 0 {
		return nil, nil
	}

	habits, err := a.store.ListHabits(true)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(habits))
	for _, h := range habits {
		names[h.ID] = h.Name
	}

	rows := make([]models.HabitTotals, 0, len(perHabit))
	for id, totals := range perHabit {
		totals.Name = names[id]
		rows = append(rows, *totals)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Completions != rows[j].Completions {
			return rows[i].Completions > rows[j].Completions
		}
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > a.topN {
		rows = rows[:a.topN]
	}
	return rows, nil
}
