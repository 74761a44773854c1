package cli

import (
	"fmt"
	"time"

	"habitual/internal/calendar"
)

type ReportCmd struct {
	Month string `short:"m" help:"Report period (YYYY-MM). Defaults to the current month."`
}

func (c *ReportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	year, month := time.Now().Year(), int(time.Now().Month())
	if c.Month != "" {
		var err error
		year, month, err = calendar.ParseMonth(c.Month)
		if err != nil {
			return err
		}
	}

	rep, err := ctx.Reports.Monthly(year, month)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Report for %s", rep.Period)))
	fmt.Printf("  Points:          %d\n", rep.Points)
	fmt.Printf("  Completions:     %d across %d habits\n", rep.Completions, rep.DistinctHabits)
	fmt.Printf("  Best streak:     %d days\n", rep.BestStreak)
	fmt.Printf("  Reward tier:     %s\n", badgeStyle.Render(rep.RewardTier))
	fmt.Printf("  Suggested reward: %s\n", rep.RewardText)

	if len(rep.TopHabits) > 0 {
		fmt.Println("\n  Top habits:")
		for i, h := range rep.TopHabits {
			fmt.Printf("    %d. %s: %d completions, %d pts\n", i+1, h.Name, h.Completions, h.Points)
		}
	}
	if len(rep.Grants) > 0 {
		fmt.Println("\n  Earned this month:")
		for _, g := range rep.Grants {
			fmt.Printf("    %s %s\n", g.Day, badgeStyle.Render(g.Code))
		}
	}
	return nil
}
