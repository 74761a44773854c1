package cli

import (
	"fmt"
	"time"
)

type LogCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Date  string `short:"d" help:"Completion day (YYYY-MM-DD). Defaults to today."`
	Note  string `short:"n" help:"Optional note."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	performAutomaticBackup(ctx)

	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}

	res, err := ctx.Tracker.LogCompletion(c.Habit, day, c.Note)
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ %s logged for %s", res.Habit.Name, res.Completion.Day)))
	fmt.Printf("  +%d points (streak: %d days)\n", res.Completion.Points, res.Streak)
	for _, g := range res.Grants {
		if g.Points > 0 {
			fmt.Printf("  %s +%d points\n", badgeStyle.Render("★ "+g.Code), g.Points)
		} else {
			fmt.Printf("  %s\n", badgeStyle.Render("★ "+g.Code))
		}
	}

	rep, err := ctx.Reports.Monthly(day.Year(), int(day.Month()))
	if err != nil {
		return err
	}
	fmt.Printf("  Month total: %d points (%s)\n", rep.Points, rep.RewardTier)
	return nil
}

type StatusCmd struct {
	Date string `short:"d" help:"Day to inspect (YYYY-MM-DD). Defaults to today."`
}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}

	statuses, err := ctx.Tracker.DayStatus(day)
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		fmt.Println("No active habits. Add one with 'habitual habit add'.")
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Status for %s:", day.Format(time.DateOnly))))
	for _, st := range statuses {
		mark := "✗"
		line := fmt.Sprintf("  %s %s", mark, st.Habit.Name)
		if st.Done {
			mark = "✓"
			line = successStyle.Render(fmt.Sprintf("  %s %s (streak: %d)", mark, st.Habit.Name, st.Streak))
		}
		fmt.Println(line)
	}
	return nil
}
