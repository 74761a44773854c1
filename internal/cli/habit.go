package cli

import "fmt"

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name (unique)."`
	Description string `short:"D" help:"What the habit is about."`
	Cue         string `short:"c" help:"Trigger cue ('after morning coffee')."`
	Difficulty  string `short:"d" help:"Difficulty (easy|medium|hard)." default:"easy"`
	Frequency   int    `short:"f" help:"Target completions per week (1-7)." default:"7"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	performAutomaticBackup(ctx)

	h, err := ctx.Tracker.AddHabit(c.Name, c.Description, c.Cue, c.Difficulty, c.Frequency)
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (ID: %s)\n", h.Name, h.ID)
	return nil
}

type HabitListCmd struct {
	All bool `help:"Include deactivated habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Tracker.Habits(c.All)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Println(titleStyle.Render("Habits:"))
	for _, h := range habits {
		status := "active"
		if !h.Active {
			status = "inactive"
		}
		fmt.Printf("  [%s] %s - %s, %dx/week\n", status, h.Name, h.Difficulty, h.FrequencyPerWeek)
		if h.Cue != "" {
			fmt.Printf("      Cue: %s\n", mutedStyle.Render(h.Cue))
		}
		if h.Description != "" {
			fmt.Printf("      %s\n", mutedStyle.Render(h.Description))
		}
	}
	return nil
}

type HabitDeactivateCmd struct {
	Ref string `arg:"" help:"Habit id or name."`
}

func (c *HabitDeactivateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	performAutomaticBackup(ctx)

	h, err := ctx.Tracker.Deactivate(c.Ref)
	if err != nil {
		return err
	}
	fmt.Printf("Deactivated habit: %s (history kept)\n", h.Name)
	return nil
}
