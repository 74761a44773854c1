package cli

import "fmt"

type BadgesCmd struct{}

func (c *BadgesCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	grants, err := ctx.Tracker.Badges()
	if err != nil {
		return err
	}
	if len(grants) == 0 {
		fmt.Println("No badges yet. Log a completion to earn your first one.")
		return nil
	}

	fmt.Println(titleStyle.Render("Badges and bonuses:"))
	for _, g := range grants {
		line := fmt.Sprintf("  %s  %s", g.Day, badgeStyle.Render(g.Code))
		if g.Points > 0 {
			line += fmt.Sprintf(" (+%d pts)", g.Points)
		}
		fmt.Println(line)
		if g.Reason != "" {
			fmt.Printf("      %s\n", mutedStyle.Render(g.Reason))
		}
	}
	return nil
}
