package cli

import (
	"fmt"
	"strings"
)

type ReviewCmd struct {
	Text []string `arg:"" optional:"" help:"Review text. Omit to list past reviews."`
	Date string   `short:"d" help:"A day inside the reviewed week (YYYY-MM-DD). Defaults to today."`
}

func (c *ReviewCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if len(c.Text) == 0 {
		reviews, err := ctx.Store.ListWeeklyReviews()
		if err != nil {
			return err
		}
		if len(reviews) == 0 {
			fmt.Println("No weekly reviews yet.")
			return nil
		}
		fmt.Println(titleStyle.Render("Weekly reviews:"))
		for _, r := range reviews {
			fmt.Printf("  Week of %s: %s\n", r.WeekStart, r.Text)
		}
		return nil
	}

	performAutomaticBackup(ctx)

	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}
	review, err := ctx.Tracker.AddWeeklyReview(day, strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	fmt.Printf("Saved review for week of %s\n", review.WeekStart)
	return nil
}
