package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/jurgenbaeza/habit-tracker/internal/analyzer"
	"github.com/jurgenbaeza/habit-tracker/internal/constants"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("80")).
				Bold(true)
)

type SummaryCmd struct {
	Week   SummaryWeekCmd   `cmd:"" help:"Per-day minutes for the current week plus the weekly total."`
	Streak SummaryStreakCmd `cmd:"" help:"Current and longest consecutive-day streaks."`
}

type SummaryWeekCmd struct {
	Habit string `help:"Limit to one habit by name." default:""`
	Date  string `help:"Reference date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *SummaryWeekCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ref, err := ResolveReferenceDate(c.Date)
	if err != nil {
		return err
	}

	events, err := fetchEvents(ctx, c.Habit)
	if err != nil {
		return err
	}

	sum := analyzer.WeeklyTotals(events, ref)

	title := "This week"
	if c.Habit != "" {
		title = fmt.Sprintf("This week: %s", c.Habit)
	}
	fmt.Println(summaryTitleStyle.Render(title))

	days := make([]string, 0, len(sum.PerDay))
	for day := range sum.PerDay {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		mins := sum.PerDay[day]
		line := fmt.Sprintf("  %s  %4d min", day, mins)
		if day > sum.ReferenceDate {
			fmt.Println(summaryDimStyle.Render(line))
		} else {
			fmt.Println(line)
		}
	}

	fmt.Printf("%s %s\n",
		summaryDimStyle.Render("  Weekly total:"),
		summaryValueStyle.Render(fmt.Sprintf("%d min", sum.TotalMinutes)))
	return nil
}

type SummaryStreakCmd struct {
	Habit string `help:"Limit to one habit by name." default:""`
	Date  string `help:"Reference date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *SummaryStreakCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ref, err := ResolveReferenceDate(c.Date)
	if err != nil {
		return err
	}

	events, err := fetchEvents(ctx, c.Habit)
	if err != nil {
		return err
	}

	streaks := analyzer.Streaks(events, ref)

	title := "Streaks"
	if c.Habit != "" {
		title = fmt.Sprintf("Streaks: %s", c.Habit)
	}
	fmt.Println(summaryTitleStyle.Render(title))
	fmt.Printf("  As of %s\n", summaryDimStyle.Render(ref.Format(constants.DateFormat)))
	fmt.Printf("  Current: %s\n", summaryValueStyle.Render(fmt.Sprintf("%d day(s)", streaks.Current)))
	fmt.Printf("  Longest: %s\n", summaryValueStyle.Render(fmt.Sprintf("%d day(s)", streaks.Longest)))
	return nil
}
