package app

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hourbook/hourbook/internal/utils"
	"github.com/hourbook/hourbook/pkg/timesheet"
	"github.com/urfave/cli/v2"
)

const dateLayout = "2006-01-02"

// commands registers the command line surface.
func (a *Application) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:    "display",
			Aliases: []string{"d"},
			Usage:   "show the month's timesheet as a calendar",
			Flags:   []cli.Flag{projectFlag(), dateFlag(), monthFlag()},
			Action:  a.runDisplay,
		},
		{
			Name:    "set",
			Aliases: []string{"s"},
			Usage:   "record the hours worked on one day",
			Flags:   []cli.Flag{projectFlag(), dayFlag(), hoursFlag()},
			Action:  a.runSet,
		},
		{
			Name:    "print",
			Aliases: []string{"p"},
			Usage:   "write the month's timesheet file verbatim to stdout",
			Flags:   []cli.Flag{projectFlag(), dateFlag(), monthFlag()},
			Action:  a.runPrint,
		},
	}
}

func projectFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "project the timesheet belongs to",
	}
}

func dateFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "date (YYYY-MM-DD) inside the month to show",
	}
}

func monthFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "month",
		Aliases: []string{"m"},
		Usage:   "month of the current year (1-12) to show",
	}
}

func dayFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "day",
		Aliases: []string{"d"},
		Usage:   "day (YYYY-MM-DD) to record hours for",
	}
}

func hoursFlag() *cli.UintFlag {
	return &cli.UintFlag{
		Name:    "hours",
		Aliases: []string{"t"},
		Usage:   "number of hours worked",
	}
}

func (a *Application) runDisplay(c *cli.Context) error {
	month, err := a.targetMonth(c)
	if err != nil {
		return err
	}
	project, err := a.resolveProject(c)
	if err != nil {
		return err
	}
	record, err := a.deps.TimesheetService.MonthSheet(project, month)
	if err != nil {
		return err
	}
	return a.printCalendar(c.App.Writer, month, record)
}

func (a *Application) runSet(c *cli.Context) error {
	project, err := a.resolveProject(c)
	if err != nil {
		return err
	}
	day, err := a.resolveDay(c)
	if err != nil {
		return err
	}
	hours, err := a.resolveHours(c)
	if err != nil {
		return err
	}
	record, err := a.deps.TimesheetService.RecordHours(project, day, hours)
	if err != nil {
		return err
	}
	return a.printCalendar(c.App.Writer, day, record)
}

func (a *Application) runPrint(c *cli.Context) error {
	month, err := a.targetMonth(c)
	if err != nil {
		return err
	}
	project, err := a.resolveProject(c)
	if err != nil {
		return err
	}
	raw, err := a.deps.TimesheetService.RawSheet(project, month)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.App.Writer, raw)
	return err
}

func (a *Application) printCalendar(w io.Writer, month time.Time, record timesheet.DailyRecord) error {
	lines, err := a.deps.CalendarRenderer.Render(month, record)
	if err != nil {
		return err
	}
	return a.deps.CalendarPainter.Print(w, lines)
}

// targetMonth picks the month to operate on: an explicit date wins, then a
// month number within the current year, then the current month.
func (a *Application) targetMonth(c *cli.Context) (time.Time, error) {
	if c.IsSet("date") {
		date, err := time.Parse(dateLayout, c.String("date"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %v", c.String("date"), err)
		}
		return date, nil
	}
	if c.IsSet("month") {
		month := c.Int("month")
		if month < 1 || month > 12 {
			return time.Time{}, fmt.Errorf("invalid month %d, expected 1-12", month)
		}
		return time.Date(a.deps.Clock.Now().Year(), time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return utils.Midnight(a.deps.Clock.Now()), nil
}

func (a *Application) resolveProject(c *cli.Context) (string, error) {
	if project := c.String("project"); project != "" {
		return project, nil
	}
	if a.cfg.Project != "" {
		return a.cfg.Project, nil
	}
	return a.deps.Prompter.Text("Project name:")
}

func (a *Application) resolveDay(c *cli.Context) (time.Time, error) {
	value := c.String("day")
	if value == "" {
		today := utils.Midnight(a.deps.Clock.Now()).Format(dateLayout)
		answer, err := a.deps.Prompter.TextWithDefault("Date:", today)
		if err != nil {
			return time.Time{}, err
		}
		value = answer
	}
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %v", value, err)
	}
	return day, nil
}

func (a *Application) resolveHours(c *cli.Context) (int, error) {
	if c.IsSet("hours") {
		hours := c.Uint("hours")
		if hours > math.MaxInt {
			return 0, fmt.Errorf("invalid hours %d, expected at most %d", hours, math.MaxInt)
		}
		return int(hours), nil
	}
	return a.deps.Prompter.Hours("Hours spent working:")
}
