package calendar

import (
	"fmt"
	"time"

	"github.com/hourbook/hourbook/pkg/timesheet"
)

type CalendarRenderer interface {
	Render(month time.Time, record timesheet.DailyRecord) ([]Line, error)
}

// CalendarRendererImpl turns one month of a timesheet into two display
// lines: the day numbers and the hours worked per day. Weeks are closed
// with a separator cell after every day followed by a Monday.
type CalendarRendererImpl struct {
}

func NewCalendarRenderer() *CalendarRendererImpl {
	return &CalendarRendererImpl{}
}

// Render walks the month containing the given date from day 1 to its last
// day. It fails with the record's ErrMissingDay when the record does not
// cover a day of the month, which a correctly loaded timesheet never does.
func (r *CalendarRendererImpl) Render(month time.Time, record timesheet.DailyRecord) ([]Line, error) {
	var days, hours Line

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		days = append(days, Cell{Text: fmt.Sprintf("%-3d", day.Day()), Kind: CellHeader})

		worked, err := record.HoursOn(day)
		if err != nil {
			return nil, err
		}
		hours = append(hours, hoursCell(day, worked))

		if day.AddDate(0, 0, 1).Weekday() == time.Monday {
			days = append(days, separatorCell())
			hours = append(hours, separatorCell())
		}
	}

	return []Line{days, hours}, nil
}

// hoursCell formats one day of the hours line. A weekend day without any
// recorded hours stays blank so free weekends do not clutter the view with
// zeros.
func hoursCell(day time.Time, hours int) Cell {
	if isWeekend(day) {
		text := fmt.Sprintf("%-3d", hours)
		if hours == 0 {
			text = "   "
		}
		return Cell{Text: text, Kind: CellWeekend}
	}
	return Cell{Text: fmt.Sprintf("%-3d", hours), Kind: CellWeekday}
}

func separatorCell() Cell {
	return Cell{Text: "|", Kind: CellSeparator}
}

func isWeekend(day time.Time) bool {
	return day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
}
