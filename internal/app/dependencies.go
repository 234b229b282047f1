package app

import (
	"github.com/hourbook/hourbook/internal/config"
	"github.com/hourbook/hourbook/internal/prompt"
	"github.com/hourbook/hourbook/internal/utils"
	"github.com/hourbook/hourbook/pkg/calendar"
	"github.com/hourbook/hourbook/pkg/timesheet"
)

// Dependencies holds all services used by the commands.
type Dependencies struct {
	TimesheetRepo    timesheet.Repository
	TimesheetService timesheet.Service

	CalendarRenderer calendar.CalendarRenderer
	CalendarPainter  *calendar.Painter

	Prompter prompt.Prompter
	Clock    utils.Clock
}

// BuildDependencies initializes and wires all application services.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.TimesheetRepo = timesheet.NewFileRepository(cfg.DataDir)
	deps.TimesheetService = timesheet.NewService(deps.TimesheetRepo)

	deps.CalendarRenderer = calendar.NewCalendarRenderer()
	deps.CalendarPainter = calendar.NewPainter()

	deps.Prompter = prompt.NewTerminalPrompter()
	deps.Clock = &utils.SystemClock{}

	return deps
}
