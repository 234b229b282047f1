package calendar

// CellKind classifies a display cell so any output layer can map it to its
// own visual scheme.
type CellKind string

const (
	CellHeader    CellKind = "header"
	CellWeekday   CellKind = "weekday"
	CellWeekend   CellKind = "weekend"
	CellSeparator CellKind = "separator"
)

// Cell is one fixed-width token of the rendered month view.
type Cell struct {
	Text string
	Kind CellKind
}

type Line []Cell
