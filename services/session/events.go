// File: services/session/events.go
package session

import (
	"context"
	"fmt"

	"shiftmanager/models"
)

type EventKind int

const (
	EventAddShift EventKind = iota
	EventEditShift
)

// CellEvent is the explicit record a grid cell emits when its add or edit
// affordance is activated. The rendering layer builds these instead of
// capturing per-cell closures, keeping the event surface testable.
type CellEvent struct {
	Kind         EventKind
	EmployeeID   int
	EmployeeName string
	Day          string
	Shift        *models.Shift
}

// HandleCellEvent is the single dispatch point for grid cell events.
func (s *DefaultEditSessionService) HandleCellEvent(ctx context.Context, event CellEvent) error {
	switch event.Kind {
	case EventAddShift:
		return s.Open(ctx, ModeAdd, event.EmployeeID, event.EmployeeName, event.Day, nil)
	case EventEditShift:
		return s.Open(ctx, ModeEdit, event.EmployeeID, event.EmployeeName, event.Day, event.Shift)
	default:
		return fmt.Errorf("unknown cell event kind %d", event.Kind)
	}
}
