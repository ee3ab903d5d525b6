// File: services/schedule/grid.go
package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shiftmanager/models"
)

func (s *DefaultWeekGridService) recompute() {
	s.window = WeekBoundsFor(s.anchor)
	s.days = DaysOf(s.window)
}

// GoToAdjacentWeek shifts the anchor by one week and refetches. Navigation is
// not debounced; when two navigations overlap, the last response to land
// wins, which is accepted behavior rather than a guarantee.
func (s *DefaultWeekGridService) GoToAdjacentWeek(ctx context.Context, direction Direction) error {
	offset := 7
	if direction == DirectionPrevious {
		offset = -7
	}
	s.anchor = s.anchor.AddDate(0, 0, offset)
	s.recompute()
	return s.Refresh(ctx)
}

// Refresh refetches the current window and replaces the board in a single
// assignment, so readers never observe a partially-built board. On failure
// the previous board stays in place.
func (s *DefaultWeekGridService) Refresh(ctx context.Context) error {
	board, err := s.Shifts.FetchWeek(ctx, s.window)
	if err != nil {
		s.Logger.Warn("failed to refresh shift board",
			zap.String("startOfWeek", DayKey(s.window.Start)),
			zap.String("endOfWeek", DayKey(s.window.End)),
			zap.Error(err),
		)
		return err
	}
	s.board = board
	return nil
}

// ShiftsFor returns the shifts for one employee/day cell in server order, or
// an empty slice when the cell is empty.
func (s *DefaultWeekGridService) ShiftsFor(employeeName, dayKey string) []models.Shift {
	week, ok := s.board[employeeName]
	if !ok {
		return []models.Shift{}
	}
	shifts, ok := week.ShiftsByDay[dayKey]
	if !ok {
		return []models.Shift{}
	}
	return shifts
}

func (s *DefaultWeekGridService) Anchor() time.Time {
	return s.anchor
}

func (s *DefaultWeekGridService) Window() models.WeekWindow {
	return s.window
}

func (s *DefaultWeekGridService) Days() []time.Time {
	return s.days
}

func (s *DefaultWeekGridService) Board() models.ShiftBoard {
	return s.board
}

// HeaderRange renders the displayed week as the grid header line.
func (s *DefaultWeekGridService) HeaderRange() string {
	return FormatWeekRange(s.window)
}
