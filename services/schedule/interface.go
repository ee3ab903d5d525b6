// File: services/schedule/interface.go
package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	shiftRepo "shiftmanager/backend/repository/shift"
	"shiftmanager/models"
)

type Direction string

const (
	DirectionPrevious Direction = "prev"
	DirectionNext     Direction = "next"
)

// WeekGridService is the view-model behind the week grid: it owns the anchor
// date, the derived window and day list, and the current shift board.
type WeekGridService interface {
	GoToAdjacentWeek(ctx context.Context, direction Direction) error
	Refresh(ctx context.Context) error
	ShiftsFor(employeeName, dayKey string) []models.Shift
	Anchor() time.Time
	Window() models.WeekWindow
	Days() []time.Time
	Board() models.ShiftBoard
	HeaderRange() string
}

// DefaultWeekGridService implements WeekGridService.
type DefaultWeekGridService struct {
	Shifts shiftRepo.ShiftRepository
	Logger *zap.Logger

	anchor time.Time
	window models.WeekWindow
	days   []time.Time
	board  models.ShiftBoard
}

// NewDefaultWeekGridService constructs the view-model anchored at the given
// reference date with an empty board; call Refresh to populate it.
func NewDefaultWeekGridService(shifts shiftRepo.ShiftRepository, logger *zap.Logger, anchor time.Time) *DefaultWeekGridService {
	svc := &DefaultWeekGridService{
		Shifts: shifts,
		Logger: logger,
		anchor: anchor,
		board:  models.ShiftBoard{},
	}
	svc.recompute()
	return svc
}
