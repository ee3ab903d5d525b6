// File: services/session/interface.go
package session

import (
	"context"

	"go.uber.org/zap"

	roleRepo "shiftmanager/backend/repository/role"
	shiftRepo "shiftmanager/backend/repository/shift"
	"shiftmanager/models"
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
)

type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives the transient notifications the console surfaces after
// save and delete outcomes.
type Notifier interface {
	Notify(severity Severity, message string)
}

// BoardRefresher is the slice of the week grid the session needs: a refetch
// after a successful mutation.
type BoardRefresher interface {
	Refresh(ctx context.Context) error
}

// EditSessionService drives the add/edit/delete workflow for a single shift.
type EditSessionService interface {
	Open(ctx context.Context, mode Mode, employeeID int, employeeName, day string, existing *models.Shift) error
	HandleCellEvent(ctx context.Context, event CellEvent) error
	SetRole(roleID int)
	SetStartTime(value string) error
	SetEndTime(value string) error
	IsSaveEnabled() bool
	Save(ctx context.Context) error
	RequestDelete()
	CancelDelete()
	ConfirmDelete(ctx context.Context) error
	Close()

	State() State
	Mode() Mode
	EmployeeName() string
	Day() string
	Roles() []models.Role
	ErrorMessage() string
	DeleteConfirmOpen() bool
}

// DefaultEditSessionService implements EditSessionService. One instance holds
// at most one in-progress session; all state is reset on close.
type DefaultEditSessionService struct {
	Shifts   shiftRepo.ShiftRepository
	RoleRepo roleRepo.RoleRepository
	Grid     BoardRefresher
	Notify   Notifier
	Logger   *zap.Logger

	sessionID     string
	state         State
	mode          Mode
	employeeID    int
	employeeName  string
	day           string
	editing       *models.Shift
	roles         []models.Role
	roleID        int
	startTime     string
	endTime       string
	deleteConfirm bool
	errorMessage  string
}
