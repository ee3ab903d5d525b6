// File: services/session/session.go
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shiftmanager/models"
)

const clockLayout = "15:04"

// Open starts a session for one grid cell. It guards on a valid employee and
// day, resets all fields, and fetches the employee's roles fresh. In edit
// mode the role and time fields are seeded from the existing shift. A role
// fetch failure is logged but does not prevent the dialog from opening.
func (s *DefaultEditSessionService) Open(ctx context.Context, mode Mode, employeeID int, employeeName, day string, existing *models.Shift) error {
	if employeeID == 0 || day == "" {
		s.Logger.Error("cannot open shift dialog: invalid employee or day",
			zap.Int("employeeId", employeeID),
			zap.String("day", day),
		)
		return fmt.Errorf("invalid employee or day")
	}

	s.reset()
	s.sessionID = uuid.New().String()
	s.mode = mode
	s.employeeID = employeeID
	s.employeeName = employeeName
	s.day = day

	if existing != nil {
		s.editing = existing
		s.roleID = existing.RoleID
		s.startTime = existing.StartTime
		s.endTime = existing.EndTime
	}

	roles, err := s.RoleRepo.ForEmployee(ctx, employeeID)
	if err != nil {
		s.Logger.Warn("failed to fetch roles for employee",
			zap.String("sessionId", s.sessionID),
			zap.Int("employeeId", employeeID),
			zap.Error(err),
		)
	} else {
		s.roles = roles
	}

	s.state = StateOpen
	return nil
}

// SetRole selects the role for the shift. Local only, no network.
func (s *DefaultEditSessionService) SetRole(roleID int) {
	if s.state != StateOpen {
		return
	}
	s.roleID = roleID
}

// SetStartTime sets the start time from a 24-hour HH:MM string.
func (s *DefaultEditSessionService) SetStartTime(value string) error {
	return s.setClock(&s.startTime, value)
}

// SetEndTime sets the end time from a 24-hour HH:MM string.
func (s *DefaultEditSessionService) SetEndTime(value string) error {
	return s.setClock(&s.endTime, value)
}

func (s *DefaultEditSessionService) setClock(field *string, value string) error {
	if s.state != StateOpen {
		return fmt.Errorf("no open shift dialog")
	}
	if value == "" {
		*field = ""
		return nil
	}
	if _, err := time.Parse(clockLayout, value); err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	*field = value
	return nil
}

// IsSaveEnabled reports whether the save control is active: a role is
// selected, both times are set, and the end is strictly after the start.
// This is the only client-side validation; overlaps are the backend's call.
func (s *DefaultEditSessionService) IsSaveEnabled() bool {
	if s.roleID == 0 || s.startTime == "" || s.endTime == "" {
		return false
	}
	start, err := time.Parse(clockLayout, s.startTime)
	if err != nil {
		return false
	}
	end, err := time.Parse(clockLayout, s.endTime)
	if err != nil {
		return false
	}
	return end.After(start)
}

// Save submits the shift. On acceptance the session closes, the board is
// refreshed and a success notification fires. On a business rejection the
// session stays open with the backend's message inline so the operator can
// correct and retry; entered fields are kept. Repeated calls while a
// submission is in flight are suppressed.
func (s *DefaultEditSessionService) Save(ctx context.Context) error {
	if s.state != StateOpen {
		return nil
	}
	if !s.IsSaveEnabled() {
		return nil
	}

	isNew := s.mode == ModeAdd
	payload := models.ShiftUpsert{
		EmployeeID: s.employeeID,
		StartDate:  s.day,
		StartTime:  s.startTime,
		EndDate:    s.day,
		EndTime:    s.endTime,
		RoleID:     s.roleID,
	}
	if !isNew && s.editing != nil {
		payload.ID = s.editing.ID
	}

	s.state = StateSubmitting
	result, err := s.Shifts.Save(ctx, payload, isNew)
	if err != nil {
		s.state = StateOpen
		s.errorMessage = fmt.Sprintf("Error saving shift: %v", err)
		return err
	}
	if !result.IsSuccess {
		s.state = StateOpen
		if len(result.Errors) > 0 {
			s.errorMessage = strings.Join(result.Errors, ", ")
		} else {
			s.errorMessage = "Failed to save shift"
		}
		return nil
	}

	s.Logger.Debug("shift saved",
		zap.String("sessionId", s.sessionID),
		zap.Int("employeeId", payload.EmployeeID),
		zap.String("day", payload.StartDate),
	)
	s.reset()
	s.state = StateClosed
	if err := s.Grid.Refresh(ctx); err != nil {
		s.Logger.Warn("board refresh after save failed", zap.Error(err))
	}
	s.Notify.Notify(SeveritySuccess, result.Message)
	return nil
}

// RequestDelete opens the delete confirmation sub-dialog. Only an existing
// shift can be deleted.
func (s *DefaultEditSessionService) RequestDelete() {
	if s.state != StateOpen || s.editing == nil {
		return
	}
	s.deleteConfirm = true
}

// CancelDelete dismisses the confirmation and returns to the open dialog.
func (s *DefaultEditSessionService) CancelDelete() {
	s.deleteConfirm = false
}

// ConfirmDelete dispatches the delete and closes the dialog unconditionally,
// surfacing success or failure as a transient notification. This asymmetry
// with Save (which keeps the dialog open on failure) is deliberate.
func (s *DefaultEditSessionService) ConfirmDelete(ctx context.Context) error {
	if s.state != StateOpen || !s.deleteConfirm || s.editing == nil {
		return nil
	}
	s.deleteConfirm = false
	shiftID := s.editing.ID

	s.state = StateSubmitting
	result, err := s.Shifts.Delete(ctx, shiftID)

	s.reset()
	s.state = StateClosed

	if err != nil {
		s.Notify.Notify(SeverityError, err.Error())
		return err
	}
	if !result.IsSuccess {
		message := result.Message
		if message == "" {
			message = "Failed to delete shift"
		}
		s.Notify.Notify(SeverityError, message)
		return nil
	}

	if err := s.Grid.Refresh(ctx); err != nil {
		s.Logger.Warn("board refresh after delete failed", zap.Error(err))
	}
	message := result.Message
	if message == "" {
		message = "Shift deleted successfully"
	}
	s.Notify.Notify(SeveritySuccess, message)
	return nil
}

// Close discards all local edits without confirmation. Ignored while a
// submission is in flight.
func (s *DefaultEditSessionService) Close() {
	if s.state == StateSubmitting {
		return
	}
	s.reset()
	s.state = StateClosed
}

func (s *DefaultEditSessionService) reset() {
	s.sessionID = ""
	s.mode = ModeAdd
	s.employeeID = 0
	s.employeeName = ""
	s.day = ""
	s.editing = nil
	s.roles = nil
	s.roleID = 0
	s.startTime = ""
	s.endTime = ""
	s.deleteConfirm = false
	s.errorMessage = ""
}

func (s *DefaultEditSessionService) State() State {
	return s.state
}

func (s *DefaultEditSessionService) Mode() Mode {
	return s.mode
}

func (s *DefaultEditSessionService) EmployeeName() string {
	return s.employeeName
}

func (s *DefaultEditSessionService) Day() string {
	return s.day
}

func (s *DefaultEditSessionService) Roles() []models.Role {
	return s.roles
}

func (s *DefaultEditSessionService) ErrorMessage() string {
	return s.errorMessage
}

func (s *DefaultEditSessionService) DeleteConfirmOpen() bool {
	return s.deleteConfirm
}
