// File: backend/repository/shift/shift.go
package shiftRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"shiftmanager/backend"
	"shiftmanager/models"
)

const dateLayout = "2006-01-02"

// FetchWeek retrieves all shifts for the window in a single request and
// reshapes the flat per-employee response into the board keyed by display
// name and day. The board is rebuilt wholesale; per-day order preserves the
// server response order.
func (r *restShiftRepo) FetchWeek(ctx context.Context, window models.WeekWindow) (models.ShiftBoard, error) {
	query := url.Values{}
	query.Set("startOfWeek", window.Start.Format(dateLayout))
	query.Set("endOfWeek", window.End.Format(dateLayout))

	var entries []models.WeekShiftsEntry
	if err := r.client.GetJSON(ctx, "/shift/week", query, &entries); err != nil {
		return nil, fmt.Errorf("failed to fetch shifts for week: %w", err)
	}

	board := models.ShiftBoard{}
	for _, entry := range entries {
		fullName := entry.FirstName + " " + entry.LastName
		week := models.EmployeeWeek{
			EmployeeID:  entry.ID,
			ShiftsByDay: map[string][]models.Shift{},
		}
		for _, shift := range entry.Shifts {
			dayKey := shift.StartDate
			week.ShiftsByDay[dayKey] = append(week.ShiftsByDay[dayKey], shift)
		}
		board[fullName] = week
	}
	return board, nil
}

// Save creates the shift with POST when isNew, otherwise updates it with PUT
// keyed by its id. A 2xx response with isSuccess:false is a business
// rejection and comes back in the result, not as an error; the error return
// is reserved for transport and decoding failures.
func (r *restShiftRepo) Save(ctx context.Context, shift models.ShiftUpsert, isNew bool) (*models.MutationResult, error) {
	method := http.MethodPut
	path := fmt.Sprintf("/shift/%d", shift.ID)
	if isNew {
		method = http.MethodPost
		path = "/shift"
	}

	resp, err := r.client.Do(ctx, method, path, nil, shift)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result models.MutationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if !backend.IsSuccessStatus(resp.StatusCode) {
			return nil, &backend.StatusError{StatusCode: resp.StatusCode}
		}
		return nil, backend.NewRequestError("decode save response", err)
	}
	// The backend may answer a rejected save with a non-2xx status but a
	// decodable errors body; the caller still surfaces those inline.
	if !backend.IsSuccessStatus(resp.StatusCode) {
		result.IsSuccess = false
	}
	return &result, nil
}

// Delete removes the shift by id. A 404 surfaces the backend's message as a
// StatusError so callers can tell "not found" from other failures; a 2xx
// response returns the envelope whether or not the backend accepted it.
func (r *restShiftRepo) Delete(ctx context.Context, shiftID int) (*models.DeleteResult, error) {
	resp, err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/shift/%d", shiftID), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !backend.IsSuccessStatus(resp.StatusCode) {
		message := backend.DecodeMessage(resp.Body)
		if message == "" && resp.StatusCode != http.StatusNotFound {
			message = "Failed to delete shift"
		}
		return nil, &backend.StatusError{StatusCode: resp.StatusCode, Message: message}
	}

	var result models.DeleteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, backend.NewRequestError("decode delete response", err)
	}
	return &result, nil
}
