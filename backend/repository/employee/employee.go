// File: backend/repository/employee/employee.go
package employeeRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"shiftmanager/backend"
	"shiftmanager/models"
)

// List fetches one page of the roster. Pagination, filtering and sorting are
// applied by the backend; the adapter only encodes them.
func (r *restEmployeeRepo) List(ctx context.Context, query models.ListQuery) (*models.EmployeePage, error) {
	var page models.EmployeePage
	if err := r.client.GetJSON(ctx, "/employee", backend.QueryValues(query), &page); err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	return &page, nil
}

// Save creates or updates an employee together with its role assignments.
// Names are trimmed before sending and Id is included only when editing,
// matching what the backend expects.
func (r *restEmployeeRepo) Save(ctx context.Context, employee models.Employee, roles []models.Role, isEditing bool) error {
	body := models.EmployeeUpsert{
		FirstName: strings.TrimSpace(employee.FirstName),
		LastName:  strings.TrimSpace(employee.LastName),
		Roles:     roles,
	}
	method := http.MethodPost
	path := "/employee"
	if isEditing {
		id := employee.ID
		body.ID = &id
		method = http.MethodPut
		path = fmt.Sprintf("/employee/%d", employee.ID)
	}

	resp, err := r.client.Do(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !backend.IsSuccessStatus(resp.StatusCode) {
		return &backend.StatusError{StatusCode: resp.StatusCode, Message: backend.DecodeMessage(resp.Body)}
	}
	return nil
}

// Delete removes the employee by id, distinguishing 404 via StatusError.
func (r *restEmployeeRepo) Delete(ctx context.Context, employeeID int) (*models.DeleteResult, error) {
	resp, err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/employee/%d", employeeID), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !backend.IsSuccessStatus(resp.StatusCode) {
		message := backend.DecodeMessage(resp.Body)
		if message == "" {
			if resp.StatusCode == http.StatusNotFound {
				message = "Employee not found"
			} else {
				message = "Failed to delete employee"
			}
		}
		return nil, &backend.StatusError{StatusCode: resp.StatusCode, Message: message}
	}

	var result models.DeleteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, backend.NewRequestError("decode delete response", err)
	}
	return &result, nil
}
