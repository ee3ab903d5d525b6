// File: backend/repository/role/role.go
package roleRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"shiftmanager/backend"
	"shiftmanager/models"
)

// List fetches one page of roles with server-side paging/filtering/sorting.
func (r *restRoleRepo) List(ctx context.Context, query models.ListQuery) (*models.RolePage, error) {
	var page models.RolePage
	if err := r.client.GetJSON(ctx, "/role", backend.QueryValues(query), &page); err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}
	return &page, nil
}

// All fetches the full unpaged role list used to populate role pickers.
func (r *restRoleRepo) All(ctx context.Context) ([]models.Role, error) {
	var page models.RolePage
	if err := r.client.GetJSON(ctx, "/role/all", nil, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch all roles: %w", err)
	}
	return page.Data, nil
}

// ForEmployee fetches the roles assigned to one employee. The edit session
// calls this fresh on every dialog open.
func (r *restRoleRepo) ForEmployee(ctx context.Context, employeeID int) ([]models.Role, error) {
	query := url.Values{}
	query.Set("employeeId", strconv.Itoa(employeeID))

	var roles []models.Role
	if err := r.client.GetJSON(ctx, "/Role/employee", query, &roles); err != nil {
		return nil, fmt.Errorf("failed to fetch roles for employee %d: %w", employeeID, err)
	}
	return roles, nil
}

// Save creates or updates a role. The backend answers a successful role save
// with a non-empty body; an empty 2xx body is treated as a failure.
func (r *restRoleRepo) Save(ctx context.Context, role models.Role, isEditing bool) error {
	body := models.RoleUpsert{Name: role.Name}
	method := http.MethodPost
	path := "/role"
	if isEditing {
		id := role.ID
		body.ID = &id
		method = http.MethodPut
		path = fmt.Sprintf("/role/%d", role.ID)
	}

	resp, err := r.client.Do(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return backend.NewRequestError("read save response", err)
	}
	if !backend.IsSuccessStatus(resp.StatusCode) {
		return &backend.StatusError{StatusCode: resp.StatusCode}
	}
	if len(raw) == 0 {
		return fmt.Errorf("no content in role save response")
	}
	return nil
}

// Delete removes the role by id, distinguishing 404 via StatusError.
func (r *restRoleRepo) Delete(ctx context.Context, roleID int) (*models.DeleteResult, error) {
	resp, err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/role/%d", roleID), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !backend.IsSuccessStatus(resp.StatusCode) {
		message := backend.DecodeMessage(resp.Body)
		if message == "" {
			if resp.StatusCode == http.StatusNotFound {
				message = "Role not found"
			} else {
				message = "Failed to delete role"
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
