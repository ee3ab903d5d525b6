// File: backend/repository/employee/interface.go
package employeeRepo

import (
	"context"

	"shiftmanager/backend"
	"shiftmanager/models"
)

type EmployeeRepository interface {
	List(ctx context.Context, query models.ListQuery) (*models.EmployeePage, error)
	Save(ctx context.Context, employee models.Employee, roles []models.Role, isEditing bool) error
	Delete(ctx context.Context, employeeID int) (*models.DeleteResult, error)
}

type restEmployeeRepo struct {
	client *backend.Client
}

// NewRESTEmployeeRepo constructs an EmployeeRepository backed by the REST API.
func NewRESTEmployeeRepo(client *backend.Client) EmployeeRepository {
	return &restEmployeeRepo{client: client}
}
