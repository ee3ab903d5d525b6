// File: backend/repository/role/interface.go
package roleRepo

import (
	"context"

	"shiftmanager/backend"
	"shiftmanager/models"
)

type RoleRepository interface {
	List(ctx context.Context, query models.ListQuery) (*models.RolePage, error)
	All(ctx context.Context) ([]models.Role, error)
	ForEmployee(ctx context.Context, employeeID int) ([]models.Role, error)
	Save(ctx context.Context, role models.Role, isEditing bool) error
	Delete(ctx context.Context, roleID int) (*models.DeleteResult, error)
}

type restRoleRepo struct {
	client *backend.Client
}

// NewRESTRoleRepo constructs a RoleRepository backed by the REST API.
func NewRESTRoleRepo(client *backend.Client) RoleRepository {
	return &restRoleRepo{client: client}
}
