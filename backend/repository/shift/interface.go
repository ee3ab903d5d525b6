// File: backend/repository/shift/interface.go
package shiftRepo

import (
	"context"

	"shiftmanager/backend"
	"shiftmanager/models"
)

type ShiftRepository interface {
	FetchWeek(ctx context.Context, window models.WeekWindow) (models.ShiftBoard, error)
	Save(ctx context.Context, shift models.ShiftUpsert, isNew bool) (*models.MutationResult, error)
	Delete(ctx context.Context, shiftID int) (*models.DeleteResult, error)
}

type restShiftRepo struct {
	client *backend.Client
}

// NewRESTShiftRepo constructs a ShiftRepository backed by the REST API.
func NewRESTShiftRepo(client *backend.Client) ShiftRepository {
	return &restShiftRepo{client: client}
}
