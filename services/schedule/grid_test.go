package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"shiftmanager/models"
)

// fakeShiftRepo returns queued boards (or errors) and records the windows it
// was asked for.
type fakeShiftRepo struct {
	boards  []models.ShiftBoard
	errs    []error
	windows []models.WeekWindow
}

func (f *fakeShiftRepo) FetchWeek(ctx context.Context, window models.WeekWindow) (models.ShiftBoard, error) {
	f.windows = append(f.windows, window)
	call := len(f.windows) - 1
	if call < len(f.errs) && f.errs[call] != nil {
		return nil, f.errs[call]
	}
	if call < len(f.boards) {
		return f.boards[call], nil
	}
	return models.ShiftBoard{}, nil
}

func (f *fakeShiftRepo) Save(ctx context.Context, shift models.ShiftUpsert, isNew bool) (*models.MutationResult, error) {
	return &models.MutationResult{IsSuccess: true}, nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, shiftID int) (*models.DeleteResult, error) {
	return &models.DeleteResult{IsSuccess: true}, nil
}

func TestGoToAdjacentWeek(t *testing.T) {
	ctx := context.Background()
	anchor := date(2025, time.June, 4)

	t.Run("NextShiftsWindowForward", func(t *testing.T) {
		repo := &fakeShiftRepo{}
		grid := NewDefaultWeekGridService(repo, zap.NewNop(), anchor)

		if err := grid.GoToAdjacentWeek(ctx, DirectionNext); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := DayKey(grid.Window().Start), "2025-06-09"; got != want {
			t.Errorf("expected window start %s, got %s", want, got)
		}
		if len(repo.windows) != 1 {
			t.Fatalf("expected 1 fetch, got %d", len(repo.windows))
		}
		if got, want := DayKey(repo.windows[0].Start), "2025-06-09"; got != want {
			t.Errorf("fetched window start %s, want %s", got, want)
		}
	})

	t.Run("RoundTripReturnsToSameWeek", func(t *testing.T) {
		repo := &fakeShiftRepo{}
		grid := NewDefaultWeekGridService(repo, zap.NewNop(), anchor)
		before := grid.Window()

		if err := grid.GoToAdjacentWeek(ctx, DirectionNext); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := grid.GoToAdjacentWeek(ctx, DirectionPrevious); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if grid.Window() != before {
			t.Errorf("expected window %v after round trip, got %v", before, grid.Window())
		}
		if WeekBoundsFor(grid.Anchor()) != before {
			t.Errorf("anchor %v no longer resolves to the original week", grid.Anchor())
		}
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	anchor := date(2025, time.June, 4)

	board := models.ShiftBoard{
		"Ada Lovelace": {
			EmployeeID: 1,
			ShiftsByDay: map[string][]models.Shift{
				"2025-06-02": {{ID: 10, Role: "Cashier", StartTime: "09:00", EndTime: "17:00"}},
			},
		},
	}

	t.Run("ReplacesBoard", func(t *testing.T) {
		repo := &fakeShiftRepo{boards: []models.ShiftBoard{board}}
		grid := NewDefaultWeekGridService(repo, zap.NewNop(), anchor)

		if err := grid.Refresh(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		shifts := grid.ShiftsFor("Ada Lovelace", "2025-06-02")
		if len(shifts) != 1 || shifts[0].ID != 10 {
			t.Errorf("expected shift 10 on the board, got %v", shifts)
		}
	})

	t.Run("FailureKeepsPreviousBoard", func(t *testing.T) {
		repo := &fakeShiftRepo{
			boards: []models.ShiftBoard{board, nil},
			errs:   []error{nil, fmt.Errorf("backend unreachable")},
		}
		grid := NewDefaultWeekGridService(repo, zap.NewNop(), anchor)

		if err := grid.Refresh(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := grid.Refresh(ctx); err == nil {
			t.Fatal("expected error from second refresh")
		}
		if got := grid.ShiftsFor("Ada Lovelace", "2025-06-02"); len(got) != 1 {
			t.Errorf("previous board was lost on failed refresh: %v", got)
		}
	})

	t.Run("UnknownCellsAreEmpty", func(t *testing.T) {
		repo := &fakeShiftRepo{boards: []models.ShiftBoard{board}}
		grid := NewDefaultWeekGridService(repo, zap.NewNop(), anchor)
		if err := grid.Refresh(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := grid.ShiftsFor("Ada Lovelace", "2025-06-03"); len(got) != 0 {
			t.Errorf("expected empty slice for empty day, got %v", got)
		}
		if got := grid.ShiftsFor("Grace Hopper", "2025-06-02"); len(got) != 0 {
			t.Errorf("expected empty slice for unknown employee, got %v", got)
		}
	})
}
