package models

import "time"

// WeekWindow is the Monday..Sunday span currently displayed. Derived from the
// anchor date, never persisted.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}
