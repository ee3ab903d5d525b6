package models

// Shift is one scheduled work interval for one employee, one role, one day.
// An ID of 0 marks a shift that has not been created on the backend yet.
type Shift struct {
	ID         int    `json:"id"`
	RoleID     int    `json:"roleId"`
	EmployeeID int    `json:"employeeId"`
	StartDate  string `json:"startDate"`
	StartTime  string `json:"startTime"`
	EndDate    string `json:"endDate"`
	EndTime    string `json:"endTime"`
	Role       string `json:"role"`
}

// ShiftUpsert is the request body for POST /shift and PUT /shift/{id}.
type ShiftUpsert struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"employeeId"`
	StartDate  string `json:"startDate"`
	StartTime  string `json:"startTime"`
	EndDate    string `json:"endDate"`
	EndTime    string `json:"endTime"`
	RoleID     int    `json:"roleId"`
}

// WeekShiftsEntry is one element of the GET /shift/week response.
type WeekShiftsEntry struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Shifts    []Shift `json:"shifts"`
}

// EmployeeWeek groups one employee's shifts for the displayed week by day key.
type EmployeeWeek struct {
	EmployeeID  int
	ShiftsByDay map[string][]Shift
}

// ShiftBoard maps employee display name ("firstName lastName") to that
// employee's week. Rebuilt wholesale on every successful fetch.
type ShiftBoard map[string]EmployeeWeek

// MutationResult is the backend envelope for shift create/update responses.
type MutationResult struct {
	IsSuccess bool     `json:"isSuccess"`
	Message   string   `json:"message"`
	Errors    []string `json:"errors,omitempty"`
}

// DeleteResult is the backend envelope for delete responses.
type DeleteResult struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
}
