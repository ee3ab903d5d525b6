package models

type Employee struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// EmployeePage is the paged envelope of GET /employee.
type EmployeePage struct {
	Data []Employee `json:"data"`
	Meta PageMeta   `json:"meta"`
}

// EmployeeUpsert is the request body for POST /employee and PUT /employee/{id}.
// The backend expects capitalised keys; Id is present only when editing.
type EmployeeUpsert struct {
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	ID        *int   `json:"Id,omitempty"`
	Roles     []Role `json:"Roles"`
}
