package models

type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RolePage is the paged envelope of GET /role and GET /role/all.
type RolePage struct {
	Data []Role   `json:"data"`
	Meta PageMeta `json:"meta"`
}

// RoleUpsert is the request body for POST /role and PUT /role/{id}.
type RoleUpsert struct {
	ID   *int   `json:"Id,omitempty"`
	Name string `json:"Name"`
}
