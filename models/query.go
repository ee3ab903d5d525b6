package models

// ColumnFilter is one per-column filter entry. Value is opaque to the client;
// the backend is the sole source of truth for filter application.
type ColumnFilter struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

// ColumnSort is one entry of the ordered sort list.
type ColumnSort struct {
	ID   string `json:"id"`
	Desc bool   `json:"desc"`
}

// ListQuery carries pagination, filtering and sorting for the paged list
// endpoints. Filters and Sorting are JSON-encoded into query parameters.
type ListQuery struct {
	Start        int
	Size         int
	Filters      []ColumnFilter
	GlobalFilter string
	Sorting      []ColumnSort
}

type PageMeta struct {
	TotalRowCount int `json:"totalRowCount"`
}
