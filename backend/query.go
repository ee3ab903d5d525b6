// File: backend/query.go
package backend

import (
	"encoding/json"
	"net/url"
	"strconv"

	"shiftmanager/models"
)

// QueryValues encodes a ListQuery into the start/size/filters/globalFilter/
// sorting query parameters the paged list endpoints expect. Filters and
// sorting travel as JSON arrays; the backend applies them, the client never
// filters locally.
func QueryValues(q models.ListQuery) url.Values {
	filters := q.Filters
	if filters == nil {
		filters = []models.ColumnFilter{}
	}
	sorting := q.Sorting
	if sorting == nil {
		sorting = []models.ColumnSort{}
	}

	// Marshalling plain slices of tagged structs cannot fail.
	filtersJSON, _ := json.Marshal(filters)
	sortingJSON, _ := json.Marshal(sorting)

	values := url.Values{}
	values.Set("start", strconv.Itoa(q.Start))
	values.Set("size", strconv.Itoa(q.Size))
	values.Set("filters", string(filtersJSON))
	values.Set("globalFilter", q.GlobalFilter)
	values.Set("sorting", string(sortingJSON))
	return values
}
