package model

import (
	"encoding/json"
	"fmt"
)

// Record is a team or member document as returned by the database API.
// Only _id, checked_in and the collection's display field are interpreted.
type Record map[string]any

// ID returns the opaque identifier exactly as decoded.
func (r Record) ID() (any, bool) {
	id, ok := r["_id"]
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}

// CheckedIn reports whether checked_in is the boolean true. Missing fields,
// false and truthy non-boolean values all report false.
func (r Record) CheckedIn() bool {
	v, ok := r["checked_in"].(bool)
	return ok && v
}

// Label returns the value of field for logging, falling back to the id.
func (r Record) Label(field string) string {
	if field != "" {
		if v, ok := r[field]; ok && v != nil {
			return fmt.Sprint(v)
		}
	}
	return FormatID(r["_id"])
}

// FormatID renders an identifier for log lines.
func FormatID(id any) string {
	switch v := id.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
