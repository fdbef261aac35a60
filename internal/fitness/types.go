package fitness

import (
	"encoding/json"
	"strconv"
)

// Document is a backend JSON object passed through without interpretation.
type Document map[string]any

// Resource documents. The backend owns their shape.
type (
	CalendarEntry = Document
	Exercise      = Document
	Template      = Document
	Session       = Document
)

// ProgressReport is the server-computed aggregate from /reports/progress.
type ProgressReport = json.RawMessage

// SetRecord is the body of a record-set call.
type SetRecord struct {
	SetNumber            int `json:"setNumber"`
	ActualRepsOrDuration int `json:"actualRepsOrDuration"`
	RestAfterSetSeconds  int `json:"restAfterSetSeconds"`
}

type startSessionRequest struct {
	UserID          string `json:"userId"`
	CalendarEntryID string `json:"calendarEntryId"`
}

// ID returns the document's id field as a string.
func (d Document) ID() string {
	return d.String("id")
}

// String returns a scalar field formatted as a string, or "" when the field
// is missing or not a scalar.
func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// Documents returns the array field key as documents, skipping non-object
// elements.
func (d Document) Documents(key string) []Document {
	raw, ok := d[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Document, 0, len(raw))
	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Document(obj))
		}
	}
	return out
}

// UserID returns the session's userId.
func (d Document) UserID() string { return d.String("userId") }

// CalendarEntryID returns the session's calendarEntryId.
func (d Document) CalendarEntryID() string { return d.String("calendarEntryId") }
