// Package pagination implements keyset pagination over date-ordered rows.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	dateLayout = "2006-01-02"
)

// ErrInvalidCursor is returned for a cursor that was not produced by Encode.
var ErrInvalidCursor = errors.New("invalid page cursor")

// Cursor points at the last row of a page. Pages are ordered by calendar
// date descending, then id descending.
type Cursor struct {
	Day string    `json:"d"`
	ID  uuid.UUID `json:"i"`
}

// NewCursor builds the cursor for a row dated date.
func NewCursor(date time.Time, id uuid.UUID) *Cursor {
	return &Cursor{Day: date.Format(dateLayout), ID: id}
}

// Encode returns the opaque URL-safe form of the cursor.
func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// Date returns the cursor's calendar date as UTC midnight.
func (c *Cursor) Date() time.Time {
	d, _ := time.Parse(dateLayout, c.Day)
	return d
}

// DecodeCursor parses an encoded cursor. An empty string yields a nil cursor.
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, ErrInvalidCursor
	}
	if _, err := time.Parse(dateLayout, cursor.Day); err != nil || cursor.ID == uuid.Nil {
		return nil, ErrInvalidCursor
	}

	return &cursor, nil
}

// NormalizeLimit ensures limit is within bounds
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Trim cuts a result fetched with limit+1 rows down to the page and reports
// whether another page follows.
func Trim[T any](rows []T, limit int) ([]T, bool) {
	limit = NormalizeLimit(limit)
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
