package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// DefaultLimit is the page size used when the caller gives none.
const DefaultLimit = 50

// MaxLimit caps the page size a caller may ask for.
const MaxLimit = 500

// Cursor identifies the last item of a page in newest-first order.
type Cursor struct {
	Date time.Time
	ID   string
}

// EncodeToken creates a base64 encoded token from a transaction date and id.
func EncodeToken(date time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", date.Format(timeFormat), id)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	return Cursor{Date: date, ID: parts[1]}, nil
}

// Encode is EncodeToken for c.
func (c Cursor) Encode() string {
	return EncodeToken(c.Date, c.ID)
}

// Follows reports whether an item with the given date and id comes after the
// cursor when sorted by date descending, then id descending.
func (c Cursor) Follows(date time.Time, id string) bool {
	if date.Equal(c.Date) {
		return id < c.ID
	}
	return date.Before(c.Date)
}

// NormalizeLimit clamps a requested page size into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
