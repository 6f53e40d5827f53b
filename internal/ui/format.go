package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatValue renders a field value for read-only display: empty and nil
// become "N/A", booleans become Yes/No.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "N/A"
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case string:
		if t == "" {
			return "N/A"
		}
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return "N/A"
	}
}

// rawString converts a decoded JSON value to its literal string form,
// collapsing float64 whole numbers so epoch timestamps keep their digits.
func rawString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// FormatDate renders a backend timestamp for display. The backend emits
// epoch milliseconds (sometimes as a string) or an RFC 3339 date. Empty
// input renders "N/A", unparseable input "Invalid date".
func FormatDate(input string) string {
	s := strings.TrimSpace(input)
	if s == "" || s == "null" {
		return "N/A"
	}

	var ts time.Time
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		ts = time.UnixMilli(ms)
	} else if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		ts = parsed
	} else if parsed, err := time.Parse("2006-01-02", s); err == nil {
		ts = parsed
	} else {
		return "Invalid date"
	}

	return ts.Format("Jan 2, 2006") + " · " + ts.Format("3:04 PM")
}

// IsImagePath reports whether a stored file path looks like an image, which
// selects inline preview over a download link.
func IsImagePath(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
