package utils

import (
	"os"
	"strings"
	"time"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// Accepted stay date layouts. The front-end sends either a bare date or a
// seconds-precision local datetime.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// ParseStayDate parses the wire date format: "YYYY-MM-DDTHH:mm:ss", with a
// bare "YYYY-MM-DD" coerced by appending T00:00:00. RFC3339 values with a
// zone suffix are accepted too.
func ParseStayDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "T") {
		raw += "T00:00:00"
	}
	if t, err := time.Parse(dateTimeLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// FormatStayDate renders a time in the wire format the backend accepts.
func FormatStayDate(t time.Time) string {
	return t.Format(dateTimeLayout)
}
