// internal/time_parser.go
// ------------------------
// Helpers for the timestamps that cross the wire during pagination. Page
// envelopes report their cutoff in whatever format the endpoint grew up
// with (ISO-8601 with or without zone, epoch seconds, epoch millis), so
// parsing is delegated to dateparse and normalized to UTC.
package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseCutoff converts a server-reported cutoff timestamp into a UTC
// time.Time. Bare integers are treated as epoch seconds, or epoch
// milliseconds when they are too large to be plausible seconds.
func ParseCutoff(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty cutoff timestamp")
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse cutoff %q: %w", s, err)
	}
	return t.UTC(), nil
}
