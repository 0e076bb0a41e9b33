package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimestampLayout is the layout of LogRecord.Timestamp: 24-hour clock, zero padded.
const TimestampLayout = "2006-01-02 15:04:05"

// time.Parse tolerates fractional seconds and unpadded hours, so the shape is checked first.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

var ErrTimestampFormat = errors.New("timestamp does not match " + TimestampLayout)

// ParseTimestamp parses a log timestamp. Anything but the exact layout is rejected.
func ParseTimestamp(s string) (time.Time, error) {
	if !timestampPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTimestampFormat, s)
	}
	return time.Parse(TimestampLayout, s)
}

// HourBucket returns the HourlyTotals key of t, the zero-padded hour ("00".."23").
func HourBucket(t time.Time) string {
	return fmt.Sprintf("%02d", t.Hour())
}
