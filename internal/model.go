package internal

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the on-disk text form of sleep and wake times.
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp is a wall-clock time with no zone. It is stored in UTC so that
// subtraction never crosses a DST transition.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

func ParseTimestampText(s string) (Timestamp, error) {
	// time.Parse tolerates trailing fractional seconds, which older files carry.
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp{t}, nil
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// MarshalJSON overrides the RFC 3339 form promoted from time.Time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestampText(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SleepEntry is one logged night. DurationHours is derived once, when the
// entry is recorded, and stored alongside the two timestamps.
type SleepEntry struct {
	SleepTime     Timestamp `json:"sleep_time"`
	WakeTime      Timestamp `json:"wake_time"`
	DurationHours float64   `json:"duration_hours"`
}
