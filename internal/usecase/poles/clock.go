package poles

import (
	"fmt"
	"time"
)

// DayClock converts instants into canonical day keys for a fixed timezone.
// A day key is the start of the calendar day in that timezone, in Unix
// milliseconds; it is stable within a day and strictly increases across days.
type DayClock struct {
	loc *time.Location
}

// NewDayClock loads the timezone. An unknown zone is a startup failure.
func NewDayClock(tz string) (*DayClock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", tz, err)
	}
	return &DayClock{loc: loc}, nil
}

// DayKey truncates t to the start of its calendar day in the clock's timezone.
func (c *DayClock) DayKey(t time.Time) int64 {
	local := t.In(c.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
	return start.UnixMilli()
}

// Today is the day key for the current instant.
func (c *DayClock) Today() int64 {
	return c.DayKey(time.Now())
}
