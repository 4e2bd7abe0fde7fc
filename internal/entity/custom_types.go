package entity

import (
	"time"
)

// DateOnly is a calendar date without a time-of-day component, matching
// the upstream "2006-01-02" wire format.
type DateOnly struct {
	time.Time
}

const dateOnlyLayout = "2006-01-02"

func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(`"`+dateOnlyLayout+`"`, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateOnlyLayout) + `"`), nil
}

func (d DateOnly) String() string {
	return d.Format(dateOnlyLayout)
}
