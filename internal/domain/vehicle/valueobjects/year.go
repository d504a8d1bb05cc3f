package valueobjects

import (
	"fmt"
	"time"
)

// MinYear is the oldest model year the registry accepts.
const MinYear = 1900

// Year represents a vehicle model year. Next year's models are already on
// sale, so the range runs up to the current year plus one.
type Year struct {
	value int
}

// NewYear creates a new Year value object with validation against the
// current calendar year.
func NewYear(value int) (*Year, error) {
	return NewYearAt(value, time.Now())
}

// NewYearAt validates the year against the given reference time. Split out
// so tests can pin the current year.
func NewYearAt(value int, now time.Time) (*Year, error) {
	if value < MinYear {
		return nil, fmt.Errorf("year cannot be earlier than %d", MinYear)
	}
	max := now.Year() + 1
	if value > max {
		return nil, fmt.Errorf("year cannot be later than %d", max)
	}
	return &Year{value: value}, nil
}

// Int returns the year as an integer.
func (y *Year) Int() int {
	return y.value
}
