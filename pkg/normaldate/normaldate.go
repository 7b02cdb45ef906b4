package normaldate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a value cannot be interpreted as a calendar
// date.
var ErrInvalidDate = errors.New("invalid normal date")

// Date is a calendar date encoded as YYYYMMDD, e.g. 20060102 for
// January 2, 2006.
type Date int

// New interprets v as a Date. Accepted forms: an existing Date, any native
// integer in YYYYMMDD form, a string in "20060102", "2006-01-02" or
// "2006/01/02" layout, and a time.Time.
func New(v any) (Date, error) {
	switch x := v.(type) {
	case Date:
		return x, nil
	case int:
		return FromInt(x)
	case int32:
		return FromInt(int(x))
	case int64:
		return FromInt(int(x))
	case string:
		return Parse(x)
	case time.Time:
		return FromTime(x), nil
	}
	return 0, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidDate, v, v)
}

// FromInt validates n as a YYYYMMDD encoding.
func FromInt(n int) (Date, error) {
	d := Date(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDate, n)
	}
	return d, nil
}

// Parse reads a date string in "20060102", "2006-01-02" or "2006/01/02"
// layout.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	compact := strings.NewReplacer("-", "", "/", "").Replace(s)
	if len(compact) != 8 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	n, err := strconv.Atoi(compact)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromInt(n)
}

// FromTime truncates t to its calendar date.
func FromTime(t time.Time) Date {
	return Date(t.Year()*10000 + int(t.Month())*100 + t.Day())
}

// Year returns the four-digit year.
func (d Date) Year() int { return int(d) / 10000 }

// Month returns the calendar month.
func (d Date) Month() time.Month { return time.Month(int(d) / 100 % 100) }

// Day returns the day of the month.
func (d Date) Day() int { return int(d) % 100 }

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Valid reports whether the encoding denotes a real calendar date.
func (d Date) Valid() bool {
	y, m, day := d.Year(), d.Month(), d.Day()
	if y < 1 || y > 9999 {
		return false
	}
	t := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return t.Year() == y && t.Month() == m && t.Day() == day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}
