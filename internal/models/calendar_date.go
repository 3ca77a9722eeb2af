package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CalendarDate is a date column kept in the textual form the store returned.
// The empty value means the date is absent.
type CalendarDate string

// DateLayout is the canonical on-disk date form.
const DateLayout = "2006-01-02"

func NewCalendarDate(t time.Time) CalendarDate {
	return CalendarDate(t.Format(DateLayout))
}

// Scan implements sql.Scanner. Drivers that decode date columns into
// time.Time are normalised back to YYYY-MM-DD.
func (d *CalendarDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case string:
		*d = CalendarDate(v)
	case []byte:
		*d = CalendarDate(string(v))
	case time.Time:
		*d = CalendarDate(v.Format(DateLayout))
	default:
		*d = CalendarDate(fmt.Sprint(v))
	}
	return nil
}

// Value implements driver.Valuer, storing absent dates as NULL.
func (d CalendarDate) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d CalendarDate) String() string {
	return string(d)
}

func (d CalendarDate) IsZero() bool {
	return d == ""
}
