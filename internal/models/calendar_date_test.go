package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarDate_Scan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  CalendarDate
	}{
		{name: "nil is absent", input: nil, want: ""},
		{name: "text kept as-is", input: "2024-03-15", want: "2024-03-15"},
		{name: "timestamp text kept as-is", input: "2024-03-15T10:00:00Z", want: "2024-03-15T10:00:00Z"},
		{name: "bytes", input: []byte("2024-01-02"), want: "2024-01-02"},
		{name: "driver time", input: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), want: "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d CalendarDate
			require.NoError(t, d.Scan(tt.input))
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestCalendarDate_Value(t *testing.T) {
	v, err := CalendarDate("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = CalendarDate("2024-05-01").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", v)
}

func TestNewCalendarDate(t *testing.T) {
	d := NewCalendarDate(time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, CalendarDate("2023-12-31"), d)
	assert.False(t, d.IsZero())
}
