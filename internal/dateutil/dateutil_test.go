package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeToMinutes(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestRangeFor(t *testing.T) {
	base := date("2025-06-18") // a Wednesday

	tests := []struct {
		kind  RangeKind
		start string
		end   string
	}{
		{RangeWeek, "2025-06-16", "2025-06-22"},
		{RangeMonth, "2025-06-01", "2025-06-30"},
		{RangeYear, "2025-01-01", "2025-12-31"},
		{RangeLast7Days, "2025-06-12", "2025-06-18"},
		{RangeLast30Days, "2025-05-20", "2025-06-18"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			r := RangeFor(tt.kind, base)
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, tt.end, r.End)
		})
	}
}

func TestStartOfWeek_SundayBelongsToPreviousMonday(t *testing.T) {
	// 2025-06-22 is a Sunday; its week started Monday the 16th.
	assert.Equal(t, "2025-06-16", FormatDate(StartOfWeek(date("2025-06-22"))))
	// Monday is its own week start.
	assert.Equal(t, "2025-06-16", FormatDate(StartOfWeek(date("2025-06-16"))))
}

func TestCustomMonthRange(t *testing.T) {
	tests := []struct {
		name     string
		startDay int
		base     string
		start    string
		end      string
	}{
		{"on or after start day", 15, "2025-06-20", "2025-06-15", "2025-07-14"},
		{"exactly on start day", 15, "2025-06-15", "2025-06-15", "2025-07-14"},
		{"before start day", 15, "2025-06-10", "2025-05-15", "2025-06-14"},
		{"january rolls back a year", 15, "2025-01-10", "2024-12-15", "2025-01-14"},
		{"december rolls into next year", 15, "2025-12-20", "2025-12-15", "2026-01-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CustomMonthRange(tt.startDay, date(tt.base))
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, tt.end, r.End)
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: "2025-06-01", End: "2025-06-30"}

	assert.True(t, r.Contains("2025-06-01"))
	assert.True(t, r.Contains("2025-06-30"))
	assert.True(t, r.Contains("2025-06-15"))
	assert.False(t, r.Contains("2025-05-31"))
	assert.False(t, r.Contains("2025-07-01"))
}

func TestDaysInRange(t *testing.T) {
	days := DaysInRange("2025-06-28", "2025-07-02")
	assert.Equal(t, []string{"2025-06-28", "2025-06-29", "2025-06-30", "2025-07-01", "2025-07-02"}, days)

	assert.Nil(t, DaysInRange("2025-07-02", "2025-06-28"))
	assert.Nil(t, DaysInRange("bad", "2025-06-28"))
}
