package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(clockIn time.Time, clockOut *time.Time) Attendance {
	return Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(), 0, 0, 0, 0, clockIn.Location()),
		ClockIn:    clockIn,
		ClockOut:   clockOut,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestDerive_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		clockIn  time.Time
		clockOut *time.Time
		want     string
	}{
		{"open record is present", at(8, 50), nil, StatusPresent},
		{"open late record is still present", at(9, 40), nil, StatusPresent},
		{"on time full day", at(8, 50), timePtr(at(17, 30)), StatusPresent},
		{"late start", at(9, 15), timePtr(at(18, 45)), StatusLate},
		{"short shift", at(10, 0), timePtr(at(13, 0)), StatusHalfDay},
		{"late wins over short shift", at(9, 30), timePtr(at(12, 0)), StatusLate},
		{"exactly four hours is a full day", at(10, 0), timePtr(at(14, 0)), StatusPresent},
		{"exactly nine is on time", at(9, 0), timePtr(at(17, 0)), StatusPresent},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Derive(record(tt.clockIn, tt.clockOut))
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestDerive_Overtime(t *testing.T) {
	t.Parallel()

	// Clock out exactly at 18:00 is not overtime.
	d := Derive(record(at(9, 0), timePtr(at(18, 0))))
	assert.False(t, d.IsOvertime)
	assert.Zero(t, d.OvertimeHours)

	// Whole minutes past 18:00 count.
	d = Derive(record(at(9, 0), timePtr(at(18, 45))))
	assert.True(t, d.IsOvertime)
	assert.InDelta(t, 0.75, d.OvertimeHours, 0.0001)
}

func TestDerive_Total(t *testing.T) {
	t.Parallel()

	d := Derive(record(at(8, 50), timePtr(at(17, 30))))
	require.NotNil(t, d.Total)
	assert.Equal(t, 8*time.Hour+40*time.Minute, *d.Total)

	d = Derive(record(at(8, 50), nil))
	assert.Nil(t, d.Total)
}

func TestDerive_IsIdempotent(t *testing.T) {
	t.Parallel()

	rec := record(at(9, 15), timePtr(at(18, 45)))
	first := Derive(rec)
	second := Derive(rec)
	assert.Equal(t, first, second)
}

func timePtr(t time.Time) *time.Time { return &t }
