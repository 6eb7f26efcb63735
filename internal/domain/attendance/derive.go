package attendance

import "time"

const (
	lateThresholdMinutes     = 9 * 60  // 09:00
	overtimeThresholdMinutes = 18 * 60 // 18:00
	minimumShift             = 4 * time.Hour
)

// Derived holds the per-record fields computed on every read. None of them
// are persisted.
type Derived struct {
	Status        string
	IsLate        bool
	IsOvertime    bool
	IsWeekend     bool
	OvertimeHours float64
	Total         *time.Duration
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Derive computes status, lateness, overtime and worked duration for a
// record. Status ordering is fixed: an open record is PRESENT; a closed one
// is LATE before it can be HALF_DAY, even when both conditions hold.
func Derive(a Attendance) Derived {
	d := Derived{
		Status: StatusPresent,
		IsLate: minutesOfDay(a.ClockIn) > lateThresholdMinutes,
		// TODO: populate once weekend shifts get their own marking rule.
		IsWeekend: false,
	}

	if a.ClockOut == nil {
		return d
	}

	total := a.ClockOut.Sub(a.ClockIn)
	d.Total = &total
	d.IsOvertime = minutesOfDay(*a.ClockOut) > overtimeThresholdMinutes

	switch {
	case d.IsLate:
		d.Status = StatusLate
	case total < minimumShift:
		d.Status = StatusHalfDay
	}

	if d.IsOvertime {
		overtimeStart := time.Date(
			a.Date.Year(), a.Date.Month(), a.Date.Day(),
			18, 0, 0, 0,
			a.ClockOut.Location(),
		)
		if a.ClockOut.After(overtimeStart) {
			minutes := int(a.ClockOut.Sub(overtimeStart).Minutes())
			d.OvertimeHours = float64(minutes) / 60.0
		}
	}

	return d
}
