package attendance

import (
	"math"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/config"
)

// Policy evaluates check-in punctuality against a configured window.
// The window runs from StartHour to EndHour on the clock of the
// check-in timestamp itself; no timezone conversion happens here.
type Policy struct {
	StartHour int
	EndHour   int
}

// NewPolicy builds a Policy from the attendance configuration
func NewPolicy(cfg config.AttendanceConfig) Policy {
	return Policy{
		StartHour: cfg.OnTimeStartHour,
		EndHour:   cfg.OnTimeEndHour,
	}
}

// ClassifyCheckIn reports whether a check-in at t counts as late.
// Any minute inside the start hour is on time, the end hour only at
// minute zero exactly. A check-in at EndHour:00:30 is already late
// because the seconds push it past the boundary.
func (p Policy) ClassifyCheckIn(t time.Time) (isLate bool) {
	h, m, s := t.Hour(), t.Minute(), t.Second()

	switch {
	case h > p.StartHour && h < p.EndHour:
		return false
	case h == p.StartHour:
		return false
	case h == p.EndHour && m == 0 && s == 0 && t.Nanosecond() == 0:
		return false
	}
	return true
}

// ComputeWorkedDuration returns the worked minutes between check-in and
// check-out, rounded to the nearest minute and clamped at zero so a
// clock that moved backwards never yields negative time.
func ComputeWorkedDuration(checkIn, checkOut time.Time) int {
	minutes := math.Round(checkOut.Sub(checkIn).Minutes())
	if minutes < 0 {
		return 0
	}
	return int(minutes)
}

// MinutesToHours converts worked minutes to fractional hours rounded
// to two decimals, matching what the summary views display.
func MinutesToHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
