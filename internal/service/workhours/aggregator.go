package workhours

import (
	"math"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/domain/attendance"
	"github.com/ems-labs/ems-backend-go/internal/domain/workhours"
)

// weekdayOrder fixes the bucket layout of the weekly breakdown,
// Monday first.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Aggregator folds raw attendance records into weekday buckets and
// summary statistics. It holds no state between calls; every summary
// is re-derived from the full record set, so feeding it the same
// records twice yields the same result.
type Aggregator struct {
	DailyTargetHours float64
}

// NewAggregator builds an Aggregator with the given daily target
func NewAggregator(dailyTargetHours int) Aggregator {
	return Aggregator{DailyTargetHours: float64(dailyTargetHours)}
}

// targetFor returns the target hours for a weekday. Weekends carry no
// target; hours worked on them count entirely as overtime.
func (a Aggregator) targetFor(day time.Weekday) float64 {
	if day == time.Saturday || day == time.Sunday {
		return 0
	}
	return a.DailyTargetHours
}

// recordHours returns the hours one record contributes. A closed
// session contributes its recorded span; a session that is still open
// accrues up to now. Records with no check-in contribute nothing.
func recordHours(rec attendance.Attendance, now time.Time) (float64, bool) {
	if rec.CheckIn == nil {
		return 0, false
	}

	var minutes float64
	if rec.CheckOut != nil {
		minutes = math.Round(rec.CheckOut.Sub(*rec.CheckIn).Minutes())
	} else {
		minutes = math.Round(now.Sub(*rec.CheckIn).Minutes())
	}
	if minutes < 0 {
		minutes = 0
	}
	return minutes / 60, true
}

// Summarize folds the records into the weekly breakdown and stats.
// Buckets are keyed by the weekday of the check-in timestamp; multiple
// records on the same weekday accumulate into one bucket. The stats
// count calendar days, not buckets: every record with a positive
// duration is one worked day, contributes one flat daily target, and
// is measured against its own weekday target for under-hours and
// overtime.
func (a Aggregator) Summarize(records []attendance.Attendance, now time.Time) ([]workhours.DaySummary, workhours.Stats) {
	buckets := make(map[time.Weekday]float64, len(weekdayOrder))

	var (
		totalHours      float64
		daysWorked      int
		daysUnderTarget int
		overtimeHours   float64
	)

	for _, rec := range records {
		hours, ok := recordHours(rec, now)
		if !ok {
			continue
		}
		day := rec.CheckIn.Weekday()
		buckets[day] += hours

		if hours == 0 {
			continue
		}
		totalHours += hours
		daysWorked++
		if target := a.targetFor(day); hours < target {
			daysUnderTarget++
		} else if hours > target {
			overtimeHours += hours - target
		}
	}

	weekdays := make([]workhours.DaySummary, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		hours := buckets[day]
		target := a.targetFor(day)

		status := workhours.DayStatusOff
		if hours > 0 {
			switch {
			case hours < target:
				status = workhours.DayStatusUnder
			case hours == target:
				status = workhours.DayStatusComplete
			default:
				status = workhours.DayStatusOver
			}
		}

		weekdays = append(weekdays, workhours.DaySummary{
			Day:         day.String(),
			Hours:       round2(hours),
			TargetHours: target,
			Status:      status,
		})
	}

	targetHours := float64(daysWorked) * a.DailyTargetHours

	var averageDaily float64
	if daysWorked > 0 {
		averageDaily = totalHours / float64(daysWorked)
	}

	stats := workhours.Stats{
		TotalHours:      round2(totalHours),
		TargetHours:     round2(targetHours),
		AverageDaily:    round2(averageDaily),
		DaysWorked:      daysWorked,
		DaysUnderTarget: daysUnderTarget,
		OvertimeHours:   round2(overtimeHours),
	}

	return weekdays, stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
