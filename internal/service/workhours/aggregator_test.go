package workhours

import (
	"testing"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/domain/attendance"
	"github.com/ems-labs/ems-backend-go/internal/domain/workhours"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-03 is a Monday
func dayAt(day, hour, min int) time.Time {
	return time.Date(2025, time.March, day, hour, min, 0, 0, time.UTC)
}

func record(checkIn, checkOut time.Time) attendance.Attendance {
	return attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC),
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	}
}

func openRecord(checkIn time.Time) attendance.Attendance {
	return attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC),
		CheckIn:    &checkIn,
	}
}

func findDay(t *testing.T, weekdays []workhours.DaySummary, name string) workhours.DaySummary {
	t.Helper()
	for _, d := range weekdays {
		if d.Day == name {
			return d
		}
	}
	t.Fatalf("day %s not found", name)
	return workhours.DaySummary{}
}

func TestAggregator_Summarize(t *testing.T) {
	agg := NewAggregator(8)
	now := dayAt(7, 18, 0) // Friday evening

	records := []attendance.Attendance{
		record(dayAt(3, 9, 0), dayAt(3, 17, 0)), // Monday, exactly 8h
		record(dayAt(4, 9, 0), dayAt(4, 16, 0)), // Tuesday, 7h
		record(dayAt(6, 9, 0), dayAt(6, 19, 30)), // Thursday, 10.5h
	}

	weekdays, stats := agg.Summarize(records, now)
	require.Len(t, weekdays, 7)

	monday := findDay(t, weekdays, "Monday")
	assert.Equal(t, 8.0, monday.Hours)
	assert.Equal(t, workhours.DayStatusComplete, monday.Status)

	tuesday := findDay(t, weekdays, "Tuesday")
	assert.Equal(t, 7.0, tuesday.Hours)
	assert.Equal(t, workhours.DayStatusUnder, tuesday.Status)

	wednesday := findDay(t, weekdays, "Wednesday")
	assert.Equal(t, 0.0, wednesday.Hours)
	assert.Equal(t, workhours.DayStatusOff, wednesday.Status)

	thursday := findDay(t, weekdays, "Thursday")
	assert.Equal(t, 10.5, thursday.Hours)
	assert.Equal(t, workhours.DayStatusOver, thursday.Status)

	assert.Equal(t, 25.5, stats.TotalHours)
	// Only days actually worked contribute to the target
	assert.Equal(t, 24.0, stats.TargetHours)
	assert.Equal(t, 3, stats.DaysWorked)
	assert.Equal(t, 1, stats.DaysUnderTarget)
	assert.Equal(t, 2.5, stats.OvertimeHours)
	assert.Equal(t, 8.5, stats.AverageDaily)
}

func TestAggregator_Summarize_OpenSessionAccrues(t *testing.T) {
	agg := NewAggregator(8)
	now := dayAt(3, 12, 0) // Monday noon

	weekdays, stats := agg.Summarize([]attendance.Attendance{
		openRecord(dayAt(3, 9, 0)),
	}, now)

	monday := findDay(t, weekdays, "Monday")
	assert.Equal(t, 3.0, monday.Hours)
	assert.Equal(t, workhours.DayStatusUnder, monday.Status)
	assert.Equal(t, 3.0, stats.TotalHours)
	assert.Equal(t, 1, stats.DaysWorked)
}

func TestAggregator_Summarize_WeekendIsAllOvertime(t *testing.T) {
	agg := NewAggregator(8)
	now := dayAt(9, 20, 0)

	weekdays, stats := agg.Summarize([]attendance.Attendance{
		record(dayAt(8, 10, 0), dayAt(8, 14, 0)), // Saturday, 4h
	}, now)

	saturday := findDay(t, weekdays, "Saturday")
	assert.Equal(t, 4.0, saturday.Hours)
	assert.Equal(t, 0.0, saturday.TargetHours)
	assert.Equal(t, workhours.DayStatusOver, saturday.Status)
	assert.Equal(t, 4.0, stats.OvertimeHours)
	assert.Equal(t, 0, stats.DaysUnderTarget)
	// The worked Saturday still counts one flat daily target in the
	// stats even though its own weekday target is zero
	assert.Equal(t, 8.0, stats.TargetHours)
}

func TestAggregator_Summarize_SkipsRecordsWithoutCheckIn(t *testing.T) {
	agg := NewAggregator(8)
	now := dayAt(7, 18, 0)

	_, stats := agg.Summarize([]attendance.Attendance{
		{EmployeeID: "emp-1", Date: dayAt(3, 0, 0)},
	}, now)

	assert.Equal(t, 0.0, stats.TotalHours)
	assert.Equal(t, 0, stats.DaysWorked)
}

func TestAggregator_Summarize_Empty(t *testing.T) {
	agg := NewAggregator(8)

	weekdays, stats := agg.Summarize(nil, dayAt(3, 12, 0))

	require.Len(t, weekdays, 7)
	for _, d := range weekdays {
		assert.Equal(t, workhours.DayStatusOff, d.Status)
		assert.Equal(t, 0.0, d.Hours)
	}
	assert.Equal(t, workhours.Stats{}, stats)
}

// Folding the same record set twice must give the same answer; the
// aggregator keeps no state between calls.
func TestAggregator_Summarize_Idempotent(t *testing.T) {
	agg := NewAggregator(8)
	now := dayAt(7, 18, 0)

	records := []attendance.Attendance{
		record(dayAt(3, 9, 0), dayAt(3, 17, 0)),
		record(dayAt(4, 9, 0), dayAt(4, 16, 0)),
	}

	_, first := agg.Summarize(records, now)
	_, second := agg.Summarize(records, now)

	assert.Equal(t, first, second)
}

func TestAggregator_Summarize_SameWeekdayAccumulates(t *testing.T) {
	agg := NewAggregator(8)
	now := dayAt(14, 18, 0)

	// Two Mondays a week apart share a bucket in the breakdown but
	// remain two distinct worked days in the stats
	weekdays, stats := agg.Summarize([]attendance.Attendance{
		record(dayAt(3, 9, 0), dayAt(3, 14, 0)),   // 5h
		record(dayAt(10, 9, 0), dayAt(10, 14, 0)), // 5h
	}, now)

	monday := findDay(t, weekdays, "Monday")
	assert.Equal(t, 10.0, monday.Hours)
	assert.Equal(t, workhours.DayStatusOver, monday.Status)

	assert.Equal(t, 2, stats.DaysWorked)
	assert.Equal(t, 16.0, stats.TargetHours)
	assert.Equal(t, 5.0, stats.AverageDaily)
	assert.Equal(t, 2, stats.DaysUnderTarget)
	assert.Equal(t, 0.0, stats.OvertimeHours)
}

// A record that spans no time at all is not a worked day; its weekday
// stays off and it contributes nothing to the stats.
func TestAggregator_Summarize_ZeroDurationDayIsOff(t *testing.T) {
	agg := NewAggregator(8)
	now := dayAt(7, 18, 0)

	weekdays, stats := agg.Summarize([]attendance.Attendance{
		record(dayAt(3, 9, 0), dayAt(3, 9, 0)),
	}, now)

	monday := findDay(t, weekdays, "Monday")
	assert.Equal(t, 0.0, monday.Hours)
	assert.Equal(t, workhours.DayStatusOff, monday.Status)

	assert.Equal(t, 0, stats.DaysWorked)
	assert.Equal(t, 0.0, stats.TargetHours)
	assert.Equal(t, 0, stats.DaysUnderTarget)
}
