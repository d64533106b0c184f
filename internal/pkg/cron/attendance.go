package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/domain/attendance"
	attendancesvc "github.com/ems-labs/ems-backend-go/internal/service/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("auto_close_stale_attendances", 0, j.AutoCloseStaleAttendances)
}

// AutoCloseStaleAttendances closes sessions whose work day ended without
// a check-out. The session is closed at end of its own day, never at the
// moment the job happens to run, so the recorded span stays honest.
func (j *AttendanceJobs) AutoCloseStaleAttendances(ctx context.Context) error {
	slog.Info("Cron: Starting auto-close stale attendances job")

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	staleSessions, err := j.attendanceRepo.ListOpenSessionsBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to get stale sessions: %w", err)
	}

	if len(staleSessions) == 0 {
		slog.Info("Cron: No stale attendances found")
		return nil
	}

	closedCount := 0
	for _, session := range staleSessions {
		// End of the session's own work day
		endOfDay := session.Date.AddDate(0, 0, 1)

		session.CheckOut = &endOfDay
		session.WorkedMinutes = attendancesvc.ComputeWorkedDuration(*session.CheckIn, endOfDay)
		session.HoursWorked = attendancesvc.MinutesToHours(session.WorkedMinutes)

		if err := j.attendanceRepo.Update(ctx, session); err != nil {
			slog.Error("Cron: Failed to auto-close attendance", "attendance_id", session.ID, "error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: Auto-close stale attendances finished", "closed", closedCount, "total", len(staleSessions))
	return nil
}
