package cron

import (
	"context"
	"testing"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func (s *stubAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	s.records[att.ID] = att
	return att, nil
}

func (s *stubAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	att, ok := s.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	s.records[att.ID] = att
	return nil
}

func (s *stubAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (s *stubAttendanceRepo) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (s *stubAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) ListOpenSessionsBefore(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range s.records {
		if att.CheckIn != nil && att.CheckOut == nil && att.Date.Before(date) {
			out = append(out, att)
		}
	}
	return out, nil
}

func TestAutoCloseStaleAttendances(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	date := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())
	checkIn := date.Add(9 * time.Hour)

	repo := &stubAttendanceRepo{records: map[string]attendance.Attendance{
		"att-1": {ID: "att-1", EmployeeID: "emp-1", Date: date, CheckIn: &checkIn},
	}}

	err := NewAttendanceJobs(repo).AutoCloseStaleAttendances(context.Background())
	require.NoError(t, err)

	closed, err := repo.GetByID(context.Background(), "att-1")
	require.NoError(t, err)
	require.NotNil(t, closed.CheckOut)

	// The session closes at the end of its own work day, 15h after the
	// 09:00 check-in, not at whatever moment the sweep ran
	assert.Equal(t, date.AddDate(0, 0, 1), *closed.CheckOut)
	assert.Equal(t, 900, closed.WorkedMinutes)
	assert.Equal(t, 15.0, closed.HoursWorked)
}

func TestAutoCloseStaleAttendances_IgnoresTodayAndClosed(t *testing.T) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	openCheckIn := today.Add(9 * time.Hour)

	yesterday := today.AddDate(0, 0, -1)
	closedCheckIn := yesterday.Add(9 * time.Hour)
	closedCheckOut := yesterday.Add(17 * time.Hour)

	repo := &stubAttendanceRepo{records: map[string]attendance.Attendance{
		"att-today":  {ID: "att-today", EmployeeID: "emp-1", Date: today, CheckIn: &openCheckIn},
		"att-closed": {ID: "att-closed", EmployeeID: "emp-2", Date: yesterday, CheckIn: &closedCheckIn, CheckOut: &closedCheckOut},
	}}

	err := NewAttendanceJobs(repo).AutoCloseStaleAttendances(context.Background())
	require.NoError(t, err)

	todayRec, _ := repo.GetByID(context.Background(), "att-today")
	assert.Nil(t, todayRec.CheckOut)

	closedRec, _ := repo.GetByID(context.Background(), "att-closed")
	assert.Equal(t, closedCheckOut, *closedRec.CheckOut)
}
