package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/config"
	"github.com/ems-labs/ems-backend-go/internal/domain/attendance"
	"github.com/ems-labs/ems-backend-go/internal/pkg/sse"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-chi/jwtauth/v5"
)

type stubAttendanceRepo struct {
	records map[string]attendance.Attendance
	nextID  int
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: make(map[string]attendance.Attendance), nextID: 1}
}

func (s *stubAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "_" + date.Format("2006-01-02")
}

func (s *stubAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = "att-" + string(rune('a'+s.nextID))
	s.nextID++
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	s.records[s.key(att.EmployeeID, att.Date)] = att
	return att, nil
}

func (s *stubAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, att := range s.records {
		if att.ID == id {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	att, ok := s.records[s.key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	s.records[s.key(att.EmployeeID, att.Date)] = att
	return nil
}

func (s *stubAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range s.records {
		out = append(out, att)
	}
	return out, int64(len(out)), nil
}

func (s *stubAttendanceRepo) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range s.records {
		if att.EmployeeID == employeeID {
			out = append(out, att)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	out, _, err := s.GetMyAttendance(ctx, employeeID, attendance.MyAttendanceFilter{})
	return out, err
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

func employeeContext(t *testing.T, employeeID string) context.Context {
	t.Helper()

	token, err := jwt.NewBuilder().
		Claim("user_id", "u-"+employeeID).
		Claim("employee_id", employeeID).
		Claim("role", "employee").
		Build()
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestAttendanceService() (attendance.AttendanceService, *stubAttendanceRepo, *sse.Hub) {
	repo := newStubAttendanceRepo()
	hub := sse.NewHub()
	policy := NewPolicy(config.AttendanceConfig{OnTimeStartHour: 8, OnTimeEndHour: 9})
	return NewAttendanceService(repo, policy, hub), repo, hub
}

func receiveEvent(t *testing.T, ch chan sse.Event) sse.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	default:
		t.Fatal("expected an event, got none")
		return sse.Event{}
	}
}

func TestAttendanceService_CheckIn_NotifiesOwnerAndAdmin(t *testing.T) {
	svc, _, hub := newTestAttendanceService()

	adminCh, adminCleanup := hub.Subscribe(sse.TopicAdmin)
	defer adminCleanup()
	ownCh, ownCleanup := hub.Subscribe(sse.UserTopic("emp-1"))
	defer ownCleanup()

	resp, err := svc.CheckIn(employeeContext(t, "emp-1"))
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)

	adminEv := receiveEvent(t, adminCh)
	assert.Equal(t, "attendance.checked_in", adminEv.Event)
	assert.Equal(t, sse.TopicAdmin, adminEv.Topic)

	ownEv := receiveEvent(t, ownCh)
	assert.Equal(t, "attendance.checked_in", ownEv.Event)
	assert.Equal(t, sse.UserTopic("emp-1"), ownEv.Topic)
}

func TestAttendanceService_CheckIn_Twice(t *testing.T) {
	svc, _, _ := newTestAttendanceService()
	ctx := employeeContext(t, "emp-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckOut_NotifiesOwnerAndAdmin(t *testing.T) {
	svc, _, hub := newTestAttendanceService()
	ctx := employeeContext(t, "emp-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	adminCh, adminCleanup := hub.Subscribe(sse.TopicAdmin)
	defer adminCleanup()
	ownCh, ownCleanup := hub.Subscribe(sse.UserTopic("emp-1"))
	defer ownCleanup()

	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	assert.Equal(t, "attendance.checked_out", receiveEvent(t, adminCh).Event)
	assert.Equal(t, "attendance.checked_out", receiveEvent(t, ownCh).Event)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	svc, _, _ := newTestAttendanceService()

	_, err := svc.CheckOut(employeeContext(t, "emp-1"))
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_CheckOut_Twice(t *testing.T) {
	svc, _, _ := newTestAttendanceService()
	ctx := employeeContext(t, "emp-1")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}
