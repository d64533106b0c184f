package leave

import (
	"context"
	"testing"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/domain/employee"
	"github.com/ems-labs/ems-backend-go/internal/domain/leave"
	"github.com/ems-labs/ems-backend-go/internal/pkg/sse"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-chi/jwtauth/v5"
)

type stubLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newStubLeaveRepo() *stubLeaveRepo {
	return &stubLeaveRepo{requests: make(map[string]leave.LeaveRequest), nextID: 1}
}

func (s *stubLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.ID = "lr-" + time.Now().Format("150405") + "-" + string(rune('a'+s.nextID))
	s.nextID++
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	s.requests[request.ID] = request
	return request, nil
}

func (s *stubLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (s *stubLeaveRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, request := range s.requests {
		if filter.EmployeeID != nil && request.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(request.Status) != *filter.Status {
			continue
		}
		out = append(out, request)
	}
	return out, int64(len(out)), nil
}

func (s *stubLeaveRepo) Update(ctx context.Context, request leave.LeaveRequest) error {
	stored, ok := s.requests[request.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if stored.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	s.requests[request.ID] = request
	return nil
}

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *stubEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }

func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

// claimsContext builds a context carrying JWT claims the way the auth
// middleware does in production.
func claimsContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()

	builder := jwt.NewBuilder()
	for k, v := range claims {
		builder = builder.Claim(k, v)
	}
	token, err := builder.Build()
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService() (*LeaveServiceImpl, *stubLeaveRepo) {
	leaveRepo := newStubLeaveRepo()
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Jane Smith", Email: "jane@example.com", Department: "Engineering"},
		"emp-9": {ID: "emp-9", FullName: "Admin User", Email: "admin@example.com", Department: "HR"},
	}}
	svc := NewLeaveService(leaveRepo, employeeRepo, sse.NewHub()).(*LeaveServiceImpl)
	return svc, leaveRepo
}

func TestLeaveService_Submit(t *testing.T) {
	svc, _ := newTestService()
	ctx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
	})

	resp, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		FromDate: "2025-04-01",
		ToDate:   "2025-04-03",
		Reason:   "family matters",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "Jane Smith", resp.EmployeeName)
	assert.NotEmpty(t, resp.AppliedAt)
	assert.Nil(t, resp.ReviewedAt)
}

func TestLeaveService_Submit_InvalidDateRange(t *testing.T) {
	svc, _ := newTestService()
	ctx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
	})

	_, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		FromDate: "2025-04-10",
		ToDate:   "2025-04-03",
		Reason:   "vacation",
	})

	assert.Error(t, err)
}

func TestLeaveService_Submit_MissingReason(t *testing.T) {
	svc, _ := newTestService()
	ctx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
	})

	_, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		FromDate: "2025-04-01",
		ToDate:   "2025-04-03",
	})

	assert.Error(t, err)
}

func TestLeaveService_Decide_Approve(t *testing.T) {
	svc, repo := newTestService()
	employeeCtx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
	})
	adminCtx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-9",
		"employee_id": "emp-9",
		"email":       "admin@example.com",
	})

	submitted, err := svc.Submit(employeeCtx, leave.SubmitLeaveRequestRequest{
		FromDate: "2025-04-01",
		ToDate:   "2025-04-03",
		Reason:   "vacation",
	})
	require.NoError(t, err)

	decided, err := svc.Decide(adminCtx, leave.DecideLeaveRequestRequest{
		ID:      submitted.ID,
		Outcome: leave.LeaveRequestStatusApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)
	require.NotNil(t, decided.ReviewedAt)
	require.NotNil(t, decided.ReviewerName)
	assert.Equal(t, "Admin User", *decided.ReviewerName)

	stored, err := repo.GetByID(context.Background(), submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, stored.Status)
}

func TestLeaveService_Decide_TerminalState(t *testing.T) {
	svc, _ := newTestService()
	employeeCtx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
	})
	adminCtx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-9",
		"employee_id": "emp-9",
	})

	submitted, err := svc.Submit(employeeCtx, leave.SubmitLeaveRequestRequest{
		FromDate: "2025-04-01",
		ToDate:   "2025-04-03",
		Reason:   "vacation",
	})
	require.NoError(t, err)

	_, err = svc.Decide(adminCtx, leave.DecideLeaveRequestRequest{
		ID:      submitted.ID,
		Outcome: leave.LeaveRequestStatusRejected,
	})
	require.NoError(t, err)

	// A decided request can never be decided again, not even to the
	// same outcome
	_, err = svc.Decide(adminCtx, leave.DecideLeaveRequestRequest{
		ID:      submitted.ID,
		Outcome: leave.LeaveRequestStatusApproved,
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = svc.Decide(adminCtx, leave.DecideLeaveRequestRequest{
		ID:      submitted.ID,
		Outcome: leave.LeaveRequestStatusRejected,
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

// staleReadLeaveRepo hands out a pending snapshot from GetByID even
// after the stored request has been decided, emulating a second admin
// whose read raced the first decision.
type staleReadLeaveRepo struct {
	*stubLeaveRepo
}

func (s *staleReadLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, err := s.stubLeaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	request.Status = leave.LeaveRequestStatusPending
	request.ReviewedAt = nil
	request.ReviewerName = nil
	return request, nil
}

func TestLeaveService_Decide_RacingAdminsLoseToFirstDecision(t *testing.T) {
	leaveRepo := &staleReadLeaveRepo{stubLeaveRepo: newStubLeaveRepo()}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Jane Smith", Email: "jane@example.com", Department: "Engineering"},
		"emp-9": {ID: "emp-9", FullName: "Admin User", Email: "admin@example.com", Department: "HR"},
	}}
	svc := NewLeaveService(leaveRepo, employeeRepo, sse.NewHub()).(*LeaveServiceImpl)

	employeeCtx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
	})
	adminCtx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-9",
		"employee_id": "emp-9",
	})

	submitted, err := svc.Submit(employeeCtx, leave.SubmitLeaveRequestRequest{
		FromDate: "2025-04-01",
		ToDate:   "2025-04-03",
		Reason:   "vacation",
	})
	require.NoError(t, err)

	_, err = svc.Decide(adminCtx, leave.DecideLeaveRequestRequest{
		ID:      submitted.ID,
		Outcome: leave.LeaveRequestStatusApproved,
	})
	require.NoError(t, err)

	// The second admin read the request before the approval landed;
	// the conditional update must reject their decision
	_, err = svc.Decide(adminCtx, leave.DecideLeaveRequestRequest{
		ID:      submitted.ID,
		Outcome: leave.LeaveRequestStatusRejected,
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	stored := leaveRepo.stubLeaveRepo.requests[submitted.ID]
	assert.Equal(t, leave.LeaveRequestStatusApproved, stored.Status)
}

func TestLeaveService_Decide_InvalidOutcome(t *testing.T) {
	svc, _ := newTestService()
	adminCtx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-9",
		"employee_id": "emp-9",
	})

	_, err := svc.Decide(adminCtx, leave.DecideLeaveRequestRequest{
		ID:      "lr-any",
		Outcome: leave.LeaveRequestStatusPending,
	})

	assert.ErrorIs(t, err, leave.ErrInvalidStatusTransition)
}

func TestLeaveService_Decide_NotFound(t *testing.T) {
	svc, _ := newTestService()
	adminCtx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-9",
		"employee_id": "emp-9",
	})

	_, err := svc.Decide(adminCtx, leave.DecideLeaveRequestRequest{
		ID:      "lr-missing",
		Outcome: leave.LeaveRequestStatusApproved,
	})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_GetMyLeaves_ScopedToEmployee(t *testing.T) {
	svc, repo := newTestService()
	ctx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
	})

	_, err := repo.Create(context.Background(), leave.LeaveRequest{
		EmployeeID: "emp-1", Status: leave.LeaveRequestStatusPending,
		FromDate: time.Now(), ToDate: time.Now(), AppliedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), leave.LeaveRequest{
		EmployeeID: "emp-2", Status: leave.LeaveRequestStatusPending,
		FromDate: time.Now(), ToDate: time.Now(), AppliedAt: time.Now(),
	})
	require.NoError(t, err)

	resp, err := svc.GetMyLeaves(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, "emp-1", resp.LeaveRequests[0].EmployeeID)
}
