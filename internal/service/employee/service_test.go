package employee

import (
	"context"
	"testing"

	"github.com/ems-labs/ems-backend-go/internal/domain/employee"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-chi/jwtauth/v5"
)

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s.employees[e.ID] = e
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
	for _, e := range s.employees {
		if e.UserID != nil && *e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, e := range s.employees {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	s.employees[e.ID] = e
	return nil
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(s.employees, id)
	return nil
}

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

func newTestEmployeeService() (employee.EmployeeService, *stubEmployeeRepo) {
	userID := "user-1"
	repo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", UserID: &userID, FullName: "Jane Smith", Email: "jane@example.com", Department: "Engineering"},
	}}
	return NewEmployeeService(repo), repo
}

func TestEmployeeService_GetMyProfile(t *testing.T) {
	svc, _ := newTestEmployeeService()
	ctx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "emp-1",
	})

	resp, err := svc.GetMyProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.ID)
	assert.Equal(t, "Jane Smith", resp.FullName)
}

// A token minted before the employee profile existed has no employee_id
// claim; the profile is still reachable through the user account.
func TestEmployeeService_GetMyProfile_ByUserID(t *testing.T) {
	svc, _ := newTestEmployeeService()
	ctx := claimsContext(t, map[string]interface{}{
		"user_id": "user-1",
	})

	resp, err := svc.GetMyProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.ID)
}

func TestEmployeeService_GetMyProfile_NoProfile(t *testing.T) {
	svc, _ := newTestEmployeeService()
	ctx := claimsContext(t, map[string]interface{}{
		"user_id": "user-unknown",
	})

	_, err := svc.GetMyProfile(ctx)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
