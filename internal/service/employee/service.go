package employee

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/domain/employee"
	"github.com/ems-labs/ems-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: repo}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	var salary *string
	if emp.Salary != nil {
		s := emp.Salary.String()
		salary = &s
	}

	var joinDate *string
	if emp.JoinDate != nil {
		d := emp.JoinDate.Format("2006-01-02")
		joinDate = &d
	}

	return employee.EmployeeResponse{
		ID:               emp.ID,
		FullName:         emp.FullName,
		Email:            emp.Email,
		Department:       emp.Department,
		Position:         emp.Position,
		Role:             emp.Role,
		Status:           string(emp.Status),
		Salary:           salary,
		JoinDate:         joinDate,
		Phone:            emp.Phone,
		Address:          emp.Address,
		EmergencyContact: emp.EmergencyContact,
		Skills:           validator.SplitTags(emp.Skills),
		Notes:            emp.Notes,
		CreatedAt:        emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName:         req.FullName,
		Email:            req.Email,
		Department:       req.Department,
		Position:         req.Position,
		Role:             req.Role,
		Status:           employee.StatusActive,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		Skills:           req.Skills,
		Notes:            req.Notes,
	}

	if req.Salary != nil && *req.Salary != "" {
		salary, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse salary: %w", err)
		}
		emp.Salary = &salary
	}

	if req.JoinDate != nil && *req.JoinDate != "" {
		joinDate, _ := time.Parse("2006-01-02", *req.JoinDate)
		emp.JoinDate = &joinDate
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		return toResponse(emp), nil
	}

	// Tokens issued before the profile was linked carry no employee_id
	// claim; resolve through the owning user account instead
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Employees:  responses,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.Salary != nil {
		if *req.Salary == "" {
			emp.Salary = nil
		} else {
			salary, err := decimal.NewFromString(*req.Salary)
			if err != nil {
				return employee.EmployeeResponse{}, fmt.Errorf("failed to parse salary: %w", err)
			}
			emp.Salary = &salary
		}
	}
	if req.JoinDate != nil {
		if *req.JoinDate == "" {
			emp.JoinDate = nil
		} else {
			joinDate, _ := time.Parse("2006-01-02", *req.JoinDate)
			emp.JoinDate = &joinDate
		}
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.EmergencyContact != nil {
		emp.EmergencyContact = req.EmergencyContact
	}
	if req.Skills != nil {
		emp.Skills = *req.Skills
	}
	if req.Notes != nil {
		emp.Notes = req.Notes
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp.UpdatedAt = time.Now()

	return toResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}
