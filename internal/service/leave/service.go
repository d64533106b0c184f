package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ems-labs/ems-backend-go/internal/domain/employee"
	"github.com/ems-labs/ems-backend-go/internal/domain/leave"
	"github.com/ems-labs/ems-backend-go/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	hub *sse.Hub
}

func NewLeaveService(repo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository, hub *sse.Hub) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: repo,
		EmployeeRepository:     employeeRepo,
		hub:                    hub,
	}
}

func toResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	var reviewedAt *string
	if req.ReviewedAt != nil {
		format := req.ReviewedAt.Format("2006-01-02 15:04:05")
		reviewedAt = &format
	}

	return leave.LeaveRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Department:   req.Department,
		Email:        req.Email,
		FromDate:     req.FromDate.Format("2006-01-02"),
		ToDate:       req.ToDate.Format("2006-01-02"),
		Reason:       req.Reason,
		Status:       string(req.Status),
		AppliedAt:    req.AppliedAt.Format("2006-01-02 15:04:05"),
		ReviewedAt:   reviewedAt,
		ReviewerName: req.ReviewerName,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return leave.LeaveRequestResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	fromDate, _ := time.Parse("2006-01-02", req.FromDate)
	toDate, _ := time.Parse("2006-01-02", req.ToDate)

	request := leave.LeaveRequest{
		EmployeeID: employeeID,
		FromDate:   fromDate,
		ToDate:     toDate,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
		AppliedAt:  time.Now(),
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	created.EmployeeName = emp.FullName
	created.Department = emp.Department
	created.Email = emp.Email

	resp := toResponse(created)
	s.hub.Publish(sse.TopicAdmin, sse.Event{
		Topic: sse.TopicAdmin,
		Event: "leave.submitted",
		Data:  resp,
	})

	return resp, nil
}

// Decide implements leave.LeaveService. The status check runs inside the
// entity, and the repository update only matches a row still pending, so
// two racing decisions cannot both land; the loser gets
// ErrLeaveRequestAlreadyProcessed.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if req.Outcome != leave.LeaveRequestStatusApproved && req.Outcome != leave.LeaveRequestStatusRejected {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidStatusTransition
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return leave.LeaveRequestResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.IsDecided() {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}
	if !request.CanTransitionTo(req.Outcome) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidStatusTransition
	}

	reviewerName := s.reviewerName(ctx, claims, userID)
	now := time.Now()

	request.Status = req.Outcome
	request.ReviewedAt = &now
	request.ReviewerName = &reviewerName

	if err := s.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	resp := toResponse(request)
	s.hub.PublishToMany(
		[]string{sse.TopicAdmin, sse.UserTopic(request.EmployeeID)},
		sse.Event{Event: "leave.decided", Data: resp},
	)

	return resp, nil
}

// reviewerName resolves a display name for the deciding admin. The email
// claim is always present; a nicer name needs an employee profile.
func (s *LeaveServiceImpl) reviewerName(ctx context.Context, claims map[string]interface{}, userID string) string {
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		if emp, err := s.EmployeeRepository.GetByID(ctx, employeeID); err == nil {
			return emp.FullName
		}
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	return userID
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	filter.EmployeeID = &employeeID

	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list my leave requests: %w", err)
	}

	return buildListResponse(requests, total, filter.Page, filter.Limit), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return buildListResponse(requests, total, filter.Page, filter.Limit), nil
}

func buildListResponse(requests []leave.LeaveRequest, total int64, page, limit int) leave.ListLeaveRequestResponse {
	if limit == 0 {
		limit = 20
	}
	if page == 0 {
		page = 1
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}

	return leave.ListLeaveRequestResponse{
		TotalCount:    total,
		Page:          page,
		Limit:         limit,
		TotalPages:    int(math.Ceil(float64(total) / float64(limit))),
		LeaveRequests: responses,
	}
}
