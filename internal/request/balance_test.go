package request_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leavedesk/internal/request"
)

var testAllotment = request.Allotment{VacationDays: 15, CompensatoryDays: 4}

func balanceFixture(id, employeeID string, leaveType request.LeaveType, status request.Status, days int) request.LeaveRequest {
	start := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	return request.LeaveRequest{
		ID:         id,
		EmployeeID: employeeID,
		Type:       leaveType,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, days-1),
		TotalDays:  days,
		Status:     status,
		CreatedAt:  time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeBalance(t *testing.T) {
	t.Run("pending and approved both reserve days", func(t *testing.T) {
		requests := []request.LeaveRequest{
			balanceFixture("REQ001", "emp001", request.TypeVacation, request.StatusPending, 5),
			balanceFixture("REQ002", "emp001", request.TypeVacation, request.StatusApproved, 3),
			balanceFixture("REQ003", "emp001", request.TypeCompensatory, request.StatusApproved, 1),
		}

		b := request.ComputeBalance("emp001", requests, testAllotment)
		assert.Equal(t, 7, b.VacationDays)
		assert.Equal(t, 3, b.CompensatoryDays)
	})

	t.Run("rejected requests free their days", func(t *testing.T) {
		requests := []request.LeaveRequest{
			balanceFixture("REQ001", "emp001", request.TypeVacation, request.StatusRejected, 10),
		}

		b := request.ComputeBalance("emp001", requests, testAllotment)
		assert.Equal(t, 15, b.VacationDays)
	})

	t.Run("sick and personal leave never deduct", func(t *testing.T) {
		requests := []request.LeaveRequest{
			balanceFixture("REQ001", "emp001", request.TypeSickLeave, request.StatusApproved, 8),
			balanceFixture("REQ002", "emp001", request.TypePersonalLeave, request.StatusPending, 6),
		}

		b := request.ComputeBalance("emp001", requests, testAllotment)
		assert.Equal(t, 15, b.VacationDays)
		assert.Equal(t, 4, b.CompensatoryDays)
	})

	t.Run("other employees do not affect the balance", func(t *testing.T) {
		requests := []request.LeaveRequest{
			balanceFixture("REQ101", "emp002", request.TypeVacation, request.StatusApproved, 9),
		}

		b := request.ComputeBalance("emp001", requests, testAllotment)
		assert.Equal(t, 15, b.VacationDays)
	})

	t.Run("clamps at zero on overdraft", func(t *testing.T) {
		requests := []request.LeaveRequest{
			balanceFixture("REQ001", "emp001", request.TypeVacation, request.StatusApproved, 5),
			balanceFixture("REQ002", "emp001", request.TypeVacation, request.StatusApproved, 5),
			balanceFixture("REQ003", "emp001", request.TypeVacation, request.StatusApproved, 5),
			balanceFixture("REQ004", "emp001", request.TypeVacation, request.StatusApproved, 5),
		}

		b := request.ComputeBalance("emp001", requests, testAllotment)
		assert.Equal(t, 0, b.VacationDays)
	})

	t.Run("pure function, identical snapshot gives identical result", func(t *testing.T) {
		requests := []request.LeaveRequest{
			balanceFixture("REQ001", "emp001", request.TypeVacation, request.StatusPending, 4),
			balanceFixture("REQ002", "emp001", request.TypeCompensatory, request.StatusApproved, 2),
		}

		first := request.ComputeBalance("emp001", requests, testAllotment)
		second := request.ComputeBalance("emp001", requests, testAllotment)
		assert.Equal(t, first, second)
	})
}

func TestBalanceAvailable(t *testing.T) {
	b := request.Balance{VacationDays: 7, CompensatoryDays: 2}
	assert.Equal(t, 7, b.Available(request.TypeVacation))
	assert.Equal(t, 2, b.Available(request.TypeCompensatory))
	assert.Equal(t, -1, b.Available(request.TypeSickLeave))
}
