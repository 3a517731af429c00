package request

import "time"

type LeaveType string

const (
	TypeVacation      LeaveType = "VACATION"
	TypeSickLeave     LeaveType = "SICK_LEAVE"
	TypeCompensatory  LeaveType = "COMPENSATORY"
	TypePersonalLeave LeaveType = "PERSONAL_LEAVE"
)

// DeductsBalance reports whether requests of this type reserve days against
// the employee's allotment. Sick and personal leave never deduct.
func (t LeaveType) DeductsBalance() bool {
	return t == TypeVacation || t == TypeCompensatory
}

func (t LeaveType) Valid() bool {
	switch t {
	case TypeVacation, TypeSickLeave, TypeCompensatory, TypePersonalLeave:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// LeaveRequest is the authoritative record for one leave/permission request.
// Dates are calendar dates held at UTC midnight; TotalDays is derived from
// StartDate/EndDate by the store and is never accepted from callers.
type LeaveRequest struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Type         LeaveType  `json:"type"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	TotalDays    int        `json:"total_days"`
	WorkSite     string     `json:"work_site"`
	Status       Status     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	Observations string     `json:"observations"`
	ManagerNotes *string    `json:"manager_notes,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	Evidence     bool       `json:"evidence"`

	// Version changes on every mutation and backs optimistic concurrency
	// between two reviewers racing on the same record.
	Version string `json:"version"`
}

func (r LeaveRequest) clone() LeaveRequest {
	out := r
	if r.ManagerNotes != nil {
		v := *r.ManagerNotes
		out.ManagerNotes = &v
	}
	if r.ReviewedAt != nil {
		v := *r.ReviewedAt
		out.ReviewedAt = &v
	}
	return out
}

func cloneAll(requests []LeaveRequest) []LeaveRequest {
	out := make([]LeaveRequest, len(requests))
	for i, r := range requests {
		out[i] = r.clone()
	}
	return out
}
