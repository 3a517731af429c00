package request

import "time"

type CreateRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required"`
	EmployeeName string `json:"employee_name" binding:"required"`
	Type         string `json:"type" binding:"required,oneof=VACATION SICK_LEAVE COMPENSATORY PERSONAL_LEAVE"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	WorkSite     string `json:"work_site" binding:"required"`
	Observations string `json:"observations"`
	Evidence     bool   `json:"evidence"`
}

// UpdateRequest is the generic field merge the review flow issues. Nil
// pointers leave the field untouched. Version, when set, must match the
// record's current version token.
type UpdateRequest struct {
	Type         *string `json:"type,omitempty" binding:"omitempty,oneof=VACATION SICK_LEAVE COMPENSATORY PERSONAL_LEAVE"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	WorkSite     *string `json:"work_site,omitempty"`
	Observations *string `json:"observations,omitempty"`
	Evidence     *bool   `json:"evidence,omitempty"`
	Status       *string `json:"status,omitempty" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	ManagerNotes *string `json:"manager_notes,omitempty"`
	Version      string  `json:"version,omitempty"`
}

type RejectRequest struct {
	ManagerNotes string `json:"manager_notes" binding:"required"`
}

type ReturnRequest struct {
	ManagerNotes string `json:"manager_notes"`
}

type BulkReviewRequest struct {
	IDs          []string `json:"ids" binding:"required,min=1"`
	Decision     string   `json:"decision" binding:"required,oneof=approve reject"`
	ManagerNotes string   `json:"manager_notes"`
}

// ListQuery carries the filter, sort and pagination parameters of one view.
type ListQuery struct {
	Scope      string
	EmployeeID string
	Month      string
	Status     string
	WorkSite   string
	From       string
	To         string
	Search     string

	SortKey    string
	Descending bool

	Page     int
	PageSize int
}

type RequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalDays    int     `json:"total_days"`
	WorkSite     string  `json:"work_site"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	Observations string  `json:"observations"`
	ManagerNotes *string `json:"manager_notes,omitempty"`
	ReviewedAt   *string `json:"reviewed_at,omitempty"`
	Evidence     bool    `json:"evidence"`
	Version      string  `json:"version"`
}

// ListResult is one filtered, sorted, paginated page plus its meta.
type ListResult struct {
	Items      []RequestResponse
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type BalanceResponse struct {
	EmployeeID       string `json:"employee_id"`
	VacationDays     int    `json:"vacation_days"`
	CompensatoryDays int    `json:"compensatory_days"`
}

func mapToResponse(r LeaveRequest) RequestResponse {
	resp := RequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Type:         string(r.Type),
		StartDate:    formatDate(r.StartDate),
		EndDate:      formatDate(r.EndDate),
		TotalDays:    r.TotalDays,
		WorkSite:     r.WorkSite,
		Status:       string(r.Status),
		CreatedAt:    formatDate(r.CreatedAt),
		Observations: r.Observations,
		ManagerNotes: r.ManagerNotes,
		Evidence:     r.Evidence,
		Version:      r.Version,
	}
	if r.ReviewedAt != nil {
		v := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}

func mapToListResponse(requests []LeaveRequest) []RequestResponse {
	resp := make([]RequestResponse, len(requests))
	for i, r := range requests {
		resp[i] = mapToResponse(r)
	}
	return resp
}
