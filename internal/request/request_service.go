package request

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	requesterrors "leavedesk/internal/request/errors"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (RequestResponse, error)
	List(ctx context.Context, q ListQuery) (ListResult, error)
	GetByID(ctx context.Context, id string) (RequestResponse, error)
	Update(ctx context.Context, id string, req UpdateRequest) (RequestResponse, error)
	Approve(ctx context.Context, id string) (RequestResponse, error)
	Reject(ctx context.Context, id, managerNotes string) (RequestResponse, error)
	Return(ctx context.Context, id, managerNotes string) (RequestResponse, error)
	BulkReview(ctx context.Context, req BulkReviewRequest) ([]RequestResponse, error)
	Balance(ctx context.Context, employeeID string) (BalanceResponse, error)
}

const defaultPageSize = 5

type service struct {
	store     *Store
	allotment Allotment
	logger    *zap.Logger
}

func NewService(store *Store, allotment Allotment, logger ...*zap.Logger) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{store: store, allotment: allotment, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (RequestResponse, error) {
	s.logger.Debug("create request",
		zap.String("employee_id", req.EmployeeID),
		zap.String("type", req.Type),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	leaveType := LeaveType(req.Type)
	if !leaveType.Valid() {
		return RequestResponse{}, requesterrors.ErrInvalidLeaveType
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return RequestResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return RequestResponse{}, err
	}
	if endDate.Before(startDate) {
		return RequestResponse{}, requesterrors.ErrInvalidDateRange
	}

	totalDays := InclusiveDays(startDate, endDate)
	if leaveType.DeductsBalance() {
		balance := ComputeBalance(req.EmployeeID, s.store.List(), s.allotment)
		if available := balance.Available(leaveType); totalDays > available {
			s.logger.Warn("create request exceeds balance",
				zap.String("employee_id", req.EmployeeID),
				zap.String("type", req.Type),
				zap.Int("requested_days", totalDays),
				zap.Int("available_days", available),
			)
			return RequestResponse{}, requesterrors.ErrInsufficientBalance
		}
	}

	created, err := s.store.Create(ctx, LeaveRequest{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Type:         leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		WorkSite:     req.WorkSite,
		Status:       StatusPending,
		CreatedAt:    midnightUTC(time.Now().UTC()),
		Observations: req.Observations,
		Evidence:     req.Evidence,
	})
	if err != nil {
		s.logger.Error("create request persist failed", zap.Error(err))
		return RequestResponse{}, err
	}

	s.logger.Info("create request success",
		zap.String("request_id", created.ID),
		zap.String("employee_id", created.EmployeeID),
		zap.Int("total_days", created.TotalDays),
	)
	return mapToResponse(created), nil
}

func (s *service) List(ctx context.Context, q ListQuery) (ListResult, error) {
	filter := Filter{
		Scope:      Scope(q.Scope),
		EmployeeID: q.EmployeeID,
		Month:      q.Month,
		Status:     Status(q.Status),
		WorkSite:   q.WorkSite,
		Search:     q.Search,
	}
	if q.From != "" {
		from, err := parseDate(q.From)
		if err != nil {
			return ListResult{}, err
		}
		filter.CreatedFrom = from
	}
	if q.To != "" {
		to, err := parseDate(q.To)
		if err != nil {
			return ListResult{}, err
		}
		filter.CreatedTo = to
	}

	filtered := filter.Apply(s.store.List())

	if q.SortKey != "" {
		key := SortKey(q.SortKey)
		if !key.Valid() {
			return ListResult{}, requesterrors.ErrUnknownSortKey
		}
		SortBy(filtered, key, q.Descending)
	}

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	page, clampedPage, totalPages := Paginate(filtered, q.Page, pageSize)

	return ListResult{
		Items:      mapToListResponse(page),
		Total:      len(filtered),
		Page:       clampedPage,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (RequestResponse, error) {
	r, err := s.store.Get(id)
	if err != nil {
		return RequestResponse{}, err
	}
	return mapToResponse(r), nil
}

// Update is the generic field merge. Status changes go through the same
// transition guard as the dedicated review actions, including the
// justification rule on rejection.
func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (RequestResponse, error) {
	s.logger.Debug("update request", zap.String("request_id", id))

	var startDate, endDate *time.Time
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			return RequestResponse{}, err
		}
		startDate = &d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return RequestResponse{}, err
		}
		endDate = &d
	}

	updated, err := s.store.Update(ctx, id, req.Version, func(r *LeaveRequest) error {
		if req.Type != nil {
			t := LeaveType(*req.Type)
			if !t.Valid() {
				return requesterrors.ErrInvalidLeaveType
			}
			r.Type = t
		}
		if startDate != nil {
			r.StartDate = *startDate
		}
		if endDate != nil {
			r.EndDate = *endDate
		}
		if r.EndDate.Before(r.StartDate) {
			return requesterrors.ErrInvalidDateRange
		}
		if req.WorkSite != nil {
			r.WorkSite = *req.WorkSite
		}
		if req.Observations != nil {
			r.Observations = *req.Observations
		}
		if req.Evidence != nil {
			r.Evidence = *req.Evidence
		}
		if req.Status != nil {
			target := Status(*req.Status)
			notes := ""
			if req.ManagerNotes != nil {
				notes = *req.ManagerNotes
			}
			if err := applyTransition(r, target, notes); err != nil {
				return err
			}
		} else if req.ManagerNotes != nil {
			r.ManagerNotes = req.ManagerNotes
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("update request failed", zap.String("request_id", id), zap.Error(err))
		return RequestResponse{}, err
	}

	s.logger.Info("update request success", zap.String("request_id", id))
	return mapToResponse(updated), nil
}

func (s *service) Approve(ctx context.Context, id string) (RequestResponse, error) {
	return s.review(ctx, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, id, managerNotes string) (RequestResponse, error) {
	return s.review(ctx, id, StatusRejected, managerNotes)
}

// Return keeps the request PENDING while signalling it needs resubmission
// quality info; the note is optional.
func (s *service) Return(ctx context.Context, id, managerNotes string) (RequestResponse, error) {
	return s.review(ctx, id, StatusPending, managerNotes)
}

func (s *service) review(ctx context.Context, id string, target Status, managerNotes string) (RequestResponse, error) {
	s.logger.Debug("review request",
		zap.String("request_id", id),
		zap.String("target_status", string(target)),
	)

	updated, err := s.store.Update(ctx, id, "", func(r *LeaveRequest) error {
		return applyTransition(r, target, managerNotes)
	})
	if err != nil {
		s.logger.Warn("review request failed",
			zap.String("request_id", id),
			zap.String("target_status", string(target)),
			zap.Error(err),
		)
		return RequestResponse{}, err
	}

	s.logger.Info("review request success",
		zap.String("request_id", id),
		zap.String("status", string(updated.Status)),
	)
	return mapToResponse(updated), nil
}

// BulkReview applies one decision to every selected request atomically.
// Bulk rejection requires a single shared justification; it is applied to
// every record, matching the single-item rule instead of bypassing it.
func (s *service) BulkReview(ctx context.Context, req BulkReviewRequest) ([]RequestResponse, error) {
	if len(req.IDs) == 0 {
		return nil, requesterrors.ErrNoRequestsSelected
	}

	target := StatusApproved
	if req.Decision == "reject" {
		target = StatusRejected
		if strings.TrimSpace(req.ManagerNotes) == "" {
			return nil, requesterrors.ErrJustificationRequired
		}
	}

	updated, err := s.store.UpdateBatch(ctx, req.IDs, func(r *LeaveRequest) error {
		return applyTransition(r, target, req.ManagerNotes)
	})
	if err != nil {
		s.logger.Warn("bulk review failed",
			zap.Strings("request_ids", req.IDs),
			zap.String("decision", req.Decision),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("bulk review success",
		zap.Int("count", len(updated)),
		zap.String("decision", req.Decision),
	)
	return mapToListResponse(updated), nil
}

func (s *service) Balance(ctx context.Context, employeeID string) (BalanceResponse, error) {
	balance := ComputeBalance(employeeID, s.store.List(), s.allotment)
	return BalanceResponse{
		EmployeeID:       employeeID,
		VacationDays:     balance.VacationDays,
		CompensatoryDays: balance.CompensatoryDays,
	}, nil
}

// canTransition is the lifecycle guard. Only PENDING moves anywhere:
// approve, reject, or an explicit return-to-PENDING. APPROVED and REJECTED
// are terminal; there is deliberately no way back out of APPROVED.
func canTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	switch to {
	case StatusApproved, StatusRejected, StatusPending:
		return true
	}
	return false
}

func applyTransition(r *LeaveRequest, target Status, managerNotes string) error {
	if !canTransition(r.Status, target) {
		return requesterrors.ErrInvalidStatusTransition
	}

	switch target {
	case StatusRejected:
		notes := strings.TrimSpace(managerNotes)
		if notes == "" {
			return requesterrors.ErrJustificationRequired
		}
		now := time.Now().UTC()
		r.Status = StatusRejected
		r.ManagerNotes = &notes
		r.ReviewedAt = &now
	case StatusApproved:
		r.Status = StatusApproved
	case StatusPending:
		r.Status = StatusPending
		if notes := strings.TrimSpace(managerNotes); notes != "" {
			r.ManagerNotes = &notes
		}
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, requesterrors.ErrInvalidDateFormat
	}
	return t, nil
}
