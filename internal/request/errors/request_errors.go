package requesterrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidInput,
		"requested days exceed the available balance",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrDuplicateRequestID = apperror.New(
		apperror.CodeConflict,
		"leave request id already exists",
		http.StatusConflict,
	)
	ErrVersionConflict = apperror.New(
		apperror.CodeConflict,
		"leave request was modified by another reviewer",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid leave request status transition",
		http.StatusBadRequest,
	)
	ErrJustificationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"manager_notes justification is required to reject",
		http.StatusBadRequest,
	)
	ErrNoRequestsSelected = apperror.New(
		apperror.CodeInvalidInput,
		"no request ids selected",
		http.StatusBadRequest,
	)
	ErrUnknownSortKey = apperror.New(
		apperror.CodeInvalidInput,
		"unknown sort key",
		http.StatusBadRequest,
	)
)
