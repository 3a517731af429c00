package request

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	logger := contextutil.GetLogger(c.Request.Context(), h.logger)
	logger.Warn("leave request call failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create request validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	q := ListQuery{
		Scope:      c.Query("scope"),
		EmployeeID: c.Query("employee_id"),
		Month:      c.Query("month"),
		Status:     c.Query("status"),
		WorkSite:   c.Query("work_site"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		Search:     c.Query("q"),
		SortKey:    c.Query("sort"),
		Descending: c.Query("order") == "desc",
		Page:       page,
		PageSize:   pageSize,
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(int64(result.Total), result.Page, result.PageSize)
	response.Success(c, http.StatusOK, result.Items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update request validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}
	if req.Version == "" {
		req.Version = c.GetHeader("If-Match")
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http reject request validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), c.Param("id"), req.ManagerNotes)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Return accepts an empty body; the note is optional.
func (h *Handler) Return(c *gin.Context) {
	var req ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("http return request validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Return(c.Request.Context(), c.Param("id"), req.ManagerNotes)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) BulkReview(c *gin.Context) {
	var req BulkReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http bulk review validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.BulkReview(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Balance(c *gin.Context) {
	resp, err := h.service.Balance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
