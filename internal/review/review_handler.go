package review

import (
	"errors"
	"net/http"

	reviewerrors "github.com/JiaqinWu/DCPS-Salary/internal/review/errors"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/apperror"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 100

type HandlerOptions struct {
	WorkbookPath   string
	MaxUploadBytes int64
}

type Handler struct {
	service Service
	opts    HandlerOptions
}

func NewHandler(service Service, opts HandlerOptions) *Handler {
	return &Handler{service: service, opts: opts}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetOptions(c *gin.Context) {
	var req ListEmployeesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	items, meta := response.Paginate(resp, req.Page, req.PageSize, defaultPageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetReview(c *gin.Context) {
	var req GetReviewRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetReview(c.Request.Context(), req.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Current(c *gin.Context) {
	resp, err := h.service.Current(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Upload(c *gin.Context) {
	if h.opts.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxUploadBytes)
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeServiceError(c, reviewerrors.ErrUploadTooLarge)
			return
		}
		h.writeServiceError(c, reviewerrors.ErrMissingUpload)
		return
	}
	defer file.Close()

	resp, err := h.service.Import(c.Request.Context(), header.Filename, file)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Reload(c *gin.Context) {
	resp, err := h.service.Load(c.Request.Context(), h.opts.WorkbookPath)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
