package reviewerrors

import (
	"net/http"

	"github.com/JiaqinWu/DCPS-Salary/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		"EMPLOYEE_NOT_FOUND",
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"employee id must be a positive integer",
		http.StatusBadRequest,
	)
	ErrWorkbookNotLoaded = apperror.New(
		apperror.CodeServiceUnavailable,
		"no workbook has been loaded yet",
		http.StatusServiceUnavailable,
	)
	ErrMissingUpload = apperror.New(
		apperror.CodeInvalidInput,
		"multipart field \"file\" is required",
		http.StatusBadRequest,
	)
	ErrUploadTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"uploaded workbook is too large",
		http.StatusRequestEntityTooLarge,
	)
)
