package workbookerrors

import (
	"net/http"

	"github.com/JiaqinWu/DCPS-Salary/internal/shared/apperror"
)

var (
	ErrWorkbookNotFound = apperror.New(
		"WORKBOOK_NOT_FOUND",
		"workbook file does not exist",
		http.StatusNotFound,
	)
	ErrUnreadableWorkbook = apperror.New(
		apperror.CodeMalformedInput,
		"workbook could not be opened",
		http.StatusUnprocessableEntity,
	)
	ErrMalformedWorkbook = apperror.New(
		apperror.CodeMalformedInput,
		"workbook is missing a required sheet",
		http.StatusUnprocessableEntity,
	)
	ErrMalformedStaff = apperror.New(
		"MALFORMED_STAFF",
		"staff sheet is malformed",
		http.StatusUnprocessableEntity,
	)
)
