package salaryscaleerrors

import (
	"net/http"

	"github.com/JiaqinWu/DCPS-Salary/internal/shared/apperror"
)

var (
	ErrMalformedScale = apperror.New(
		"MALFORMED_SCALE",
		"salary scale sheet is malformed",
		http.StatusUnprocessableEntity,
	)
)
