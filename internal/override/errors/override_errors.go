package overrideerrors

import (
	"net/http"

	"github.com/ray0128/sunday-for-rayinhair/internal/shared/apperror"
)

var (
	ErrInvalidStoreID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid store id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonthFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrNotADesigner = apperror.New(
		apperror.CodeInvalidInput,
		"demand overrides only apply to active designers of this store",
		http.StatusBadRequest,
	)
)
