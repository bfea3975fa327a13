package availabilityerrors

import (
	"net/http"

	"github.com/ray0128/sunday-for-rayinhair/internal/shared/apperror"
)

var (
	ErrInvalidMonthFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrStoreNotFound = apperror.New(
		apperror.CodeNotFound,
		"store not found",
		http.StatusNotFound,
	)
)
