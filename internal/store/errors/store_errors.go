package storeerrors

import (
	"net/http"

	"github.com/ray0128/sunday-for-rayinhair/internal/shared/apperror"
)

var (
	ErrStoreNotFound = apperror.New(
		apperror.CodeNotFound,
		"store not found",
		http.StatusNotFound,
	)
	ErrInvalidTimezone = apperror.New(
		apperror.CodeInvalidInput,
		"invalid IANA timezone name",
		http.StatusBadRequest,
	)
)
