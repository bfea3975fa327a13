package bookingerrors

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
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_time must be before end_time, format HH:MM",
		http.StatusBadRequest,
	)
	ErrNotARookie = apperror.New(
		apperror.CodeInvalidInput,
		"bookings only apply to active rookies of this store",
		http.StatusBadRequest,
	)
	ErrNotBookingOwner = apperror.New(
		apperror.CodeForbidden,
		"rookies may only manage their own bookings",
		http.StatusForbidden,
	)
	ErrBookingNotFound = apperror.New(
		apperror.CodeNotFound,
		"booking not found",
		http.StatusNotFound,
	)
)
