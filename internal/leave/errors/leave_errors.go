package leaveerrors

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
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
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
	ErrStaffNotInStore = apperror.New(
		apperror.CodeInvalidInput,
		"user is not active staff of this store",
		http.StatusBadRequest,
	)
	ErrNotRequestOwner = apperror.New(
		apperror.CodeForbidden,
		"leave requests may only be created for yourself",
		http.StatusForbidden,
	)
	ErrAlreadyRequested = apperror.New(
		apperror.CodeConflict,
		"an active leave request already exists for this date",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"leave request is not pending",
		http.StatusBadRequest,
	)
	ErrNotCancelable = apperror.New(
		apperror.CodeForbidden,
		"only the creator may cancel their own pending request",
		http.StatusForbidden,
	)
)
