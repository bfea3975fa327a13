package bindingerrors

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
	ErrInvalidStaffPair = apperror.New(
		apperror.CodeInvalidInput,
		"binding requires an active assistant and an active designer of this store",
		http.StatusBadRequest,
	)
	ErrBindingExists = apperror.New(
		apperror.CodeConflict,
		"an active binding for this pair already exists",
		http.StatusConflict,
	)
	ErrBindingNotFound = apperror.New(
		apperror.CodeNotFound,
		"binding not found",
		http.StatusNotFound,
	)
)
