package configerrors

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
	ErrUnknownConfigKey = apperror.New(
		apperror.CodeInvalidInput,
		"unknown config key",
		http.StatusBadRequest,
	)
	ErrInvalidConfigValue = apperror.New(
		apperror.CodeInvalidInput,
		"config value must be a JSON scalar",
		http.StatusBadRequest,
	)
)
