package handlers

import (
	"errors"
	"net/http"

	"github.com/EYOB-A19/Astu-compliant-system/internal/service"
)

// errStatus maps a service failure onto an HTTP status. Anything not listed
// is a plain validation failure.
func errStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrRoleMismatch), errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrCategoryExists):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}
