package controller

import (
	"errors"
	"net/http"

	"github.com/junhyeong9812/simple-bank-back/src/internal/adapter/http/models"
	"github.com/junhyeong9812/simple-bank-back/src/internal/domain"
)

// errorStatus maps business failure kinds to transport status codes:
// not-found is a missing resource, invalid-password and blocked-user are
// distinct rejections, a rejected request shape is the caller's fault.
// Anything else is an infrastructure failure.
func errorStatus(err error) int {
	var notFound *domain.UserNotFoundError
	var blocked *domain.BlockedUserError
	var invalid *models.ValidationError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.As(err, &blocked):
		return http.StatusForbidden
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
