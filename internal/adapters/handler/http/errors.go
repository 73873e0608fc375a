package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrFriendNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyLabel),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyFriendEmail):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNothingToUndo),
		errors.Is(err, domain.ErrNoEditSession):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusInternalServerError:
		c.JSON(status, errorResponse{Error: "internal server error"})
		return
	case http.StatusServiceUnavailable:
		c.JSON(status, errorResponse{Error: "storage unavailable, try again later"})
		return
	}
	c.JSON(status, errorResponse{Error: err.Error()})
}
