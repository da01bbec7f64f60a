package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/studentroster/internal/app/models/dto"
	"github.com/kerem/studentroster/internal/pkg/apperrors"
	"github.com/kerem/studentroster/internal/pkg/logger"
	"github.com/kerem/studentroster/internal/pkg/validation"
)

// HandleAPIError maps domain errors to transport responses. Validation and
// bad-request errors carry their own message; store failures are logged with
// operation context and answered with a generic message so internal detail
// never reaches the client.
func HandleAPIError(c *gin.Context, err error) {
	var verrs *validation.Errors

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(verrs.First().Message))

	case errors.Is(err, apperrors.ErrInvalidID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid id"))

	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found"))

	default:
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
