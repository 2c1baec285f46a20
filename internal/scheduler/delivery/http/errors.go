package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/response"
)

var validationErrs = []error{
	scheduler.ErrMissingTitle,
	scheduler.ErrInvalidDuration,
	scheduler.ErrInvalidPriority,
	scheduler.ErrInvalidDate,
	scheduler.ErrInvalidEvent,
	scheduler.ErrInvalidWorkingHour,
	scheduler.ErrInvalidWorkingDay,
	scheduler.ErrInvalidBreak,
	scheduler.ErrInvalidRange,
}

func isValidationErr(err error) bool {
	for _, verr := range validationErrs {
		if errors.Is(err, verr) {
			return true
		}
	}
	return false
}

func (h *handler) mapError(c *gin.Context, err error) {
	if isValidationErr(err) {
		response.Error(c, err, nil)
		return
	}
	response.InternalError(c, err)
}
