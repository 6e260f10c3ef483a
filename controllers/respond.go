package controllers

import (
	"errors"

	"github.com/Sittipanpee/dessert-site/pkg/resp"
	"github.com/Sittipanpee/dessert-site/services"
	"github.com/gin-gonic/gin"
)

// map error จาก service เป็น HTTP status
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		resp.Unprocessable(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
