package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"caseta/internal/shared/errors"
)

// parseIDParam parses a positive numeric :id path parameter.
func parseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewFieldValidationError("id", "invalid identifier", raw)
	}
	return uint(id), nil
}
