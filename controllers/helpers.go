package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the numeric :id path parameter. Non-numeric values
// parse to 0, which no row carries, so they surface as not-found the
// same way a missing id does.
func parseID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
