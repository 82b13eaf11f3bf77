package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vet-clinic/internal/validators"
)

// pathID parses :id. Anything that is not a positive integer cannot name a
// row, so it is answered like a miss.
func pathID(c *gin.Context, notFound error) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, notFound
	}
	return uint(id), nil
}

// bindJSON decodes the body into req, translating decode failures into
// field errors.
func bindJSON(c *gin.Context, req any) error {
	return validators.FromBindError(c.ShouldBindJSON(req), req)
}

