package helpers

import (
	"fmt"
	"strconv"

	"go-messease/models"

	"github.com/gin-gonic/gin"
)

// QueryLimit reads the optional limit query parameter. A limit of 0 means
// no limit.
func QueryLimit(c *gin.Context, def int64) (int64, error) {
	raw, ok := c.GetQuery("limit")
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, queryError("limit", "integer", fmt.Sprintf("%q is not a valid integer", raw))
	}
	if n < 0 {
		return 0, queryError("limit", "gte", "must be greater than or equal to 0")
	}
	return n, nil
}

func QueryBool(c *gin.Context, key string, def bool) (bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, queryError(key, "boolean", fmt.Sprintf("%q is not a valid boolean", raw))
	}
	return b, nil
}

func queryError(field, rule, msg string) error {
	return &models.ValidationError{Fields: []models.FieldError{{
		Field:   "query." + field,
		Rule:    rule,
		Message: msg,
	}}}
}
