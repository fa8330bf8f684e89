package api

import (
	"net/http"
	"strconv"

	"hotel-management-api/internal/handler/httperr"
	"hotel-management-api/internal/pkg/errs"
	"hotel-management-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultPageSize = 20

func parseIDParam(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}

func optionalQuery(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := defaultPageSize
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

// abortWithCommonError handles the failures every endpoint shares and reports whether it responded.
func abortWithCommonError(c *gin.Context, err error) bool {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	case errs.Is(err, queries.ErrInvalidFilter):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
	default:
		return false
	}
	return true
}

func abortInternal(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
