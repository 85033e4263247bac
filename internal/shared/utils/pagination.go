package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/egest-app/egest/internal/shared/constants"
)

type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size from the query string. Missing
// or non-positive values fall back to the defaults; page_size is capped.
func ParsePagination(c *gin.Context) Pagination {
	p := Pagination{
		Page:     queryInt(c, "page", constants.DefaultPage),
		PageSize: queryInt(c, "page_size", constants.DefaultPageSize),
	}
	if p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.MaxPageSize
	}
	return p
}

func queryInt(c *gin.Context, key string, def int) int {
	if raw := c.Query(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			return n
		}
	}
	return def
}

// TotalPages is never below 1, so an empty list still reports one page.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
