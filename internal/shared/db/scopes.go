package db

import (
	"strings"

	"gorm.io/gorm"
)

// Paginate applies LIMIT/OFFSET for 1-based pages. pageSize <= 0 disables it.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return tx
		}
		if page < 1 {
			page = 1
		}
		return tx.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// OrderBy sorts by column when it appears in allowed, falling back otherwise.
// Column names never reach SQL unless whitelisted.
func OrderBy(column, order string, allowed map[string]string, fallback string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		col, ok := allowed[strings.ToLower(column)]
		if !ok {
			return tx.Order(fallback)
		}
		dir := "ASC"
		if strings.EqualFold(order, "desc") {
			dir = "DESC"
		}
		return tx.Order(col + " " + dir)
	}
}
