package services

import (
	"math"

	"github.com/dmitrijs2005/snsplatform/internal/server/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// normalizePage replaces out-of-range paging input with defaults and caps
// limit at MaxLimit.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// pageOffset returns the number of rows before page. ok is false when the
// offset does not fit in an int; such a page lies past any stored row.
func pageOffset(page, limit int) (offset int, ok bool) {
	if page-1 > (math.MaxInt-limit)/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}

// NewPagination computes page metadata. limit must be positive.
func NewPagination(page, limit int, total int64) models.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return models.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
