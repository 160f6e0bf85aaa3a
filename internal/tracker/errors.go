package tracker

import "errors"

var (
	// ErrCategoryNotFound indicates the referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrReportNotFound indicates the referenced report does not exist.
	ErrReportNotFound = errors.New("report not found")
)
