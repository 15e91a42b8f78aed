package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParseUUID validates and parses a UUID path or query parameter.
func ParseUUID(idStr, fieldName string) (uuid.UUID, error) {
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return uuid.Nil, NewInvalidOperation(fmt.Sprintf("%s is required", fieldName))
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, NewInvalidOperation(fmt.Sprintf("%s is not a valid UUID", fieldName))
	}
	return id, nil
}

// ValidateRequiredString validates required string fields.
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewInvalidOperation(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// NormalizePagination clamps limit/offset to sane bounds.
func NormalizePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ParseTimeParam parses an optional RFC 3339 query parameter. An empty value
// yields nil (unbounded).
func ParseTimeParam(value, fieldName string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, NewInvalidOperation(fmt.Sprintf("%s must be an RFC 3339 timestamp", fieldName))
	}
	return &t, nil
}

// SafeString safely dereferences string pointers.
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
