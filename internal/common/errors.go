package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Domain error taxonomy. Services return these; handlers translate them with
// HTTPError. Messages on capacity errors carry volumes only, never record
// identifiers.

// NotFoundError means a referenced resource does not exist.
type NotFoundError struct {
	Resource string
	Detail   string
}

func (e *NotFoundError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Detail)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFound builds a NotFoundError for a resource and an optional detail
// such as the missing identifier.
func NewNotFound(resource, detail string) *NotFoundError {
	return &NotFoundError{Resource: resource, Detail: detail}
}

// InvalidOperationError means the request is well-formed but violates a
// business rule, e.g. a quantity change that would go negative.
type InvalidOperationError struct {
	Msg string
}

func (e *InvalidOperationError) Error() string { return e.Msg }

func NewInvalidOperation(msg string) *InvalidOperationError {
	return &InvalidOperationError{Msg: msg}
}

// ConflictError means the operation collides with existing state, e.g. a
// duplicate SKU or deleting a warehouse that still holds stock.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func NewConflict(msg string) *ConflictError {
	return &ConflictError{Msg: msg}
}

// CapacityExceededError is an invalid operation caused by the warehouse
// volume limit. Available and Needed are cubic feet.
type CapacityExceededError struct {
	Available decimal.Decimal
	Needed    decimal.Decimal
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"adding this quantity would exceed warehouse capacity: available space %s cubic feet, needed %s cubic feet",
		e.Available.StringFixed(2), e.Needed.StringFixed(2))
}

// HTTPError maps a domain error onto an echo HTTP error.
func HTTPError(err error) *echo.HTTPError {
	var (
		notFound *NotFoundError
		invalid  *InvalidOperationError
		conflict *ConflictError
		capacity *CapacityExceededError
	)
	switch {
	case errors.As(err, &notFound):
		return echo.NewHTTPError(http.StatusNotFound, notFound.Error())
	case errors.As(err, &capacity):
		return echo.NewHTTPError(http.StatusBadRequest, capacity.Error())
	case errors.As(err, &invalid):
		return echo.NewHTTPError(http.StatusBadRequest, invalid.Error())
	case errors.As(err, &conflict):
		return echo.NewHTTPError(http.StatusConflict, conflict.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "operation could not be completed")
	}
}
