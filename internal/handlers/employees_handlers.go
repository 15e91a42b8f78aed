package handlers

import (
	"net/http"

	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EmployeeHandlers struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandlers(employeeService services.EmployeeService) *EmployeeHandlers {
	return &EmployeeHandlers{employeeService: employeeService}
}

type EmployeeRequest struct {
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Phone               string     `json:"phone"`
	Email               *string    `json:"email"`
	AssignedWarehouseID *uuid.UUID `json:"assigned_warehouse_id"`
}

func (r *EmployeeRequest) toModel() *models.Employee {
	return &models.Employee{
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Phone:               r.Phone,
		Email:               r.Email,
		AssignedWarehouseID: r.AssignedWarehouseID,
	}
}

func (h *EmployeeHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	employee, err := h.employeeService.Create(ctx, req.toModel())
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandlers) GetByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	employee, err := h.employeeService.GetByID(ctx, id)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	employee, err := h.employeeService.Update(ctx, id, req.toModel())
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandlers) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	if err := h.employeeService.Delete(ctx, id); err != nil {
		return common.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type ListEmployeesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *EmployeeHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListEmployeesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	employees, err := h.employeeService.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"employees": employees,
	})
}
