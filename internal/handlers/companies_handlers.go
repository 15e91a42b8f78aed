package handlers

import (
	"net/http"

	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/services"

	"github.com/labstack/echo/v4"
)

type CompanyHandlers struct {
	companyService services.CompanyService
}

func NewCompanyHandlers(companyService services.CompanyService) *CompanyHandlers {
	return &CompanyHandlers{companyService: companyService}
}

type CompanyRequest struct {
	Name string `json:"name"`
}

func (h *CompanyHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	company, err := h.companyService.Create(ctx, &models.Company{Name: req.Name})
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandlers) GetByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	company, err := h.companyService.GetByID(ctx, id)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *CompanyHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	company, err := h.companyService.Update(ctx, id, &models.Company{Name: req.Name})
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *CompanyHandlers) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.HTTPError(err)
	}

	if err := h.companyService.Delete(ctx, id); err != nil {
		return common.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type ListCompaniesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (h *CompanyHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListCompaniesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	companies, err := h.companyService.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return common.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"companies": companies,
	})
}
