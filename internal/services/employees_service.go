package services

import (
	"context"
	"errors"
	"log/slog"

	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EmployeeService interface {
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	Update(ctx context.Context, id uuid.UUID, employee *models.Employee) (*models.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Employee, error)
}

type employeeService struct {
	employeeRepo  repositories.EmployeeRepository
	warehouseRepo repositories.WarehouseRepository
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository, warehouseRepo repositories.WarehouseRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo, warehouseRepo: warehouseRepo}
}

func (s *employeeService) validate(ctx context.Context, employee *models.Employee) error {
	if err := common.ValidateRequiredString(employee.FirstName, "first name"); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(employee.LastName, "last name"); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(employee.Phone, "phone"); err != nil {
		return err
	}
	if employee.AssignedWarehouseID != nil {
		if _, err := s.warehouseRepo.GetByID(ctx, *employee.AssignedWarehouseID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.NewNotFound("warehouse", employee.AssignedWarehouseID.String())
			}
			return err
		}
	}
	return nil
}

func (s *employeeService) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := s.validate(ctx, employee); err != nil {
		return nil, err
	}
	employee.ID = uuid.New()
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	slog.Info("created employee", "id", employee.ID)
	return employee, nil
}

func (s *employeeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("employee", id.String())
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Update(ctx context.Context, id uuid.UUID, employee *models.Employee) (*models.Employee, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, employee); err != nil {
		return nil, err
	}

	existing.FirstName = employee.FirstName
	existing.LastName = employee.LastName
	existing.Phone = employee.Phone
	existing.Email = employee.Email
	existing.AssignedWarehouseID = employee.AssignedWarehouseID

	if err := s.employeeRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	slog.Info("updated employee", "id", id)
	return existing, nil
}

func (s *employeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("deleted employee", "id", id)
	return nil
}

func (s *employeeService) List(ctx context.Context, limit, offset int) ([]*models.Employee, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.employeeRepo.List(ctx, limit, offset)
}
