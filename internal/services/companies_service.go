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

type CompanyService interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	Update(ctx context.Context, id uuid.UUID, company *models.Company) (*models.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Company, error)
}

type companyService struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	if err := common.ValidateRequiredString(company.Name, "name"); err != nil {
		return nil, err
	}
	company.ID = uuid.New()
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	slog.Info("created company", "id", company.ID, "name", company.Name)
	return company, nil
}

func (s *companyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("company", id.String())
		}
		return nil, err
	}
	return company, nil
}

func (s *companyService) Update(ctx context.Context, id uuid.UUID, company *models.Company) (*models.Company, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(company.Name, "name"); err != nil {
		return nil, err
	}
	existing.Name = company.Name
	if err := s.companyRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	slog.Info("updated company", "id", id)
	return existing, nil
}

func (s *companyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("deleted company", "id", id)
	return nil
}

func (s *companyService) List(ctx context.Context, limit, offset int) ([]*models.Company, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.companyRepo.List(ctx, limit, offset)
}
