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

type CategoryService interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := common.ValidateRequiredString(category.Name, "name"); err != nil {
		return nil, err
	}
	category.ID = uuid.New()
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	slog.Info("created category", "id", category.ID, "name", category.Name)
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("category", id.String())
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, category *models.Category) (*models.Category, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(category.Name, "name"); err != nil {
		return nil, err
	}
	existing.Name = category.Name
	if err := s.categoryRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	slog.Info("updated category", "id", id)
	return existing, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("deleted category", "id", id)
	return nil
}

func (s *categoryService) List(ctx context.Context, limit, offset int) ([]*models.Category, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.categoryRepo.List(ctx, limit, offset)
}
