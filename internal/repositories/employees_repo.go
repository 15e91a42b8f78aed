package repositories

import (
	"context"

	"stocktrail/internal/models"

	"github.com/google/uuid"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Employee, error)
	ExistsByAssignedWarehouse(ctx context.Context, warehouseID uuid.UUID) (bool, error)
}

type employeeRepo struct {
	db DBTX
}

func NewEmployeeRepo(db DBTX) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (id, first_name, last_name, phone, email, assigned_warehouse_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, employee.ID, employee.FirstName, employee.LastName, employee.Phone, employee.Email, employee.AssignedWarehouseID)
	return err
}

func (r *employeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	employee := &models.Employee{}
	query := `
		SELECT id, first_name, last_name, phone, email, assigned_warehouse_id, created_at, updated_at
		FROM employees
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&employee.ID, &employee.FirstName, &employee.LastName, &employee.Phone,
		&employee.Email, &employee.AssignedWarehouseID, &employee.CreatedAt, &employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, phone = $3, email = $4, assigned_warehouse_id = $5, updated_at = NOW()
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, employee.FirstName, employee.LastName, employee.Phone, employee.Email, employee.AssignedWarehouseID, employee.ID)
	return err
}

func (r *employeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM employees WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *employeeRepo) List(ctx context.Context, limit, offset int) ([]*models.Employee, error) {
	query := `
		SELECT id, first_name, last_name, phone, email, assigned_warehouse_id, created_at, updated_at
		FROM employees
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee := &models.Employee{}
		if err := rows.Scan(
			&employee.ID, &employee.FirstName, &employee.LastName, &employee.Phone,
			&employee.Email, &employee.AssignedWarehouseID, &employee.CreatedAt, &employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (r *employeeRepo) ExistsByAssignedWarehouse(ctx context.Context, warehouseID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE assigned_warehouse_id = $1)`
	err := r.db.QueryRow(ctx, query, warehouseID).Scan(&exists)
	return exists, err
}
