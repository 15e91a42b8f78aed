package models

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	FirstName           string     `json:"first_name" db:"first_name"`
	LastName            string     `json:"last_name" db:"last_name"`
	Phone               string     `json:"phone" db:"phone"`
	Email               *string    `json:"email" db:"email"`
	AssignedWarehouseID *uuid.UUID `json:"assigned_warehouse_id" db:"assigned_warehouse_id"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}
