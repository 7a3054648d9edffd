package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)

// EmployeeRepository persistencia PostgreSQL de perfiles de empleado (tabla employees).
type EmployeeRepository struct {
	db Querier
}

// NewEmployeeRepository crea el repositorio sobre un pool o una transacción.
func NewEmployeeRepository(db Querier) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Role rol cuya variante maneja este store.
func (r *EmployeeRepository) Role() string { return entity.RoleEmployee }

// Upsert crea o actualiza el perfil del usuario (una fila por user_id).
func (r *EmployeeRepository) Upsert(userID string, fields entity.ProfileFields) error {
	now := time.Now()
	query := `
		INSERT INTO employees (id, user_id, name, department, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name, department = EXCLUDED.department, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(context.Background(), query,
		uuid.New().String(), userID, fields.Name, fields.Department, now)
	if err != nil {
		return fmt.Errorf("upsert perfil de empleado: %w", err)
	}
	return nil
}

// GetByUser devuelve el perfil del usuario como unión etiquetada, o nil si no existe.
func (r *EmployeeRepository) GetByUser(userID string) (*entity.Profile, error) {
	e, err := r.get(`WHERE user_id = $1`, userID)
	if err != nil || e == nil {
		return nil, err
	}
	return &entity.Profile{Role: entity.RoleEmployee, Employee: e}, nil
}

// GetByID devuelve el perfil por su propio ID, o nil si no existe.
func (r *EmployeeRepository) GetByID(id string) (*entity.EmployeeProfile, error) {
	return r.get(`WHERE id = $1`, id)
}

// DeleteByUser elimina el perfil del usuario si existe.
func (r *EmployeeRepository) DeleteByUser(userID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM employees WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("eliminar perfil de empleado: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) get(where, arg string) (*entity.EmployeeProfile, error) {
	query := `
		SELECT id, user_id, name, department, created_at, updated_at
		FROM employees ` + where

	var e entity.EmployeeProfile
	err := r.db.QueryRow(context.Background(), query, arg).
		Scan(&e.ID, &e.UserID, &e.Name, &e.Department, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener perfil de empleado: %w", err)
	}
	return &e, nil
}
