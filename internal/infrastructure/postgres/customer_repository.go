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

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository persistencia PostgreSQL de perfiles de cliente (tabla customers).
type CustomerRepository struct {
	db Querier
}

// NewCustomerRepository crea el repositorio sobre un pool o una transacción.
func NewCustomerRepository(db Querier) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Role rol cuya variante maneja este store.
func (r *CustomerRepository) Role() string { return entity.RoleCustomer }

// Upsert crea o actualiza el perfil del usuario (una fila por user_id).
func (r *CustomerRepository) Upsert(userID string, fields entity.ProfileFields) error {
	now := time.Now()
	query := `
		INSERT INTO customers (id, user_id, name, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name, phone = EXCLUDED.phone, address = EXCLUDED.address, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(context.Background(), query,
		uuid.New().String(), userID, fields.Name, nullIfEmpty(fields.Phone), nullIfEmpty(fields.Address), now)
	if err != nil {
		return fmt.Errorf("upsert perfil de cliente: %w", err)
	}
	return nil
}

// GetByUser devuelve el perfil del usuario como unión etiquetada, o nil si no existe.
func (r *CustomerRepository) GetByUser(userID string) (*entity.Profile, error) {
	c, err := r.get(`WHERE user_id = $1`, userID)
	if err != nil || c == nil {
		return nil, err
	}
	return &entity.Profile{Role: entity.RoleCustomer, Customer: c}, nil
}

// GetByID devuelve el perfil por su propio ID, o nil si no existe.
func (r *CustomerRepository) GetByID(id string) (*entity.CustomerProfile, error) {
	return r.get(`WHERE id = $1`, id)
}

// DeleteByUser elimina el perfil del usuario si existe.
func (r *CustomerRepository) DeleteByUser(userID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM customers WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("eliminar perfil de cliente: %w", err)
	}
	return nil
}

func (r *CustomerRepository) get(where, arg string) (*entity.CustomerProfile, error) {
	query := `
		SELECT id, user_id, name, phone, address, created_at, updated_at
		FROM customers ` + where

	var c entity.CustomerProfile
	var phone, address *string
	err := r.db.QueryRow(context.Background(), query, arg).
		Scan(&c.ID, &c.UserID, &c.Name, &phone, &address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener perfil de cliente: %w", err)
	}
	c.Phone = derefStr(phone)
	c.Address = derefStr(address)
	return &c, nil
}
