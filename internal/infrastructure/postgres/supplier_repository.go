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

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository persistencia PostgreSQL de perfiles de proveedor (tabla suppliers).
type SupplierRepository struct {
	db Querier
}

// NewSupplierRepository crea el repositorio sobre un pool o una transacción.
func NewSupplierRepository(db Querier) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// Role rol cuya variante maneja este store.
func (r *SupplierRepository) Role() string { return entity.RoleSupplier }

// Upsert crea o actualiza el perfil del usuario (una fila por user_id).
func (r *SupplierRepository) Upsert(userID string, fields entity.ProfileFields) error {
	now := time.Now()
	query := `
		INSERT INTO suppliers (id, user_id, company_name, contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET company_name = EXCLUDED.company_name, contact = EXCLUDED.contact, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(context.Background(), query,
		uuid.New().String(), userID, fields.CompanyName, nullIfEmpty(fields.Contact), now)
	if err != nil {
		return fmt.Errorf("upsert perfil de proveedor: %w", err)
	}
	return nil
}

// GetByUser devuelve el perfil del usuario como unión etiquetada, o nil si no existe.
func (r *SupplierRepository) GetByUser(userID string) (*entity.Profile, error) {
	s, err := r.get(`WHERE user_id = $1`, userID)
	if err != nil || s == nil {
		return nil, err
	}
	return &entity.Profile{Role: entity.RoleSupplier, Supplier: s}, nil
}

// GetByID devuelve el perfil por su propio ID, o nil si no existe.
func (r *SupplierRepository) GetByID(id string) (*entity.SupplierProfile, error) {
	return r.get(`WHERE id = $1`, id)
}

// DeleteByUser elimina el perfil del usuario si existe.
func (r *SupplierRepository) DeleteByUser(userID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM suppliers WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("eliminar perfil de proveedor: %w", err)
	}
	return nil
}

func (r *SupplierRepository) get(where, arg string) (*entity.SupplierProfile, error) {
	query := `
		SELECT id, user_id, company_name, contact, created_at, updated_at
		FROM suppliers ` + where

	var s entity.SupplierProfile
	var contact *string
	err := r.db.QueryRow(context.Background(), query, arg).
		Scan(&s.ID, &s.UserID, &s.CompanyName, &contact, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener perfil de proveedor: %w", err)
	}
	s.Contact = derefStr(contact)
	return &s, nil
}
