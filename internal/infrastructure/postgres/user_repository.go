package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bakeapp-api/internal/domain"
	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository implementación PostgreSQL de repository.UserRepository.
type UserRepository struct {
	db Querier
}

// NewUserRepository crea el repositorio sobre un pool o una transacción.
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserta el usuario. Email duplicado se traduce a domain.ErrEmailAlreadyExists.
func (r *UserRepository) Create(user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, password_hash, google_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Email, nullIfEmpty(user.PasswordHash), nullIfEmpty(user.GoogleID),
		user.Role, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

// GetByID busca por ID; devuelve (nil, nil) si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, google_id, role, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id))
}

// GetByEmail busca por email; devuelve (nil, nil) si no existe.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, google_id, role, created_at, updated_at
		FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, email))
}

// Update actualiza email, hash, google_id y rol.
func (r *UserRepository) Update(user *entity.User) error {
	user.UpdatedAt = time.Now()
	query := `
		UPDATE users
		SET email = $2, password_hash = $3, google_id = $4, role = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Email, nullIfEmpty(user.PasswordHash), nullIfEmpty(user.GoogleID),
		user.Role, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("actualizar usuario: %w", err)
	}
	return nil
}

// List devuelve una página de usuarios ordenada por fecha de creación.
func (r *UserRepository) List(limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, email, password_hash, google_id, role, created_at, updated_at
		FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Delete elimina el usuario; el booleano indica si existía.
func (r *UserRepository) Delete(id string) (bool, error) {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("eliminar usuario: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.User, error) {
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var passwordHash, googleID *string
	if err := row.Scan(&u.ID, &u.Email, &passwordHash, &googleID, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("escanear usuario: %w", err)
	}
	u.PasswordHash = derefStr(passwordHash)
	u.GoogleID = derefStr(googleID)
	return &u, nil
}
