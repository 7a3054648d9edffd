package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bakeapp-api/internal/application/auth"
	"github.com/jhoicas/bakeapp-api/internal/application/dto"
	"github.com/jhoicas/bakeapp-api/internal/domain"
	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// UserUseCase administración de identidades y perfiles: creación con gate de
// rol, patch de identidad + upsert de perfil y borrado en cascada idempotente.
type UserUseCase struct {
	userRepo repository.UserRepository
	profiles repository.ProfileStores
	authUC   *auth.AuthUseCase
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, profiles repository.ProfileStores, authUC *auth.AuthUseCase) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, profiles: profiles, authUC: authUC}
}

// CreateAsActor crea un usuario en nombre de un actor autenticado.
// Solo un ADMIN puede crear cuentas que no sean CUSTOMER.
func (uc *UserUseCase) CreateAsActor(ctx context.Context, actorRole string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if role != entity.RoleCustomer && actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	in.Role = role
	return uc.authUC.CreateUser(ctx, in)
}

// GetByID devuelve el usuario con su perfil, o ErrUserNotFound.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	if !entity.ValidID(id) {
		return nil, fmt.Errorf("%w: id de usuario malformado %q", domain.ErrInvalidInput, id)
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	profile, err := uc.loadProfile(user)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user, profile), nil
}

// List devuelve usuarios paginados con sus perfiles.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		profile, err := uc.loadProfile(u)
		if err != nil {
			return nil, err
		}
		items = append(items, *auth.ToUserResponse(u, profile))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update parchea email y hace upsert del perfil de la variante del rol
// almacenado. Un rol en el payload distinto al almacenado es inválido: el rol
// no se cambia por esta vía y evita crear perfiles de la forma equivocada.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidID(id) {
		return nil, fmt.Errorf("%w: id de usuario malformado %q", domain.ErrInvalidInput, id)
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != "" && in.Role != user.Role {
		return nil, domain.ErrInvalidInput
	}

	if in.Email != "" {
		email := auth.NormalizeEmail(in.Email)
		if email != user.Email {
			existing, err := uc.userRepo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != user.ID {
				return nil, domain.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	store := uc.profiles.ByRole(user.Role)
	if store != nil && hasProfileFields(in) {
		fields, err := uc.mergedFields(store, user.ID, in)
		if err != nil {
			return nil, err
		}
		if err := store.Upsert(user.ID, fields); err != nil {
			return nil, err
		}
	}

	profile, err := uc.loadProfile(user)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user, profile), nil
}

// Remove elimina identidad y después intenta borrar las tres variantes de
// perfil (no-op donde no exista). Segunda llamada: ErrUserNotFound, sin efectos.
func (uc *UserUseCase) Remove(id string) error {
	if !entity.ValidID(id) {
		return fmt.Errorf("%w: id de usuario malformado %q", domain.ErrInvalidInput, id)
	}
	existed, err := uc.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrUserNotFound
	}
	for _, store := range uc.profiles.All() {
		if err := store.DeleteByUser(id); err != nil {
			return err
		}
	}
	return nil
}

func (uc *UserUseCase) loadProfile(user *entity.User) (*entity.Profile, error) {
	store := uc.profiles.ByRole(user.Role)
	if store == nil {
		return nil, nil
	}
	return store.GetByUser(user.ID)
}

// mergedFields completa el patch con los valores actuales del perfil para que
// un upsert parcial no borre campos no enviados.
func (uc *UserUseCase) mergedFields(store repository.ProfileStore, userID string, in dto.UpdateUserRequest) (entity.ProfileFields, error) {
	fields := entity.ProfileFields{
		Name:        in.Name,
		Phone:       in.Phone,
		Address:     in.Address,
		Department:  in.Department,
		CompanyName: in.CompanyName,
		Contact:     in.Contact,
	}
	current, err := store.GetByUser(userID)
	if err != nil {
		return fields, err
	}
	if current == nil {
		return fields, nil
	}
	switch {
	case current.Customer != nil:
		fillIfEmpty(&fields.Name, current.Customer.Name)
		fillIfEmpty(&fields.Phone, current.Customer.Phone)
		fillIfEmpty(&fields.Address, current.Customer.Address)
	case current.Employee != nil:
		fillIfEmpty(&fields.Name, current.Employee.Name)
		fillIfEmpty(&fields.Department, current.Employee.Department)
	case current.Supplier != nil:
		fillIfEmpty(&fields.CompanyName, current.Supplier.CompanyName)
		fillIfEmpty(&fields.Contact, current.Supplier.Contact)
	}
	return fields, nil
}

func hasProfileFields(in dto.UpdateUserRequest) bool {
	return in.Name != "" || in.Phone != "" || in.Address != "" ||
		in.Department != "" || in.CompanyName != "" || in.Contact != ""
}

func fillIfEmpty(dst *string, current string) {
	if *dst == "" {
		*dst = current
	}
}
