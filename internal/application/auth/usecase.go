package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bakeapp-api/internal/application/dto"
	"github.com/jhoicas/bakeapp-api/internal/domain"
	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
	"github.com/jhoicas/bakeapp-api/pkg/jwt"
	"github.com/jhoicas/bakeapp-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y login con Google.
type AuthUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
	profiles repository.ProfileStores
	mailer   Mailer
	log      *logger.Logger
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. mailer puede ser nil (sin SMTP configurado).
func NewAuthUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	profiles repository.ProfileStores,
	mailer Mailer,
	log *logger.Logger,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		txRunner: txRunner,
		userRepo: userRepo,
		profiles: profiles,
		mailer:   mailer,
		log:      log,
		jwtCfg:   jwtCfg,
	}
}

// Register crea identidad + perfil en una transacción y envía el correo de
// bienvenida en segundo plano. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	out, err := uc.CreateUser(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.sendWelcomeAsync(out.Email, in.Name)
	return out, nil
}

// CreateUser crea identidad + perfil sin enviar correo (ruta de administración).
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := NormalizeEmail(in.Email)
	role := in.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if err := validateProfileFields(role, in); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.createWithProfile(ctx, user, profileFieldsFrom(in)); err != nil {
		return nil, err
	}
	return ToUserResponse(user, profileFrom(role, profileFieldsFrom(in))), nil
}

// Login verifica email/password y genera el JWT.
// Email inexistente -> ErrUserNotFound; hash no coincide -> ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	// Cuentas creadas solo vía Google no tienen password
	if user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueToken(user)
}

// LoginWithGoogle acepta un email ya verificado por el proveedor OAuth.
// Si el usuario no existe se crea como CUSTOMER sin password; si existe se
// completa su GoogleID cuando falta y se emite el token.
func (uc *AuthUseCase) LoginWithGoogle(ctx context.Context, in dto.GoogleLoginRequest) (*dto.LoginResponse, error) {
	email := NormalizeEmail(in.Email)
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		now := time.Now()
		user = &entity.User{
			ID:        uuid.New().String(),
			Email:     email,
			GoogleID:  in.GoogleID,
			Role:      entity.RoleCustomer,
			CreatedAt: now,
			UpdatedAt: now,
		}
		fields := entity.ProfileFields{Name: in.Name}
		if err := uc.createWithProfile(ctx, user, fields); err != nil {
			return nil, err
		}
		uc.sendWelcomeAsync(email, in.Name)
	} else if user.GoogleID == "" {
		user.GoogleID = in.GoogleID
		user.UpdatedAt = time.Now()
		if err := uc.userRepo.Update(user); err != nil {
			return nil, err
		}
	}
	return uc.issueToken(user)
}

// createWithProfile persiste usuario y variante de perfil en una sola transacción.
func (uc *AuthUseCase) createWithProfile(ctx context.Context, user *entity.User, fields entity.ProfileFields) error {
	return uc.txRunner.RunRegister(ctx, func(users repository.UserRepository, profiles repository.ProfileStores) error {
		if err := users.Create(user); err != nil {
			return err
		}
		if store := profiles.ByRole(user.Role); store != nil {
			if err := store.Upsert(user.ID, fields); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *AuthUseCase) issueToken(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	profile, err := uc.loadProfile(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user, profile)}, nil
}

func (uc *AuthUseCase) loadProfile(user *entity.User) (*entity.Profile, error) {
	store := uc.profiles.ByRole(user.Role)
	if store == nil {
		return nil, nil
	}
	return store.GetByUser(user.ID)
}

// sendWelcomeAsync dispara el correo de bienvenida sin bloquear la respuesta.
func (uc *AuthUseCase) sendWelcomeAsync(email, name string) {
	if uc.mailer == nil {
		return
	}
	go func() {
		if err := uc.mailer.SendWelcome(email, name); err != nil {
			uc.log.Warn().Err(err).Str("email", email).Msg("correo de bienvenida no enviado")
		}
	}()
}

// validateProfileFields exige los campos obligatorios de la variante del rol.
func validateProfileFields(role string, in dto.RegisterRequest) error {
	switch role {
	case entity.RoleEmployee:
		if in.Department == "" || !entity.ValidDepartment(in.Department) {
			return domain.ErrInvalidInput
		}
	case entity.RoleSupplier:
		if in.CompanyName == "" {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func profileFieldsFrom(in dto.RegisterRequest) entity.ProfileFields {
	return entity.ProfileFields{
		Name:        in.Name,
		Phone:       in.Phone,
		Address:     in.Address,
		Department:  in.Department,
		CompanyName: in.CompanyName,
		Contact:     in.Contact,
	}
}

// profileFrom arma la unión en memoria para responder sin releer de la DB.
func profileFrom(role string, f entity.ProfileFields) *entity.Profile {
	switch role {
	case entity.RoleCustomer:
		return &entity.Profile{Role: role, Customer: &entity.CustomerProfile{Name: f.Name, Phone: f.Phone, Address: f.Address}}
	case entity.RoleEmployee:
		return &entity.Profile{Role: role, Employee: &entity.EmployeeProfile{Name: f.Name, Department: f.Department}}
	case entity.RoleSupplier:
		return &entity.Profile{Role: role, Supplier: &entity.SupplierProfile{CompanyName: f.CompanyName, Contact: f.Contact}}
	}
	return nil
}

// NormalizeEmail pasa el email a minúsculas y sin espacios (unicidad case-insensitive).
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ToUserResponse mapea User + Profile a la respuesta pública (sin hash).
func ToUserResponse(u *entity.User, p *entity.Profile) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if p != nil {
		pr := &dto.ProfileResponse{Role: p.Role}
		switch {
		case p.Customer != nil:
			pr.Name = p.Customer.Name
			pr.Phone = p.Customer.Phone
			pr.Address = p.Customer.Address
		case p.Employee != nil:
			pr.Name = p.Employee.Name
			pr.Department = p.Employee.Department
		case p.Supplier != nil:
			pr.CompanyName = p.Supplier.CompanyName
			pr.Contact = p.Supplier.Contact
		}
		out.Profile = pr
	}
	return out
}
