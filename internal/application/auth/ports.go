package auth

import (
	"context"

	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// TxRunner ejecuta el alta de usuario + perfil dentro de una transacción:
// o se persisten ambos o ninguno.
type TxRunner interface {
	RunRegister(ctx context.Context, fn func(users repository.UserRepository, profiles repository.ProfileStores) error) error
}

// Mailer colaborador externo de correo transaccional. El envío es
// fire-and-forget: un fallo se registra y nunca bloquea el registro.
type Mailer interface {
	SendWelcome(to, name string) error
}
