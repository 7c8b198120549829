package repository

import (
	"time"

	"github.com/jhoicas/spra-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para las cuentas de la aplicación.
// Los Find* devuelven nil sin error cuando el usuario no existe; el caso de
// uso de auth decide cómo responder sin filtrar si la cuenta existe.
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	UpdateLastLogin(userID string, at time.Time) error
}
