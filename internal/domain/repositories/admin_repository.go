package repositories

import (
	"context"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
)

// AdminRepository define a interface para persistência de administradores.
// O credential store é read-mostly: escritas acontecem apenas no seed
// inicial e no registro de setup.
type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	FindByID(ctx context.Context, id string) (*entities.Admin, error)
	FindByEmail(ctx context.Context, email string) (*entities.Admin, error)
}
