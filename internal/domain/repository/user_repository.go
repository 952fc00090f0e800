package repository

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	// CreateWithBootstrapRole persiste u con rol admin si aún no hay usuarios y staff en
	// caso contrario; la comprobación y el alta son atómicas. Deja el rol asignado en u.Role.
	CreateWithBootstrapRole(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	TouchLastLogin(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
