package admin

import (
	"context"

	"museumbackend/internal/domain"
)

type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateAdmin(ctx context.Context, u *domain.User) error
}
