package repository

import (
	"context"

	"app/internal/domain/model"
)

type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (model.AdminUser, error)
	Create(ctx context.Context, u model.AdminUser) (model.AdminUser, error)
}
