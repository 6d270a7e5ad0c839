package repository

import (
	"context"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
)

// UserRepository defines the resource client for back-office users. Users are
// a catalog resource: deletion is physical.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, input *UserInput) (*entity.User, error)
	Update(ctx context.Context, id int64, input *UserInput) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}

// AuthRepository defines the authentication calls. Login returns the bearer
// token together with the authenticated profile; persisting both into the
// session cell is the auth service's job.
type AuthRepository interface {
	Login(ctx context.Context, username, password string) (string, *entity.User, error)
	Logout(ctx context.Context) error
}

// UserInput carries the fields for creating or updating a user.
type UserInput struct {
	Username string
	Password string
	Role     enum.UserRole
}
