package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
	domainRepo "github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
)

const (
	userResource = "users"
	authResource = "session"
)

type userRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewUserRepository creates the REST-backed user resource client.
func NewUserRepository(client *rest.Client, log zerolog.Logger) domainRepo.UserRepository {
	return &userRepository{client: client, log: log}
}

// userWire is the backend shape of a back-office user.
type userWire struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
}

type userInputWire struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Rol      string `json:"rol"`
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	var rows []userWire
	if err := r.client.Get(ctx, "/usuarios", &rows); err != nil {
		return nil, rest.FetchError(err, userResource)
	}
	users := make([]entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, r.toEntity(row))
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var row userWire
	if err := r.client.Get(ctx, fmt.Sprintf("/usuarios/%d", id), &row); err != nil {
		return nil, rest.FetchError(err, userResource)
	}
	user := r.toEntity(row)
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, input *domainRepo.UserInput) (*entity.User, error) {
	body := userInputWire{Username: input.Username, Password: input.Password, Rol: string(input.Role)}
	var row userWire
	if err := r.client.Post(ctx, "/usuarios", body, &row); err != nil {
		return nil, rest.FetchError(err, userResource)
	}
	user := r.toEntity(row)
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, input *domainRepo.UserInput) (*entity.User, error) {
	body := userInputWire{Username: input.Username, Password: input.Password, Rol: string(input.Role)}
	var row userWire
	if err := r.client.Put(ctx, fmt.Sprintf("/usuarios/%d", id), body, &row); err != nil {
		return nil, rest.FetchError(err, userResource)
	}
	user := r.toEntity(row)
	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/usuarios/%d", id)); err != nil {
		return rest.FetchError(err, userResource)
	}
	return nil
}

func (r *userRepository) toEntity(row userWire) entity.User {
	role, ok := enum.ParseUserRole(row.Rol)
	if !ok {
		rest.CoercedEnum(r.log, userResource, "rol", row.Rol)
	}
	return entity.User{
		ID:       row.ID,
		Username: row.Username,
		Role:     role,
	}
}

type authRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewAuthRepository creates the REST-backed authentication client.
func NewAuthRepository(client *rest.Client, log zerolog.Logger) domainRepo.AuthRepository {
	return &authRepository{client: client, log: log}
}

// loginResponseWire is the backend shape of a successful login.
type loginResponseWire struct {
	Token   string   `json:"token"`
	Usuario userWire `json:"usuario"`
}

func (r *authRepository) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	body := map[string]string{"username": username, "password": password}
	var resp loginResponseWire
	if err := r.client.Post(ctx, "/login", body, &resp); err != nil {
		return "", nil, rest.FetchError(err, authResource)
	}
	role, ok := enum.ParseUserRole(resp.Usuario.Rol)
	if !ok {
		rest.CoercedEnum(r.log, authResource, "rol", resp.Usuario.Rol)
	}
	user := &entity.User{
		ID:       resp.Usuario.ID,
		Username: resp.Usuario.Username,
		Role:     role,
	}
	return resp.Token, user, nil
}

func (r *authRepository) Logout(ctx context.Context) error {
	if err := r.client.Post(ctx, "/logout", nil, nil); err != nil {
		return rest.FetchError(err, authResource)
	}
	return nil
}
