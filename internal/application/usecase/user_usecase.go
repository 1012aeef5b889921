package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/koajpc/backoffice-api/internal/application/dto"
	"github.com/koajpc/backoffice-api/internal/domain"
	"github.com/koajpc/backoffice-api/internal/domain/entity"
	"github.com/koajpc/backoffice-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario nuevo: hashea el password con bcrypt y persiste.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByEmail(email)
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
		Name:         strings.TrimSpace(in.Name),
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List devuelve usuarios paginados.
func (uc *UserUseCase) List(page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update actualiza email, nombre, rol, estado o password de un usuario.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Name != "" {
		user.Name = strings.TrimSpace(in.Name)
	}
	if in.Role != "" {
		if !entity.ValidRole(in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = in.Role
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Deactivate desactiva un usuario (borrado lógico).
func (uc *UserUseCase) Deactivate(id string) error {
	return uc.repo.Deactivate(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
