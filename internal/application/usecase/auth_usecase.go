package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/domain/repository"
	"github.com/jhoicas/spra-api/pkg/jwt"
)

var validRoles = map[string]bool{
	entity.RoleAdmin:    true,
	entity.RoleOperator: true,
	entity.RoleViewer:   true,
}

// AuthUseCase registro y login de usuarios con JWT.
type AuthUseCase struct {
	repo          repository.UserRepository
	jwtSecret     string
	jwtIssuer     string
	jwtExpMinutes int
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(repo repository.UserRepository, jwtSecret, jwtIssuer string, jwtExpMinutes int) *AuthUseCase {
	return &AuthUseCase{
		repo:          repo,
		jwtSecret:     jwtSecret,
		jwtIssuer:     jwtIssuer,
		jwtExpMinutes: jwtExpMinutes,
	}
}

// Register crea un usuario nuevo. Username y email deben ser únicos;
// el rol por defecto es operator.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	if in.Role == "" {
		in.Role = entity.RoleOperator
	}
	if !validRoles[in.Role] {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.FindByUsername(in.Username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, _ := uc.repo.FindByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         in.Role,
		Status:       "active",
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login valida credenciales y devuelve un JWT con el rol embebido.
// Devuelve ErrUnauthorized sin distinguir usuario inexistente de clave mala.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.repo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Role, uc.jwtIssuer, uc.jwtExpMinutes)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	// El login no debe fallar por no poder registrar la marca de tiempo.
	if err := uc.repo.UpdateLastLogin(user.ID, now); err == nil {
		user.LastLogin = &now
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}
