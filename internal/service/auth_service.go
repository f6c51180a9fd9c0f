package service

import (
	"errors"

	"github.com/DesVallees/VAQ-sub000/internal/model"
	"github.com/DesVallees/VAQ-sub000/internal/repository"
	"github.com/DesVallees/VAQ-sub000/pkg/jwt"
	"github.com/DesVallees/VAQ-sub000/pkg/validator"
)

// Authentication errors are the only ones surfaced to the dashboard in
// Spanish; everything else uses the generic banner.
var (
	ErrCorreoInvalido       = errors.New("correo electrónico inválido")
	ErrUsuarioNoEncontrado  = errors.New("usuario no encontrado")
	ErrContrasenaIncorrecta = errors.New("contraseña incorrecta")
	ErrCuentaInactiva       = errors.New("la cuenta está desactivada")
	ErrNoEsAdministrador    = errors.New("la cuenta no tiene permisos de administrador")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type TokenValidationResponse struct {
	User model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	if !validator.IsEmail(email) {
		return nil, ErrCorreoInvalido
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	if !user.CheckPassword(password) {
		return nil, ErrContrasenaIncorrecta
	}

	if !user.IsActive {
		return nil, ErrCuentaInactiva
	}

	// Valid credentials are not enough: the admin dashboard only admits
	// accounts with the admin flag. Non-admin logins never get a token.
	if !user.IsAdmin {
		return nil, ErrNoEsAdministrador
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, user.IsAdmin)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	if !user.IsActive {
		return nil, ErrCuentaInactiva
	}
	if !user.IsAdmin {
		return nil, ErrNoEsAdministrador
	}

	return &TokenValidationResponse{User: user.ToResponse()}, nil
}
