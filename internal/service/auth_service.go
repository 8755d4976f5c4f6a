package service

import (
	"context"
	"errors"
	"time"

	"fiscalmanager/internal/apierror"
	"fiscalmanager/internal/config"
	"fiscalmanager/internal/dto"
	"fiscalmanager/internal/model"
	"fiscalmanager/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("Email ja cadastrado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err, "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "usuario"
	}
	user := &model.Usuario{
		Nome:      req.Nome,
		Email:     req.Email,
		SenhaHash: string(hash),
		Role:      role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, storageErr(err, "")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "Usuario cadastrado com sucesso",
		Token:   token,
		Usuario: usuarioToResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.Validation("Credenciais invalidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, apierror.Validation("Credenciais invalidas")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "Login realizado com sucesso",
		Token:   token,
		Usuario: usuarioToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"usuario_id": user.ID.String(),
		"email":      user.Email,
		"role":       user.Role,
		"exp":        time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:    u.ID.String(),
		Nome:  u.Nome,
		Email: u.Email,
		Role:  u.Role,
	}
}
