package service

import (
	"context"
	"net/http"
	"testing"

	"fiscalmanager/internal/apierror"
	"fiscalmanager/internal/config"
	"fiscalmanager/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAuthSvc() (AuthService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1}
	return NewAuthService(repo, cfg), repo
}

func TestRegisterELoginRoundtrip(t *testing.T) {
	svc, _ := buildAuthSvc()
	ctx := context.Background()

	reg, err := svc.Register(ctx, dto.RegisterRequest{
		Nome:  "Maria Silva",
		Email: "maria@example.com",
		Senha: "segredo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "maria@example.com", reg.Usuario.Email)
	assert.Equal(t, "usuario", reg.Usuario.Role)

	login, err := svc.Login(ctx, dto.LoginRequest{Email: "maria@example.com", Senha: "segredo"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, reg.Usuario.ID, login.Usuario.ID)
}

func TestRegisterEmailDuplicado(t *testing.T) {
	svc, _ := buildAuthSvc()
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Nome: "A", Email: "dup@example.com", Senha: "1234"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Nome: "B", Email: "dup@example.com", Senha: "5678"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apierror.StatusOf(err))
	assert.Equal(t, "Email ja cadastrado", err.Error())
}

func TestLoginSenhaErrada(t *testing.T) {
	svc, _ := buildAuthSvc()
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Nome: "A", Email: "a@example.com", Senha: "certa"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "a@example.com", Senha: "errada"})
	require.Error(t, err)
	assert.Equal(t, "Credenciais invalidas", err.Error())
}

func TestLoginEmailInexistente(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Senha: "x"})
	require.Error(t, err)
	assert.Equal(t, "Credenciais invalidas", err.Error())
}
