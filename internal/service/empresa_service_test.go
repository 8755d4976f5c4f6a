package service

import (
	"context"
	"net/http"
	"testing"

	"fiscalmanager/internal/apierror"
	"fiscalmanager/internal/dto"
	"fiscalmanager/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func empresaRequest() dto.SalvarEmpresaRequest {
	return dto.SalvarEmpresaRequest{
		Nome:             "Acme Comercio LTDA",
		CNPJ:             "12.345.678/0001-90",
		Rua:              "Rua das Flores",
		Numero:           "100",
		Bairro:           "Centro",
		Cidade:           "Sao Paulo",
		Estado:           "SP",
		CEP:              "01000-000",
		RegimeTributario: model.RegimeSimplesNacional,
	}
}

func buildEmpresaSvc() (EmpresaService, *stubEmpresaRepo, *stubNotaRepo) {
	empresaRepo := newStubEmpresaRepo()
	notaRepo := newStubNotaRepo()
	return NewEmpresaService(empresaRepo, notaRepo), empresaRepo, notaRepo
}

func TestCriarEmpresa(t *testing.T) {
	svc, repo, _ := buildEmpresaSvc()
	usuarioID := uuid.New()

	resp, err := svc.Criar(context.Background(), usuarioID, empresaRequest())
	require.NoError(t, err)
	assert.Equal(t, "Acme Comercio LTDA", resp.Nome)
	assert.Equal(t, model.RegimeSimplesNacional, resp.RegimeTributario)
	assert.Len(t, repo.empresas, 1)
}

func TestCriarEmpresaCNPJDuplicado(t *testing.T) {
	svc, _, _ := buildEmpresaSvc()
	usuarioID := uuid.New()
	ctx := context.Background()

	_, err := svc.Criar(ctx, usuarioID, empresaRequest())
	require.NoError(t, err)

	_, err = svc.Criar(ctx, usuarioID, empresaRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apierror.StatusOf(err))

	// The uniqueness check is per usuario: another account may register the
	// same CNPJ.
	_, err = svc.Criar(ctx, uuid.New(), empresaRequest())
	assert.NoError(t, err)
}

func TestObterEmpresaDeOutroUsuario(t *testing.T) {
	svc, _, _ := buildEmpresaSvc()
	ctx := context.Background()

	resp, err := svc.Criar(ctx, uuid.New(), empresaRequest())
	require.NoError(t, err)

	outro := uuid.New()
	_, err = svc.ObterPorID(ctx, outro, uuid.MustParse(resp.ID))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestAtualizarEmpresa(t *testing.T) {
	svc, _, _ := buildEmpresaSvc()
	usuarioID := uuid.New()
	ctx := context.Background()

	created, err := svc.Criar(ctx, usuarioID, empresaRequest())
	require.NoError(t, err)

	req := empresaRequest()
	req.Nome = "Acme Renomeada LTDA"
	updated, err := svc.Atualizar(ctx, usuarioID, uuid.MustParse(created.ID), req)
	require.NoError(t, err)
	assert.Equal(t, "Acme Renomeada LTDA", updated.Nome)
	assert.Equal(t, created.ID, updated.ID)
}

func TestExcluirEmpresaComNotasEmitidas(t *testing.T) {
	svc, _, notaRepo := buildEmpresaSvc()
	usuarioID := uuid.New()
	ctx := context.Background()

	created, err := svc.Criar(ctx, usuarioID, empresaRequest())
	require.NoError(t, err)
	empresaID := uuid.MustParse(created.ID)

	require.NoError(t, notaRepo.Create(ctx, &model.NotaFiscal{
		UsuarioID: usuarioID,
		EmpresaID: empresaID,
		NumeroNF:  "NF-001",
	}))

	err = svc.Excluir(ctx, usuarioID, empresaID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apierror.StatusOf(err))
}

func TestExcluirEmpresaInexistente(t *testing.T) {
	svc, _, _ := buildEmpresaSvc()

	err := svc.Excluir(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}
