package service

import (
	"context"
	"net/http"
	"testing"

	"fiscalmanager/internal/apierror"
	"fiscalmanager/internal/dto"
	"fiscalmanager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func buildProdutoSvc(usuarioID uuid.UUID) (ProdutoService, *stubProdutoRepo, *stubNotaRepo, uuid.UUID) {
	produtoRepo := newStubProdutoRepo()
	empresaRepo := newStubEmpresaRepo()
	notaRepo := newStubNotaRepo()

	empresa := &model.Empresa{UsuarioID: usuarioID, Nome: "Acme LTDA", CNPJ: "12.345.678/0001-90"}
	_ = empresaRepo.Create(context.Background(), empresa)

	svc := NewProdutoService(produtoRepo, empresaRepo, notaRepo, nil)
	return svc, produtoRepo, notaRepo, empresa.ID
}

func produtoRequest(empresaID uuid.UUID) dto.SalvarProdutoRequest {
	return dto.SalvarProdutoRequest{
		EmpresaID:     empresaID.String(),
		Nome:          "Caneta Azul",
		Codigo:        "CAN-001",
		Categoria:     "Papelaria",
		ValorUnitario: dec("10.00"),
	}
}

func TestCriarProdutoAliquotasPadrao(t *testing.T) {
	usuarioID := uuid.New()
	svc, _, _, empresaID := buildProdutoSvc(usuarioID)

	resp, err := svc.Criar(context.Background(), usuarioID, produtoRequest(empresaID))
	require.NoError(t, err)
	assert.True(t, resp.AliquotaICMS.Equal(dec("18")), "ICMS = %s", resp.AliquotaICMS)
	assert.True(t, resp.AliquotaPIS.Equal(dec("1.65")), "PIS = %s", resp.AliquotaPIS)
	assert.True(t, resp.AliquotaCOFINS.Equal(dec("7.6")), "COFINS = %s", resp.AliquotaCOFINS)
	assert.True(t, resp.AliquotaIPI.IsZero(), "IPI = %s", resp.AliquotaIPI)
}

func TestCriarProdutoAliquotasExplicitas(t *testing.T) {
	usuarioID := uuid.New()
	svc, _, _, empresaID := buildProdutoSvc(usuarioID)

	req := produtoRequest(empresaID)
	req.AliquotaICMS = decPtr("12")
	req.AliquotaIPI = decPtr("5")

	resp, err := svc.Criar(context.Background(), usuarioID, req)
	require.NoError(t, err)
	assert.True(t, resp.AliquotaICMS.Equal(dec("12")))
	assert.True(t, resp.AliquotaIPI.Equal(dec("5")))
	// Omitted rates still fall back to the defaults.
	assert.True(t, resp.AliquotaPIS.Equal(dec("1.65")))
}

func TestCriarProdutoEmpresaInexistente(t *testing.T) {
	usuarioID := uuid.New()
	svc, _, _, _ := buildProdutoSvc(usuarioID)

	_, err := svc.Criar(context.Background(), usuarioID, produtoRequest(uuid.New()))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestAtualizarProdutoMantemAliquotasOmitidas(t *testing.T) {
	usuarioID := uuid.New()
	svc, _, _, empresaID := buildProdutoSvc(usuarioID)
	ctx := context.Background()

	req := produtoRequest(empresaID)
	req.AliquotaICMS = decPtr("12")
	created, err := svc.Criar(ctx, usuarioID, req)
	require.NoError(t, err)

	// Update with all rates omitted: the stored rates stay as they were.
	upd := produtoRequest(empresaID)
	upd.ValorUnitario = dec("11.50")
	resp, err := svc.Atualizar(ctx, usuarioID, uuid.MustParse(created.ID), upd)
	require.NoError(t, err)
	assert.True(t, resp.ValorUnitario.Equal(dec("11.50")))
	assert.True(t, resp.AliquotaICMS.Equal(dec("12")))
}

func TestListarProdutosFiltroPorEmpresa(t *testing.T) {
	usuarioID := uuid.New()
	svc, produtoRepo, _, empresaID := buildProdutoSvc(usuarioID)
	ctx := context.Background()

	_, err := svc.Criar(ctx, usuarioID, produtoRequest(empresaID))
	require.NoError(t, err)

	// A product of another empresa, seeded directly.
	outraEmpresa := uuid.New()
	require.NoError(t, produtoRepo.Create(ctx, &model.Produto{
		UsuarioID: usuarioID,
		EmpresaID: outraEmpresa,
		Nome:      "Lapis",
	}))

	todos, err := svc.Listar(ctx, usuarioID, dto.ProdutoFilter{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	filtrados, err := svc.Listar(ctx, usuarioID, dto.ProdutoFilter{EmpresaID: empresaID.String()})
	require.NoError(t, err)
	require.Len(t, filtrados, 1)
	assert.Equal(t, "Caneta Azul", filtrados[0].Nome)
}

func TestExcluirProdutoReferenciadoPorNota(t *testing.T) {
	usuarioID := uuid.New()
	svc, _, notaRepo, empresaID := buildProdutoSvc(usuarioID)
	ctx := context.Background()

	created, err := svc.Criar(ctx, usuarioID, produtoRequest(empresaID))
	require.NoError(t, err)
	produtoID := uuid.MustParse(created.ID)

	require.NoError(t, notaRepo.Create(ctx, &model.NotaFiscal{
		UsuarioID: usuarioID,
		EmpresaID: empresaID,
		NumeroNF:  "NF-001",
		Itens:     []model.ItemNota{{ProdutoID: produtoID, ProdutoNome: created.Nome}},
	}))

	err = svc.Excluir(ctx, usuarioID, produtoID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apierror.StatusOf(err))
}

func TestExcluirProdutoInexistente(t *testing.T) {
	usuarioID := uuid.New()
	svc, _, _, _ := buildProdutoSvc(usuarioID)

	err := svc.Excluir(context.Background(), usuarioID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}
