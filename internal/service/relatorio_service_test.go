package service

import (
	"context"
	"testing"

	"fiscalmanager/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotasParaRelatorio(t *testing.T, notaRepo *stubNotaRepo, usuarioID uuid.UUID) {
	t.Helper()
	require.NoError(t, notaRepo.Create(context.Background(), &model.NotaFiscal{
		UsuarioID:   usuarioID,
		EmpresaNome: "Acme LTDA",
		NumeroNF:    "NF-001",
		DataEmissao: emissaoFixa,
		TotalValor:  dec("30.00"),
		TotalICMS:   dec("5.40"),
		TotalPIS:    dec("0.50"),
		TotalCOFINS: dec("2.28"),
		TotalIPI:    dec("0.00"),
	}))
}

func TestGerarRelatorioPDF(t *testing.T) {
	notaRepo := newStubNotaRepo()
	usuarioID := uuid.New()
	seedNotasParaRelatorio(t, notaRepo, usuarioID)

	svc := NewRelatorioService(notaRepo)
	doc, err := svc.GerarPDF(context.Background(), usuarioID)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestGerarRelatorioExcel(t *testing.T) {
	notaRepo := newStubNotaRepo()
	usuarioID := uuid.New()
	seedNotasParaRelatorio(t, notaRepo, usuarioID)

	svc := NewRelatorioService(notaRepo)
	doc, err := svc.GerarExcel(context.Background(), usuarioID)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	// xlsx files are zip archives.
	assert.Equal(t, "PK", string(doc[:2]))
}

func TestGerarRelatorioSemNotas(t *testing.T) {
	svc := NewRelatorioService(newStubNotaRepo())

	doc, err := svc.GerarPDF(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
