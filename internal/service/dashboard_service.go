package service

import (
	"context"
	"time"

	"fiscalmanager/internal/dto"
	"fiscalmanager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const notasRecentesLimit = 5

type DashboardService interface {
	// Resumo recomputes the dashboard from the live collections on every
	// call; no cached or incremental aggregate exists anywhere.
	Resumo(ctx context.Context, usuarioID uuid.UUID) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	empresaRepo repository.EmpresaRepository
	produtoRepo repository.ProdutoRepository
	notaRepo    repository.NotaRepository
}

func NewDashboardService(
	empresaRepo repository.EmpresaRepository,
	produtoRepo repository.ProdutoRepository,
	notaRepo repository.NotaRepository,
) DashboardService {
	return &dashboardService{empresaRepo: empresaRepo, produtoRepo: produtoRepo, notaRepo: notaRepo}
}

func (s *dashboardService) Resumo(ctx context.Context, usuarioID uuid.UUID) (*dto.DashboardResponse, error) {
	totalEmpresas, err := s.empresaRepo.Count(ctx, usuarioID)
	if err != nil {
		return nil, storageErr(err, "")
	}
	totalProdutos, err := s.produtoRepo.Count(ctx, usuarioID)
	if err != nil {
		return nil, storageErr(err, "")
	}

	// Already ordered by data_emissao descending.
	notas, err := s.notaRepo.List(ctx, usuarioID)
	if err != nil {
		return nil, storageErr(err, "")
	}

	totalValor := decimal.Zero
	icms := decimal.Zero
	pis := decimal.Zero
	cofins := decimal.Zero
	ipi := decimal.Zero
	for i := range notas {
		totalValor = totalValor.Add(notas[i].TotalValor)
		icms = icms.Add(notas[i].TotalICMS)
		pis = pis.Add(notas[i].TotalPIS)
		cofins = cofins.Add(notas[i].TotalCOFINS)
		ipi = ipi.Add(notas[i].TotalIPI)
	}

	recentes := make([]dto.NotaRecenteResponse, 0, notasRecentesLimit)
	for i := 0; i < len(notas) && i < notasRecentesLimit; i++ {
		recentes = append(recentes, dto.NotaRecenteResponse{
			NumeroNF:    notas[i].NumeroNF,
			EmpresaNome: notas[i].EmpresaNome,
			TotalValor:  notas[i].TotalValor,
			DataEmissao: notas[i].DataEmissao.Format(time.RFC3339),
		})
	}

	return &dto.DashboardResponse{
		TotalEmpresas:   totalEmpresas,
		TotalProdutos:   totalProdutos,
		TotalNotas:      int64(len(notas)),
		TotalValorNotas: totalValor,
		TotalImpostos: dto.ImpostosResponse{
			ICMS:   icms,
			PIS:    pis,
			COFINS: cofins,
			IPI:    ipi,
		},
		NotasRecentes: recentes,
	}, nil
}
