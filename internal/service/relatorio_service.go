package service

import (
	"context"

	"fiscalmanager/internal/infra"
	"fiscalmanager/internal/repository"

	"github.com/google/uuid"
)

// RelatorioService renders the fiscal reports from the stored invoice
// collection. It only reads: all numbers come from the totals frozen at
// emission time.
type RelatorioService interface {
	GerarPDF(ctx context.Context, usuarioID uuid.UUID) ([]byte, error)
	GerarExcel(ctx context.Context, usuarioID uuid.UUID) ([]byte, error)
}

type relatorioService struct {
	notaRepo repository.NotaRepository
}

func NewRelatorioService(notaRepo repository.NotaRepository) RelatorioService {
	return &relatorioService{notaRepo: notaRepo}
}

func (s *relatorioService) GerarPDF(ctx context.Context, usuarioID uuid.UUID) ([]byte, error) {
	notas, err := s.notaRepo.List(ctx, usuarioID)
	if err != nil {
		return nil, storageErr(err, "")
	}
	return infra.RelatorioPDF(notas)
}

func (s *relatorioService) GerarExcel(ctx context.Context, usuarioID uuid.UUID) ([]byte, error) {
	notas, err := s.notaRepo.List(ctx, usuarioID)
	if err != nil {
		return nil, storageErr(err, "")
	}
	return infra.RelatorioExcel(notas)
}
