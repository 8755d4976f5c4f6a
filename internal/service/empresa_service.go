package service

import (
	"context"
	"time"

	"fiscalmanager/internal/apierror"
	"fiscalmanager/internal/dto"
	"fiscalmanager/internal/model"
	"fiscalmanager/internal/repository"

	"github.com/google/uuid"
)

type EmpresaService interface {
	Criar(ctx context.Context, usuarioID uuid.UUID, req dto.SalvarEmpresaRequest) (*dto.EmpresaResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.EmpresaResponse, error)
	ObterPorID(ctx context.Context, usuarioID, id uuid.UUID) (*dto.EmpresaResponse, error)
	Atualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.SalvarEmpresaRequest) (*dto.EmpresaResponse, error)
	Excluir(ctx context.Context, usuarioID, id uuid.UUID) error
}

type empresaService struct {
	repo     repository.EmpresaRepository
	notaRepo repository.NotaRepository
}

func NewEmpresaService(repo repository.EmpresaRepository, notaRepo repository.NotaRepository) EmpresaService {
	return &empresaService{repo: repo, notaRepo: notaRepo}
}

func (s *empresaService) Criar(ctx context.Context, usuarioID uuid.UUID, req dto.SalvarEmpresaRequest) (*dto.EmpresaResponse, error) {
	exists, err := s.repo.ExistsByCNPJ(ctx, usuarioID, req.CNPJ)
	if err != nil {
		return nil, storageErr(err, "")
	}
	if exists {
		return nil, apierror.Conflict("CNPJ ja cadastrado")
	}

	empresa := &model.Empresa{
		UsuarioID:        usuarioID,
		Nome:             req.Nome,
		CNPJ:             req.CNPJ,
		Rua:              req.Rua,
		Numero:           req.Numero,
		Bairro:           req.Bairro,
		Cidade:           req.Cidade,
		Estado:           req.Estado,
		CEP:              req.CEP,
		RegimeTributario: req.RegimeTributario,
	}
	if err := s.repo.Create(ctx, empresa); err != nil {
		return nil, storageErr(err, "")
	}
	return empresaToResponse(empresa), nil
}

func (s *empresaService) Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.EmpresaResponse, error) {
	empresas, err := s.repo.List(ctx, usuarioID)
	if err != nil {
		return nil, storageErr(err, "")
	}
	resp := make([]dto.EmpresaResponse, len(empresas))
	for i := range empresas {
		resp[i] = *empresaToResponse(&empresas[i])
	}
	return resp, nil
}

func (s *empresaService) ObterPorID(ctx context.Context, usuarioID, id uuid.UUID) (*dto.EmpresaResponse, error) {
	empresa, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, storageErr(err, "Empresa nao encontrada")
	}
	return empresaToResponse(empresa), nil
}

func (s *empresaService) Atualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.SalvarEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresa, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, storageErr(err, "Empresa nao encontrada")
	}

	empresa.Nome = req.Nome
	empresa.CNPJ = req.CNPJ
	empresa.Rua = req.Rua
	empresa.Numero = req.Numero
	empresa.Bairro = req.Bairro
	empresa.Cidade = req.Cidade
	empresa.Estado = req.Estado
	empresa.CEP = req.CEP
	empresa.RegimeTributario = req.RegimeTributario

	if err := s.repo.Update(ctx, empresa); err != nil {
		return nil, storageErr(err, "")
	}
	return empresaToResponse(empresa), nil
}

// Excluir rejects the deletion while issued notas still reference the
// empresa. Issued documents keep their own name/price snapshots, but a
// dangling empresa_id would break the dashboard joins.
func (s *empresaService) Excluir(ctx context.Context, usuarioID, id uuid.UUID) error {
	referenced, err := s.notaRepo.ExistsByEmpresa(ctx, id)
	if err != nil {
		return storageErr(err, "")
	}
	if referenced {
		return apierror.Conflict("Empresa possui notas fiscais emitidas e nao pode ser excluida")
	}

	affected, err := s.repo.Delete(ctx, usuarioID, id)
	if err != nil {
		return storageErr(err, "")
	}
	if affected == 0 {
		return apierror.NotFound("Empresa nao encontrada")
	}
	return nil
}

func empresaToResponse(e *model.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:               e.ID.String(),
		Nome:             e.Nome,
		CNPJ:             e.CNPJ,
		Rua:              e.Rua,
		Numero:           e.Numero,
		Bairro:           e.Bairro,
		Cidade:           e.Cidade,
		Estado:           e.Estado,
		CEP:              e.CEP,
		RegimeTributario: e.RegimeTributario,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}
