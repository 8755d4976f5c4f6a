package service

import (
	"context"
	"time"

	"fiscalmanager/internal/apierror"
	"fiscalmanager/internal/dto"
	"fiscalmanager/internal/fiscal"
	"fiscalmanager/internal/model"
	"fiscalmanager/internal/repository"

	"github.com/google/uuid"
)

type NotaService interface {
	// Emitir resolves the referenced empresa and produtos, freezes their
	// prices, rates and names into the nota, computes all amounts and
	// persists the whole record atomically.
	Emitir(ctx context.Context, usuarioID uuid.UUID, req dto.EmitirNotaRequest) (*dto.NotaResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.NotaResponse, error)
	ObterPorID(ctx context.Context, usuarioID, id uuid.UUID) (*dto.NotaResponse, error)
	Excluir(ctx context.Context, usuarioID, id uuid.UUID) error
}

type notaService struct {
	repo        repository.NotaRepository
	empresaRepo repository.EmpresaRepository
	produtoRepo repository.ProdutoRepository
	// now is injectable for deterministic data_emissao in tests.
	now func() time.Time
}

func NewNotaService(
	repo repository.NotaRepository,
	empresaRepo repository.EmpresaRepository,
	produtoRepo repository.ProdutoRepository,
) NotaService {
	return &notaService{
		repo:        repo,
		empresaRepo: empresaRepo,
		produtoRepo: produtoRepo,
		now:         time.Now,
	}
}

func (s *notaService) Emitir(ctx context.Context, usuarioID uuid.UUID, req dto.EmitirNotaRequest) (*dto.NotaResponse, error) {
	empresaID, err := uuid.Parse(req.EmpresaID)
	if err != nil {
		return nil, apierror.Validation("empresa_id invalido")
	}
	empresa, err := s.empresaRepo.FindByID(ctx, usuarioID, empresaID)
	if err != nil {
		return nil, storageErr(err, "Empresa nao encontrada")
	}

	if len(req.Itens) == 0 {
		return nil, apierror.Validation("A nota precisa de pelo menos um item")
	}

	// Resolve every produto and compute every line before touching storage:
	// any failure here leaves no trace.
	itens := make([]model.ItemNota, 0, len(req.Itens))
	lines := make([]fiscal.LineResult, 0, len(req.Itens))
	for _, item := range req.Itens {
		produtoID, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, apierror.Validation("produto_id invalido")
		}
		produto, err := s.produtoRepo.FindByID(ctx, usuarioID, produtoID)
		if err != nil {
			return nil, storageErr(err, "Produto "+item.ProdutoID+" nao encontrado")
		}

		line, err := fiscal.ComputeLine(item.Quantidade, produto.ValorUnitario, fiscal.Aliquotas{
			ICMS:   produto.AliquotaICMS,
			PIS:    produto.AliquotaPIS,
			COFINS: produto.AliquotaCOFINS,
			IPI:    produto.AliquotaIPI,
		})
		if err != nil {
			return nil, apierror.Validation(err.Error())
		}

		itens = append(itens, model.ItemNota{
			ProdutoID:      produto.ID,
			ProdutoNome:    produto.Nome,
			Quantidade:     item.Quantidade,
			ValorUnitario:  produto.ValorUnitario,
			AliquotaICMS:   produto.AliquotaICMS,
			AliquotaPIS:    produto.AliquotaPIS,
			AliquotaCOFINS: produto.AliquotaCOFINS,
			AliquotaIPI:    produto.AliquotaIPI,
			TotalItem:      line.TotalItem,
			ICMSItem:       line.ICMSItem,
			PISItem:        line.PISItem,
			COFINSItem:     line.COFINSItem,
			IPIItem:        line.IPIItem,
		})
		lines = append(lines, line)
	}

	totals, err := fiscal.ComputeTotals(lines)
	if err != nil {
		return nil, apierror.Validation(err.Error())
	}

	nota := &model.NotaFiscal{
		UsuarioID:   usuarioID,
		EmpresaID:   empresa.ID,
		EmpresaNome: empresa.Nome,
		NumeroNF:    req.NumeroNF,
		DataEmissao: s.now().UTC(),
		Itens:       itens,
		TotalValor:  totals.TotalValor,
		TotalICMS:   totals.TotalICMS,
		TotalPIS:    totals.TotalPIS,
		TotalCOFINS: totals.TotalCOFINS,
		TotalIPI:    totals.TotalIPI,
	}
	if err := s.repo.Create(ctx, nota); err != nil {
		return nil, storageErr(err, "")
	}
	return notaToResponse(nota), nil
}

func (s *notaService) Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.NotaResponse, error) {
	notas, err := s.repo.List(ctx, usuarioID)
	if err != nil {
		return nil, storageErr(err, "")
	}
	resp := make([]dto.NotaResponse, len(notas))
	for i := range notas {
		resp[i] = *notaToResponse(&notas[i])
	}
	return resp, nil
}

func (s *notaService) ObterPorID(ctx context.Context, usuarioID, id uuid.UUID) (*dto.NotaResponse, error) {
	nota, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, storageErr(err, "Nota fiscal nao encontrada")
	}
	return notaToResponse(nota), nil
}

func (s *notaService) Excluir(ctx context.Context, usuarioID, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, usuarioID, id)
	if err != nil {
		return storageErr(err, "")
	}
	if affected == 0 {
		return apierror.NotFound("Nota fiscal nao encontrada")
	}
	return nil
}

func notaToResponse(n *model.NotaFiscal) *dto.NotaResponse {
	itens := make([]dto.ItemNotaResponse, 0, len(n.Itens))
	for _, item := range n.Itens {
		itens = append(itens, dto.ItemNotaResponse{
			ProdutoID:      item.ProdutoID.String(),
			ProdutoNome:    item.ProdutoNome,
			Quantidade:     item.Quantidade,
			ValorUnitario:  item.ValorUnitario,
			AliquotaICMS:   item.AliquotaICMS,
			AliquotaPIS:    item.AliquotaPIS,
			AliquotaCOFINS: item.AliquotaCOFINS,
			AliquotaIPI:    item.AliquotaIPI,
			TotalItem:      item.TotalItem,
			ICMSItem:       item.ICMSItem,
			PISItem:        item.PISItem,
			COFINSItem:     item.COFINSItem,
			IPIItem:        item.IPIItem,
		})
	}
	return &dto.NotaResponse{
		ID:          n.ID.String(),
		EmpresaID:   n.EmpresaID.String(),
		EmpresaNome: n.EmpresaNome,
		NumeroNF:    n.NumeroNF,
		DataEmissao: n.DataEmissao.Format(time.RFC3339),
		Itens:       itens,
		TotalValor:  n.TotalValor,
		TotalICMS:   n.TotalICMS,
		TotalPIS:    n.TotalPIS,
		TotalCOFINS: n.TotalCOFINS,
		TotalIPI:    n.TotalIPI,
	}
}
