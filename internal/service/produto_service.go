package service

import (
	"context"
	"encoding/json"
	"time"

	"fiscalmanager/internal/apierror"
	"fiscalmanager/internal/dto"
	"fiscalmanager/internal/model"
	"fiscalmanager/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Default aliquotas applied when the request omits a rate, matching common
// Brazilian catalog defaults.
var (
	defaultICMS   = decimal.NewFromInt(18)
	defaultPIS    = decimal.RequireFromString("1.65")
	defaultCOFINS = decimal.RequireFromString("7.6")
	defaultIPI    = decimal.Zero
)

const produtoCacheTTL = 4 * time.Hour

type ProdutoService interface {
	Criar(ctx context.Context, usuarioID uuid.UUID, req dto.SalvarProdutoRequest) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, usuarioID, id uuid.UUID) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.SalvarProdutoRequest) (*dto.ProdutoResponse, error)
	Excluir(ctx context.Context, usuarioID, id uuid.UUID) error
}

type produtoService struct {
	repo        repository.ProdutoRepository
	empresaRepo repository.EmpresaRepository
	notaRepo    repository.NotaRepository
	rdb         *redis.Client
}

func NewProdutoService(
	repo repository.ProdutoRepository,
	empresaRepo repository.EmpresaRepository,
	notaRepo repository.NotaRepository,
	rdb *redis.Client,
) ProdutoService {
	return &produtoService{repo: repo, empresaRepo: empresaRepo, notaRepo: notaRepo, rdb: rdb}
}

func (s *produtoService) Criar(ctx context.Context, usuarioID uuid.UUID, req dto.SalvarProdutoRequest) (*dto.ProdutoResponse, error) {
	empresaID, err := uuid.Parse(req.EmpresaID)
	if err != nil {
		return nil, apierror.Validation("empresa_id invalido")
	}
	if _, err := s.empresaRepo.FindByID(ctx, usuarioID, empresaID); err != nil {
		return nil, storageErr(err, "Empresa nao encontrada")
	}

	produto := &model.Produto{
		UsuarioID:      usuarioID,
		EmpresaID:      empresaID,
		Nome:           req.Nome,
		Codigo:         req.Codigo,
		Categoria:      req.Categoria,
		ValorUnitario:  req.ValorUnitario,
		AliquotaICMS:   rateOrDefault(req.AliquotaICMS, defaultICMS),
		AliquotaPIS:    rateOrDefault(req.AliquotaPIS, defaultPIS),
		AliquotaCOFINS: rateOrDefault(req.AliquotaCOFINS, defaultCOFINS),
		AliquotaIPI:    rateOrDefault(req.AliquotaIPI, defaultIPI),
	}
	if err := s.repo.Create(ctx, produto); err != nil {
		return nil, storageErr(err, "")
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) Listar(ctx context.Context, usuarioID uuid.UUID, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx, usuarioID, filter)
	if err != nil {
		return nil, storageErr(err, "")
	}
	resp := make([]dto.ProdutoResponse, len(produtos))
	for i := range produtos {
		resp[i] = *produtoToResponse(&produtos[i])
	}
	return resp, nil
}

// ObterPorID serves single-product reads through a short-lived Redis cache.
// The cache holds catalog projections only — invoice snapshots and the
// dashboard aggregate never touch it.
func (s *produtoService) ObterPorID(ctx context.Context, usuarioID, id uuid.UUID) (*dto.ProdutoResponse, error) {
	cacheKey := produtoCacheKey(usuarioID, id)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ProdutoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	produto, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, storageErr(err, "Produto nao encontrado")
	}
	resp := produtoToResponse(produto)

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, produtoCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.SalvarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, storageErr(err, "Produto nao encontrado")
	}
	empresaID, err := uuid.Parse(req.EmpresaID)
	if err != nil {
		return nil, apierror.Validation("empresa_id invalido")
	}
	if _, err := s.empresaRepo.FindByID(ctx, usuarioID, empresaID); err != nil {
		return nil, storageErr(err, "Empresa nao encontrada")
	}

	produto.EmpresaID = empresaID
	produto.Nome = req.Nome
	produto.Codigo = req.Codigo
	produto.Categoria = req.Categoria
	produto.ValorUnitario = req.ValorUnitario
	produto.AliquotaICMS = rateOrDefault(req.AliquotaICMS, produto.AliquotaICMS)
	produto.AliquotaPIS = rateOrDefault(req.AliquotaPIS, produto.AliquotaPIS)
	produto.AliquotaCOFINS = rateOrDefault(req.AliquotaCOFINS, produto.AliquotaCOFINS)
	produto.AliquotaIPI = rateOrDefault(req.AliquotaIPI, produto.AliquotaIPI)

	if err := s.repo.Update(ctx, produto); err != nil {
		return nil, storageErr(err, "")
	}
	s.invalidateCache(ctx, usuarioID, id)
	return produtoToResponse(produto), nil
}

// Excluir rejects the deletion while issued notas still reference the
// produto through their line items.
func (s *produtoService) Excluir(ctx context.Context, usuarioID, id uuid.UUID) error {
	referenced, err := s.notaRepo.ExistsByProduto(ctx, id)
	if err != nil {
		return storageErr(err, "")
	}
	if referenced {
		return apierror.Conflict("Produto esta presente em notas fiscais emitidas e nao pode ser excluido")
	}

	affected, err := s.repo.Delete(ctx, usuarioID, id)
	if err != nil {
		return storageErr(err, "")
	}
	if affected == 0 {
		return apierror.NotFound("Produto nao encontrado")
	}
	s.invalidateCache(ctx, usuarioID, id)
	return nil
}

func (s *produtoService) invalidateCache(ctx context.Context, usuarioID, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, produtoCacheKey(usuarioID, id)).Err()
}

func produtoCacheKey(usuarioID, id uuid.UUID) string {
	return "produto:" + usuarioID.String() + ":" + id.String()
}

func rateOrDefault(rate *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if rate == nil {
		return fallback
	}
	return *rate
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:             p.ID.String(),
		EmpresaID:      p.EmpresaID.String(),
		Nome:           p.Nome,
		Codigo:         p.Codigo,
		Categoria:      p.Categoria,
		ValorUnitario:  p.ValorUnitario,
		AliquotaICMS:   p.AliquotaICMS,
		AliquotaPIS:    p.AliquotaPIS,
		AliquotaCOFINS: p.AliquotaCOFINS,
		AliquotaIPI:    p.AliquotaIPI,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}
