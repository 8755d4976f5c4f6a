package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SalvarProdutoRequest is shared by POST /produtos and PUT /produtos/{id}.
// Omitted aliquotas receive the usual Brazilian defaults (18 / 1.65 / 7.6 / 0)
// in the service layer.
type SalvarProdutoRequest struct {
	EmpresaID     string          `json:"empresa_id"     validate:"required,uuid"`
	Nome          string          `json:"nome"           validate:"required,min=2,max=150"`
	Codigo        string          `json:"codigo"         validate:"required,max=60"`
	Categoria     string          `json:"categoria"      validate:"required"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"min=0"`

	AliquotaICMS   *decimal.Decimal `json:"aliquota_icms"   validate:"omitempty,min=0,max=100"`
	AliquotaPIS    *decimal.Decimal `json:"aliquota_pis"    validate:"omitempty,min=0,max=100"`
	AliquotaCOFINS *decimal.Decimal `json:"aliquota_cofins" validate:"omitempty,min=0,max=100"`
	AliquotaIPI    *decimal.Decimal `json:"aliquota_ipi"    validate:"omitempty,min=0,max=100"`
}

// ProdutoFilter is bound from the query string of GET /produtos.
type ProdutoFilter struct {
	EmpresaID string `form:"empresa_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID             string          `json:"id"`
	EmpresaID      string          `json:"empresa_id"`
	Nome           string          `json:"nome"`
	Codigo         string          `json:"codigo"`
	Categoria      string          `json:"categoria"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"`
	AliquotaICMS   decimal.Decimal `json:"aliquota_icms"`
	AliquotaPIS    decimal.Decimal `json:"aliquota_pis"`
	AliquotaCOFINS decimal.Decimal `json:"aliquota_cofins"`
	AliquotaIPI    decimal.Decimal `json:"aliquota_ipi"`
	CreatedAt      string          `json:"created_at"`
}
