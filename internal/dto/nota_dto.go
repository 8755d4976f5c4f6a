package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemNotaRequest struct {
	ProdutoID  string          `json:"produto_id" validate:"required,uuid"`
	Quantidade decimal.Decimal `json:"quantidade" validate:"required,gt=0"`
}

type EmitirNotaRequest struct {
	EmpresaID string            `json:"empresa_id" validate:"required,uuid"`
	NumeroNF  string            `json:"numero_nf"  validate:"required,max=60"`
	Itens     []ItemNotaRequest `json:"itens"      validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemNotaResponse struct {
	ProdutoID      string          `json:"produto_id"`
	ProdutoNome    string          `json:"produto_nome"`
	Quantidade     decimal.Decimal `json:"quantidade"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"`
	AliquotaICMS   decimal.Decimal `json:"aliquota_icms"`
	AliquotaPIS    decimal.Decimal `json:"aliquota_pis"`
	AliquotaCOFINS decimal.Decimal `json:"aliquota_cofins"`
	AliquotaIPI    decimal.Decimal `json:"aliquota_ipi"`
	TotalItem      decimal.Decimal `json:"total_item"`
	ICMSItem       decimal.Decimal `json:"icms_item"`
	PISItem        decimal.Decimal `json:"pis_item"`
	COFINSItem     decimal.Decimal `json:"cofins_item"`
	IPIItem        decimal.Decimal `json:"ipi_item"`
}

type NotaResponse struct {
	ID          string             `json:"id"`
	EmpresaID   string             `json:"empresa_id"`
	EmpresaNome string             `json:"empresa_nome"`
	NumeroNF    string             `json:"numero_nf"`
	DataEmissao string             `json:"data_emissao"`
	Itens       []ItemNotaResponse `json:"itens"`
	TotalValor  decimal.Decimal    `json:"total_valor"`
	TotalICMS   decimal.Decimal    `json:"total_icms"`
	TotalPIS    decimal.Decimal    `json:"total_pis"`
	TotalCOFINS decimal.Decimal    `json:"total_cofins"`
	TotalIPI    decimal.Decimal    `json:"total_ipi"`
}
