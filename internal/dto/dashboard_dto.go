package dto

import "github.com/shopspring/decimal"

// ImpostosResponse breaks the accumulated taxes down by category.
type ImpostosResponse struct {
	ICMS   decimal.Decimal `json:"icms"`
	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`
	IPI    decimal.Decimal `json:"ipi"`
}

// NotaRecenteResponse is the dashboard projection of a recent nota.
type NotaRecenteResponse struct {
	NumeroNF    string          `json:"numero_nf"`
	EmpresaNome string          `json:"empresa_nome"`
	TotalValor  decimal.Decimal `json:"total_valor"`
	DataEmissao string          `json:"data_emissao"`
}

// DashboardResponse is recomputed on every GET /dashboard call — no cached
// or incremental aggregate exists anywhere.
type DashboardResponse struct {
	TotalEmpresas   int64                 `json:"total_empresas"`
	TotalProdutos   int64                 `json:"total_produtos"`
	TotalNotas      int64                 `json:"total_notas"`
	TotalValorNotas decimal.Decimal       `json:"total_valor_notas"`
	TotalImpostos   ImpostosResponse      `json:"total_impostos"`
	NotasRecentes   []NotaRecenteResponse `json:"notas_recentes"`
}
