// Package fiscal computes per-item and per-invoice monetary and tax amounts.
// It is pure: no I/O, no clock, no storage. All arithmetic runs on
// shopspring/decimal — percentage scaling on binary floats drifts visibly
// with rates like 1.65%, so floats never enter the computation.
package fiscal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var cem = decimal.NewFromInt(100)

// Aliquotas holds the four percentage rates applied to a line total.
// Each rate must be in [0,100].
type Aliquotas struct {
	ICMS   decimal.Decimal
	PIS    decimal.Decimal
	COFINS decimal.Decimal
	IPI    decimal.Decimal
}

// LineResult carries the rounded amounts of a single line item.
type LineResult struct {
	TotalItem  decimal.Decimal
	ICMSItem   decimal.Decimal
	PISItem    decimal.Decimal
	COFINSItem decimal.Decimal
	IPIItem    decimal.Decimal
}

// Totals is the element-wise sum of LineResults across an invoice.
type Totals struct {
	TotalValor  decimal.Decimal
	TotalICMS   decimal.Decimal
	TotalPIS    decimal.Decimal
	TotalCOFINS decimal.Decimal
	TotalIPI    decimal.Decimal
}

// ErroValidacao reports an input that violates the calculation contract.
type ErroValidacao struct {
	Campo  string
	Motivo string
}

func (e *ErroValidacao) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Motivo)
}

// round2 rounds to 2 decimal places, half up. decimal.Round is half away
// from zero, which is identical for the non-negative amounts handled here.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeLine resolves one line item:
//
//	total_item = round2(quantidade × valorUnitario)
//	tax_item   = round2(total_item × aliquota / 100)   for each of the four taxes
//
// Rounding happens at the line level, before any summation.
func ComputeLine(quantidade, valorUnitario decimal.Decimal, a Aliquotas) (LineResult, error) {
	if !quantidade.IsPositive() {
		return LineResult{}, &ErroValidacao{Campo: "quantidade", Motivo: "deve ser maior que zero"}
	}
	if valorUnitario.IsNegative() {
		return LineResult{}, &ErroValidacao{Campo: "valor_unitario", Motivo: "nao pode ser negativo"}
	}
	for campo, rate := range map[string]decimal.Decimal{
		"aliquota_icms":   a.ICMS,
		"aliquota_pis":    a.PIS,
		"aliquota_cofins": a.COFINS,
		"aliquota_ipi":    a.IPI,
	} {
		if rate.IsNegative() || rate.GreaterThan(cem) {
			return LineResult{}, &ErroValidacao{Campo: campo, Motivo: "fora do intervalo [0,100]"}
		}
	}

	totalItem := round2(quantidade.Mul(valorUnitario))
	return LineResult{
		TotalItem:  totalItem,
		ICMSItem:   round2(totalItem.Mul(a.ICMS).Div(cem)),
		PISItem:    round2(totalItem.Mul(a.PIS).Div(cem)),
		COFINSItem: round2(totalItem.Mul(a.COFINS).Div(cem)),
		IPIItem:    round2(totalItem.Mul(a.IPI).Div(cem)),
	}, nil
}

// ComputeTotals sums the already-rounded line amounts. An invoice must have
// at least one line item.
func ComputeTotals(lines []LineResult) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, &ErroValidacao{Campo: "itens", Motivo: "a nota precisa de pelo menos um item"}
	}
	t := Totals{
		TotalValor:  decimal.Zero,
		TotalICMS:   decimal.Zero,
		TotalPIS:    decimal.Zero,
		TotalCOFINS: decimal.Zero,
		TotalIPI:    decimal.Zero,
	}
	for _, l := range lines {
		t.TotalValor = t.TotalValor.Add(l.TotalItem)
		t.TotalICMS = t.TotalICMS.Add(l.ICMSItem)
		t.TotalPIS = t.TotalPIS.Add(l.PISItem)
		t.TotalCOFINS = t.TotalCOFINS.Add(l.COFINSItem)
		t.TotalIPI = t.TotalIPI.Add(l.IPIItem)
	}
	return t, nil
}
