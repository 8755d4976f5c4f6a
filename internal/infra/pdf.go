package infra

// pdf.go — Fiscal summary report generation using go-pdf/fpdf.
// Renders an A4 page with a header and a summary table: nota count, total
// value and the accumulated amount of each tax category. The stored invoice
// totals are the single source of the numbers; nothing is recalculated here.

import (
	"bytes"
	"fmt"

	"fiscalmanager/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// RelatorioPDF renders the fiscal summary report and returns the PDF bytes.
func RelatorioPDF(notas []model.NotaFiscal) ([]byte, error) {
	totalValor := decimal.Zero
	totalICMS := decimal.Zero
	totalPIS := decimal.Zero
	totalCOFINS := decimal.Zero
	totalIPI := decimal.Zero
	for i := range notas {
		totalValor = totalValor.Add(notas[i].TotalValor)
		totalICMS = totalICMS.Add(notas[i].TotalICMS)
		totalPIS = totalPIS.Add(notas[i].TotalPIS)
		totalCOFINS = totalCOFINS.Add(notas[i].TotalCOFINS)
		totalIPI = totalIPI.Add(notas[i].TotalIPI)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "Relatorio Fiscal - FiscalManager", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Summary table ─────────────────────────────────────────────────────────
	col1 := contentW * 0.62
	col2 := contentW * 0.38

	rows := []struct{ label, value string }{
		{"Total de Notas", fmt.Sprintf("%d", len(notas))},
		{"Valor Total", "R$ " + totalValor.StringFixed(2)},
		{"ICMS", "R$ " + totalICMS.StringFixed(2)},
		{"PIS", "R$ " + totalPIS.StringFixed(2)},
		{"COFINS", "R$ " + totalCOFINS.StringFixed(2)},
		{"IPI", "R$ " + totalIPI.StringFixed(2)},
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(col1, 9, "Resumo", "1", 0, "L", true, 0, "")
	pdf.CellFormat(col2, 9, "Valor", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.CellFormat(col1, 8, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 8, row.value, "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
