package infra

// excel.go — XLSX fiscal report via excelize: one row per nota with its
// stored totals, styled header, auto-sized columns.

import (
	"bytes"
	"fmt"

	"fiscalmanager/internal/model"

	"github.com/xuri/excelize/v2"
)

const relatorioSheet = "Relatorio Fiscal"

// RelatorioExcel renders the per-nota fiscal report and returns the XLSX bytes.
func RelatorioExcel(notas []model.NotaFiscal) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(relatorioSheet)
	if err != nil {
		return nil, fmt.Errorf("excel: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: drop default sheet: %w", err)
	}

	headers := []string{"Numero NF", "Empresa", "Data Emissao", "Valor Total", "ICMS", "PIS", "COFINS", "IPI"}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: header style: %w", err)
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(relatorioSheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: write header: %w", err)
		}
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(relatorioSheet, "A1", endHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("excel: apply header style: %w", err)
	}

	for i := range notas {
		n := &notas[i]
		row := i + 2
		values := []interface{}{
			n.NumeroNF,
			n.EmpresaNome,
			n.DataEmissao.Format("02/01/2006 15:04"),
			n.TotalValor.InexactFloat64(),
			n.TotalICMS.InexactFloat64(),
			n.TotalPIS.InexactFloat64(),
			n.TotalCOFINS.InexactFloat64(),
			n.TotalIPI.InexactFloat64(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(relatorioSheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: write row %d: %w", row, err)
			}
		}
	}

	// Reasonable fixed widths — excelize has no auto-fit.
	if err := f.SetColWidth(relatorioSheet, "A", "C", 22); err != nil {
		return nil, fmt.Errorf("excel: column width: %w", err)
	}
	if err := f.SetColWidth(relatorioSheet, "D", "H", 14); err != nil {
		return nil, fmt.Errorf("excel: column width: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: render report: %w", err)
	}
	return buf.Bytes(), nil
}
