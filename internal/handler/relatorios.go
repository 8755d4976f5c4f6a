package handler

import (
	"net/http"

	"fiscalmanager/internal/middleware"
	"fiscalmanager/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

func (h *RelatoriosHandler) PDF(c *gin.Context) {
	doc, err := h.svc.GerarPDF(c.Request.Context(), middleware.UsuarioID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="relatorio_fiscal.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (h *RelatoriosHandler) Excel(c *gin.Context) {
	doc, err := h.svc.GerarExcel(c.Request.Context(), middleware.UsuarioID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="relatorio_fiscal.xlsx"`)
	c.Data(http.StatusOK, xlsxMIME, doc)
}
