package handler

import (
	"net/http"

	"fiscalmanager/internal/apierror"
	"fiscalmanager/internal/dto"
	"fiscalmanager/internal/middleware"
	"fiscalmanager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotasHandler struct{ svc service.NotaService }

func NewNotasHandler(svc service.NotaService) *NotasHandler {
	return &NotasHandler{svc: svc}
}

func (h *NotasHandler) Emitir(c *gin.Context) {
	var req dto.EmitirNotaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Emitir(c.Request.Context(), middleware.UsuarioID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *NotasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.UsuarioID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotasHandler) ObterPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), middleware.UsuarioID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotasHandler) Excluir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), middleware.UsuarioID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Nota fiscal excluida com sucesso"})
}
