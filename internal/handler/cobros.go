package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/middleware"
	"github.com/jonathanEDR/gestorappb/internal/service"
)

type CobrosHandler struct{ svc service.CobroService }

func NewCobrosHandler(svc service.CobroService) *CobrosHandler { return &CobrosHandler{svc: svc} }

func (h *CobrosHandler) Crear(c *gin.Context) {
	var req dto.CrearCobroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CobrosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CobrosHandler) Listar(c *gin.Context) {
	var filter dto.CobroFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CobrosHandler) Deuda(c *gin.Context) {
	ventaID, ok := parseID(c, "ventaId")
	if !ok {
		return
	}
	resp, err := h.svc.Deuda(c.Request.Context(), middleware.UserID(c), ventaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CobrosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
