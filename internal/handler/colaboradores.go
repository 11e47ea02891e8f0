package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/middleware"
	"github.com/jonathanEDR/gestorappb/internal/service"
)

type ColaboradoresHandler struct{ svc service.ColaboradorService }

func NewColaboradoresHandler(svc service.ColaboradorService) *ColaboradoresHandler {
	return &ColaboradoresHandler{svc: svc}
}

func (h *ColaboradoresHandler) Crear(c *gin.Context) {
	var req dto.CrearColaboradorRequest
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

func (h *ColaboradoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ColaboradoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarColaboradorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ColaboradoresHandler) Eliminar(c *gin.Context) {
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
