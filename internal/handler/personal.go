package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/middleware"
	"github.com/jonathanEDR/gestorappb/internal/service"
)

type PersonalHandler struct{ svc service.PersonalService }

func NewPersonalHandler(svc service.PersonalService) *PersonalHandler {
	return &PersonalHandler{svc: svc}
}

// ── Gestión personal ──────────────────────────────────────────────────────────

func (h *PersonalHandler) CrearGestion(c *gin.Context) {
	var req dto.CrearGestionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearGestion(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PersonalHandler) ListarGestion(c *gin.Context) {
	resp, err := h.svc.ListarGestion(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PersonalHandler) EliminarGestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarGestion(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PersonalHandler) ResumenPlanilla(c *gin.Context) {
	colaboradorID, ok := parseID(c, "colaboradorId")
	if !ok {
		return
	}
	resp, err := h.svc.ResumenPlanilla(c.Request.Context(), middleware.UserID(c), colaboradorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Pagos realizados ──────────────────────────────────────────────────────────

func (h *PersonalHandler) CrearPago(c *gin.Context) {
	var req dto.CrearPagoRealizadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearPago(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PersonalHandler) ListarPagos(c *gin.Context) {
	resp, err := h.svc.ListarPagos(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PersonalHandler) ListarPagosPorColaborador(c *gin.Context) {
	colaboradorID, ok := parseID(c, "colaboradorId")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPagosPorColaborador(c.Request.Context(), middleware.UserID(c), colaboradorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PersonalHandler) ActualizarPago(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarPagoRealizadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarPago(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PersonalHandler) EliminarPago(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarPago(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
