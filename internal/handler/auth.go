package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		// Credential failures answer 401 regardless of the internal kind so
		// the response never hints whether the username exists.
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthorized", "detail": "Credenciales invalidas"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
