package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonathanEDR/gestorappb/internal/chat"
	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/middleware"
)

type ChatHandler struct{ svc chat.Service }

func NewChatHandler(svc chat.Service) *ChatHandler { return &ChatHandler{svc: svc} }

func (h *ChatHandler) Mensaje(c *gin.Context) {
	var req dto.ChatRequest
	if !bindAndValidate(c, &req) {
		return
	}
	reply, err := h.svc.Responder(c.Request.Context(), middleware.UserID(c), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
