package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyfare/flightbooking/internal/service/chat"
)

type ChatHandler struct {
	service chat.ChatUseCase
}

type chatMessageRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

func NewChatHandler(service chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Register(router *gin.RouterGroup) {
	router.POST("/message", h.message)
}

func (h *ChatHandler) message(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}

	reply, err := h.service.HandleMessage(c.Request.Context(), req.Message, req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
