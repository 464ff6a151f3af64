package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hitesh0303/union-coders/service"
	"github.com/hitesh0303/union-coders/types"
)

type ChatHandler struct {
	simplifyService *service.SimplifyService
}

func NewChatHandler(simplifyService *service.SimplifyService) *ChatHandler {
	return &ChatHandler{
		simplifyService: simplifyService,
	}
}

// HandleChat answers one follow-up question about the document content the
// client sent along. The transcript lives entirely on the client.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var chatRequest types.ChatRequest
	if err := c.ShouldBindJSON(&chatRequest); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	if chatRequest.Message == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Message is required",
		})
		return
	}

	response, err := h.simplifyService.Answer(c.Request.Context(), chatRequest.Message, chatRequest.DocumentContent)
	if err != nil {
		c.JSON(http.StatusBadGateway, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.ChatResponse{
			Response: response,
		},
	})
}
