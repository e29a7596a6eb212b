package controllers

import (
	"net/http"
	"strconv"

	"mazingira-mind-backend/models"
	"mazingira-mind-backend/services"

	"github.com/gin-gonic/gin"
)

type ChatbotController struct {
	chatbotService *services.ChatbotService
}

func NewChatbotController(chatbotService *services.ChatbotService) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
	}
}

// HandleChat processes chat messages
func (cc *ChatbotController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	// Get user ID from context if authenticated
	userID, _ := c.Get("userID")
	if userID != nil {
		req.UserID = userID.(string)
	}

	response, err := cc.chatbotService.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process message",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetChatHistory retrieves stored messages for a session
func (cc *ChatbotController) GetChatHistory(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "session_id is required",
		})
		return
	}

	limit := int64(50)
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, ok := parseLimit(limitStr); ok {
			limit = l
		}
	}

	history, err := cc.chatbotService.GetChatHistory(c.Request.Context(), sessionID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve chat history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"count":   len(history),
	})
}

// GetStats returns chat usage counters (admin only)
func (cc *ChatbotController) GetStats(c *gin.Context) {
	stats, err := cc.chatbotService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve stats",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func parseLimit(s string) (int64, bool) {
	l, err := strconv.ParseInt(s, 10, 64)
	if err != nil || l <= 0 {
		return 0, false
	}
	return l, true
}
