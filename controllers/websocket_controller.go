package controllers

import (
	"net/http"

	"mazingira-mind-backend/models"
	"mazingira-mind-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

type WebSocketController struct {
	chatbotService *services.ChatbotService
	logger         *zap.Logger
}

func NewWebSocketController(chatbotService *services.ChatbotService, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		chatbotService: chatbotService,
		logger:         logger,
	}
}

// HandleWebSocket runs a chat loop over one connection: every inbound
// frame goes through the triage pipeline, every outbound frame is the
// resulting analysis.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		wc.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	for {
		var msg map[string]string
		err := conn.ReadJSON(&msg)
		if err != nil {
			wc.logger.Debug("websocket read ended", zap.Error(err))
			break
		}

		req := models.ChatRequest{
			Message:   msg["message"],
			SessionID: sessionID,
			UserID:    msg["user_id"],
		}

		response, err := wc.chatbotService.ProcessMessage(c.Request.Context(), req)
		if err != nil {
			conn.WriteJSON(map[string]interface{}{
				"error": "Failed to process message",
			})
			continue
		}

		conn.WriteJSON(response)
	}
}
