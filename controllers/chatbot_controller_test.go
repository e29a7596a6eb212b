package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mazingira-mind-backend/models"
	"mazingira-mind-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// No classifier capabilities and no database: the pipeline still
	// answers from its keyword heuristics and templates.
	pipeline := services.NewTriagePipeline(nil, nil, zap.NewNop())
	chatbotService := services.NewChatbotService(pipeline, nil, zap.NewNop())
	controller := NewChatbotController(chatbotService)

	router := gin.New()
	router.POST("/api/v1/chat", controller.HandleChat)
	return router
}

func TestHandleChat_ReturnsWellFormedAnalysis(t *testing.T) {
	router := newTestRouter()

	body := `{"message": "I feel so stressed about work", "session_id": "abc-123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "abc-123", response.SessionID)
	assert.False(t, response.IsCrisis)
	assert.NotEmpty(t, response.Message)
	assert.NotEmpty(t, response.Suggestions)
	require.NotNil(t, response.MentalState)
	assert.Equal(t, models.ConcernStress, response.MentalState.Category)
}

func TestHandleChat_CrisisMessage(t *testing.T) {
	router := newTestRouter()

	body := `{"message": "I want to end my life"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.IsCrisis)
	assert.Equal(t, models.CrisisHigh, response.CrisisLevel)
	assert.NotEmpty(t, response.EmergencyContacts)
	// A blank session id starts a new conversation.
	assert.NotEmpty(t, response.SessionID)
}

func TestHandleChat_RejectsEmptyMessage(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"session_id": "abc"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
