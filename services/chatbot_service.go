package services

import (
	"context"
	"fmt"
	"time"

	"mazingira-mind-backend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ChatbotService runs the triage pipeline for incoming messages and
// records every exchange. Persistence failures are logged but never
// prevent the user from getting a reply.
type ChatbotService struct {
	pipeline *TriagePipeline
	db       *mongo.Database
	logger   *zap.Logger
}

func NewChatbotService(pipeline *TriagePipeline, db *mongo.Database, logger *zap.Logger) *ChatbotService {
	return &ChatbotService{
		pipeline: pipeline,
		db:       db,
		logger:   logger,
	}
}

// ProcessMessage analyzes the message and stores the exchange. A blank
// session id starts a new conversation.
func (s *ChatbotService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	analysis := s.pipeline.Process(ctx, req.Message, req.UserID)

	s.saveExchange(ctx, sessionID, req, analysis)

	return &models.ChatResponse{
		SessionID:    sessionID,
		ChatAnalysis: analysis,
	}, nil
}

// GetChatHistory returns stored messages for a session, newest first.
func (s *ChatbotService) GetChatHistory(ctx context.Context, sessionID string, limit int64) ([]models.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.db.Collection("messages").Find(ctx, bson.M{"session_id": sessionID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat history: %w", err)
	}

	return messages, nil
}

// GetStats aggregates message and session counts for the admin endpoint.
func (s *ChatbotService) GetStats(ctx context.Context) (*models.ChatStats, error) {
	messages := s.db.Collection("messages")

	total, err := messages.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	crisis, err := messages.CountDocuments(ctx, bson.M{"is_crisis": true})
	if err != nil {
		return nil, fmt.Errorf("failed to count crisis messages: %w", err)
	}

	sessions, err := s.db.Collection("sessions").CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	return &models.ChatStats{
		TotalMessages:  total,
		CrisisMessages: crisis,
		TotalSessions:  sessions,
	}, nil
}

// saveExchange records the message and refreshes the session. Errors are
// logged only; the reply has already been produced.
func (s *ChatbotService) saveExchange(ctx context.Context, sessionID string, req models.ChatRequest, analysis models.ChatAnalysis) {
	if s.db == nil {
		return
	}

	now := time.Now()

	message := models.Message{
		SessionID:    sessionID,
		UserID:       req.UserID,
		UserMessage:  req.Message,
		BotResponse:  analysis.Message,
		IsCrisis:     analysis.IsCrisis,
		CrisisLevel:  analysis.CrisisLevel,
		ResponseType: analysis.ResponseType,
		Confidence:   analysis.Confidence,
		Timestamp:    now,
	}
	if analysis.Sentiment != nil {
		message.Sentiment = analysis.Sentiment.Label
	}
	if analysis.MentalState != nil {
		message.Category = analysis.MentalState.Category
	}

	if _, err := s.db.Collection("messages").InsertOne(ctx, message); err != nil {
		s.logger.Error("failed to save chat message", zap.Error(err), zap.String("session_id", sessionID))
	}

	sessionUpdate := bson.M{
		"$set": bson.M{
			"last_activity": now,
			"user_id":       req.UserID,
		},
		"$setOnInsert": bson.M{
			"session_id": sessionID,
			"created_at": now,
		},
	}
	updateOptions := options.Update().SetUpsert(true)
	if _, err := s.db.Collection("sessions").UpdateOne(ctx, bson.M{"session_id": sessionID}, sessionUpdate, updateOptions); err != nil {
		s.logger.Error("failed to update session", zap.Error(err), zap.String("session_id", sessionID))
	}
}
