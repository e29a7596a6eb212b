package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is one stored chat exchange: the user's text plus the reply the
// triage pipeline produced for it.
type Message struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID    string             `bson:"session_id" json:"session_id"`
	UserID       string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserMessage  string             `bson:"user_message" json:"user_message"`
	BotResponse  string             `bson:"bot_response" json:"bot_response"`
	IsCrisis     bool               `bson:"is_crisis" json:"is_crisis"`
	CrisisLevel  CrisisLevel        `bson:"crisis_level,omitempty" json:"crisis_level,omitempty"`
	Sentiment    SentimentLabel     `bson:"sentiment,omitempty" json:"sentiment,omitempty"`
	Category     ConcernCategory    `bson:"category,omitempty" json:"category,omitempty"`
	ResponseType ResponseType       `bson:"response_type,omitempty" json:"response_type,omitempty"`
	Confidence   float64            `bson:"confidence" json:"confidence"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}

// ConversationSession groups the messages of one user conversation.
type ConversationSession struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID    string             `bson:"session_id" json:"session_id"`
	UserID       string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	LastActivity time.Time          `bson:"last_activity" json:"last_activity"`
}

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
}

// ChatResponse is what the API returns for one chat turn: the full
// analysis plus the session the exchange was recorded under.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	ChatAnalysis
}

// ChatStats is the admin view over stored messages.
type ChatStats struct {
	TotalMessages  int64 `json:"total_messages"`
	CrisisMessages int64 `json:"crisis_messages"`
	TotalSessions  int64 `json:"total_sessions"`
}
