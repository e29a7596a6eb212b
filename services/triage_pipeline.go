package services

import (
	"context"

	"mazingira-mind-backend/models"

	"go.uber.org/zap"
)

// crisisSuggestions is the fixed suggestion list attached to every crisis
// response, regardless of message content.
var crisisSuggestions = []string{
	"Get immediate help",
	"Contact emergency services",
	"Reach out to family",
}

const fallbackMessage = "I'm here to listen and support you, though I'm having some technical difficulties processing your message right now. Your mental health is important, and I want to make sure you get the help you need. Can you try rephrasing your question, or would you like me to connect you with other resources?"

var fallbackSuggestions = []string{
	"Try rephrasing your message",
	"Take our mental health assessment",
	"Contact our support team",
	"Explore local mental health resources",
}

// TriagePipeline orchestrates one message through crisis detection,
// sentiment analysis, concern classification, response selection,
// suggestions, and confidence scoring. Crisis detection always runs
// first and short-circuits everything else. The pipeline holds no
// mutable state and is safe for concurrent use.
type TriagePipeline struct {
	crisisDetector *CrisisDetector
	sentiment      *SentimentAnalyzer
	mentalState    *MentalStateClassifier
	responses      *ResponseGenerator
	suggestions    *SuggestionEngine
	confidence     *ConfidenceEstimator
	modelsLoaded   bool
	logger         *zap.Logger
}

// NewTriagePipeline wires the pipeline. Both classifier capabilities may
// be nil; every stage then runs on its keyword heuristic.
func NewTriagePipeline(sentimentClassifier SentimentClassifier, concernClassifier ConcernClassifier, logger *zap.Logger) *TriagePipeline {
	return &TriagePipeline{
		crisisDetector: NewCrisisDetector(concernClassifier, logger),
		sentiment:      NewSentimentAnalyzer(sentimentClassifier, logger),
		mentalState:    NewMentalStateClassifier(concernClassifier, logger),
		responses:      NewResponseGenerator(nil),
		suggestions:    NewSuggestionEngine(),
		confidence:     NewConfidenceEstimator(),
		modelsLoaded:   sentimentClassifier != nil || concernClassifier != nil,
		logger:         logger,
	}
}

// Process analyzes one user message and always returns a well-formed
// ChatAnalysis; no failure in any stage is surfaced to the caller.
func (p *TriagePipeline) Process(ctx context.Context, message, userID string) (analysis models.ChatAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("triage pipeline failure, returning fallback response",
				zap.Any("panic", r),
				zap.String("user_id", userID))
			analysis = p.fallbackAnalysis()
		}
	}()

	// Crisis detection has highest priority and gates the entire reply.
	crisis := p.crisisDetector.Detect(ctx, message)
	if crisis.IsCrisis {
		confidence := crisis.Score
		if confidence > 1.0 {
			confidence = 1.0
		}
		return models.ChatAnalysis{
			Message:           crisis.Message,
			IsCrisis:          true,
			CrisisLevel:       crisis.Level,
			DetectedKeywords:  crisis.DetectedKeywords,
			EmergencyContacts: crisis.EmergencyContacts,
			ImmediateActions:  crisis.ImmediateActions,
			Suggestions:       crisisSuggestions,
			Confidence:        confidence,
		}
	}

	sentiment, sentimentFromModel := p.sentiment.Analyze(ctx, message)
	mentalState, concernFromModel := p.mentalState.Classify(ctx, message)

	reply := p.responses.Generate(message, sentiment, mentalState)
	suggestions := p.suggestions.Suggest(message, sentiment)
	confidence := p.confidence.Estimate(message, p.modelsLoaded)

	responseType := models.ResponseTemplate
	if sentimentFromModel || concernFromModel {
		responseType = models.ResponseAIGenerated
	}

	return models.ChatAnalysis{
		Message:      reply,
		IsCrisis:     false,
		Sentiment:    &sentiment,
		MentalState:  &mentalState,
		Suggestions:  suggestions,
		Confidence:   confidence,
		ResponseType: responseType,
	}
}

// fallbackAnalysis is the static reply used when processing fails. It is
// identical regardless of the underlying cause.
func (p *TriagePipeline) fallbackAnalysis() models.ChatAnalysis {
	return models.ChatAnalysis{
		Message:  fallbackMessage,
		IsCrisis: false,
		Sentiment: &models.SentimentResult{
			Label:      models.SentimentNeutral,
			Score:      0.5,
			Confidence: models.ConfidenceLow,
		},
		Suggestions:  fallbackSuggestions,
		Confidence:   0.2,
		ResponseType: models.ResponseFallback,
	}
}
