package services

import (
	"context"
	"strings"

	"mazingira-mind-backend/models"
	"mazingira-mind-backend/utils"

	"go.uber.org/zap"
)

var (
	positiveWords = []string{"good", "great", "happy", "better", "hope", "grateful", "blessed", "joy"}
	negativeWords = []string{"sad", "depressed", "anxious", "worried", "stressed", "angry", "frustrated", "hopeless"}
)

// SentimentAnalyzer estimates the emotional tone of a message. It asks
// the external classifier first and falls back to keyword counting when
// the capability is absent or fails.
type SentimentAnalyzer struct {
	classifier SentimentClassifier
	logger     *zap.Logger
}

func NewSentimentAnalyzer(classifier SentimentClassifier, logger *zap.Logger) *SentimentAnalyzer {
	return &SentimentAnalyzer{
		classifier: classifier,
		logger:     logger,
	}
}

// Analyze returns the sentiment of the message and whether the external
// classifier produced it.
func (a *SentimentAnalyzer) Analyze(ctx context.Context, message string) (models.SentimentResult, bool) {
	if a.classifier != nil {
		result, err := a.classifier.ClassifySentiment(ctx, message)
		if err != nil {
			a.logger.Warn("sentiment classification failed, using keyword fallback", zap.Error(err))
		} else {
			confidence := models.ConfidenceMedium
			if result.Score > 0.8 {
				confidence = models.ConfidenceHigh
			}
			return models.SentimentResult{
				Label:      models.SentimentLabel(strings.ToUpper(result.Label)),
				Score:      result.Score,
				Confidence: confidence,
			}, true
		}
	}

	return a.keywordSentiment(message), false
}

// keywordSentiment is the heuristic path: count positive and negative
// words and compare. It never yields a high confidence tier.
func (a *SentimentAnalyzer) keywordSentiment(message string) models.SentimentResult {
	positiveCount := utils.CountMatches(message, positiveWords)
	negativeCount := utils.CountMatches(message, negativeWords)

	switch {
	case positiveCount > negativeCount:
		return models.SentimentResult{Label: models.SentimentPositive, Score: 0.7, Confidence: models.ConfidenceMedium}
	case negativeCount > positiveCount:
		return models.SentimentResult{Label: models.SentimentNegative, Score: 0.7, Confidence: models.ConfidenceMedium}
	default:
		return models.SentimentResult{Label: models.SentimentNeutral, Score: 0.5, Confidence: models.ConfidenceLow}
	}
}
