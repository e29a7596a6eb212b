package services

import (
	"strings"

	"mazingira-mind-backend/utils"
)

var emotionWords = []string{"feel", "feeling", "sad", "happy", "anxious", "stressed", "worried"}

// ConfidenceEstimator scores how much the pipeline trusts its own answer
// for a given message.
type ConfidenceEstimator struct{}

func NewConfidenceEstimator() *ConfidenceEstimator {
	return &ConfidenceEstimator{}
}

// Estimate returns a value in [0,1]. Without loaded models confidence is
// a flat 0.3; otherwise it grows with message length and the presence of
// clear emotional indicators.
func (e *ConfidenceEstimator) Estimate(message string, modelsLoaded bool) float64 {
	if !modelsLoaded {
		return 0.3
	}

	confidence := 0.5

	wordCount := len(strings.Fields(message))
	if wordCount >= 10 && wordCount <= 100 {
		confidence += 0.2
	}

	if utils.ContainsAny(message, emotionWords) {
		confidence += 0.2
	}

	if len(message) > 50 {
		confidence += 0.1
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
