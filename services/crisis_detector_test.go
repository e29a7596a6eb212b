package services

import (
	"context"
	"errors"
	"testing"

	"mazingira-mind-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCrisisDetector_HighRiskKeyword(t *testing.T) {
	detector := NewCrisisDetector(nil, zap.NewNop())

	result := detector.Detect(context.Background(), "Sometimes I think I should just kill myself")

	require.True(t, result.IsCrisis)
	assert.GreaterOrEqual(t, result.Score, 1.0)
	assert.Equal(t, models.CrisisHigh, result.Level)
	assert.Contains(t, result.DetectedKeywords, "kill myself")
	assert.Equal(t, highCrisisResponse, result.Message)
	assert.Len(t, result.EmergencyContacts, 4)
	assert.Len(t, result.ImmediateActions, 6)
}

func TestCrisisDetector_ContextualAloneNeverTriggers(t *testing.T) {
	detector := NewCrisisDetector(nil, zap.NewNop())

	result := detector.Detect(context.Background(), "I walked across the bridge this morning")

	assert.False(t, result.IsCrisis)
	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.DetectedKeywords)
}

func TestCrisisDetector_ContextualSharpensPositiveScore(t *testing.T) {
	detector := NewCrisisDetector(nil, zap.NewNop())

	// 0.7 (hopeless) + 0.3 (bridge) = 1.0
	result := detector.Detect(context.Background(), "I feel hopeless standing on this bridge")

	require.True(t, result.IsCrisis)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.Equal(t, []string{"hopeless", "bridge"}, result.DetectedKeywords)
}

func TestCrisisDetector_TwoMediumKeywordsIsHigh(t *testing.T) {
	detector := NewCrisisDetector(nil, zap.NewNop())

	// 0.7 + 0.7 = 1.4
	result := detector.Detect(context.Background(), "I feel hopeless and want to give up")

	require.True(t, result.IsCrisis)
	assert.InDelta(t, 1.4, result.Score, 1e-9)
	assert.Equal(t, models.CrisisHigh, result.Level)
	assert.Equal(t, highCrisisResponse, result.Message)
}

func TestCrisisDetector_ModerateLevel(t *testing.T) {
	detector := NewCrisisDetector(nil, zap.NewNop())

	result := detector.Detect(context.Background(), "Everything feels hopeless lately")

	require.True(t, result.IsCrisis)
	assert.InDelta(t, 0.7, result.Score, 1e-9)
	assert.Equal(t, models.CrisisModerate, result.Level)
	assert.Equal(t, moderateCrisisResponse, result.Message)
}

func TestCrisisDetector_ScoreBoundary(t *testing.T) {
	assert.True(t, isCrisisScore(0.70))
	assert.False(t, isCrisisScore(0.69))
}

func TestCrisisDetector_ClassifierNotInvokedWithoutKeywordEvidence(t *testing.T) {
	classifier := &stubConcernClassifier{
		result: &ClassifierResult{Label: "severe depression", Score: 0.99},
	}
	detector := NewCrisisDetector(classifier, zap.NewNop())

	result := detector.Detect(context.Background(), "I had an ordinary day at school")

	assert.False(t, result.IsCrisis)
	assert.Zero(t, classifier.calls, "classifier must not run when the keyword score is zero")
}

func TestCrisisDetector_ClassifierBoost(t *testing.T) {
	classifier := &stubConcernClassifier{
		result: &ClassifierResult{Label: "Severe", Score: 0.9},
	}
	detector := NewCrisisDetector(classifier, zap.NewNop())

	// 0.7 (hopeless) + 0.5 boost = 1.2
	result := detector.Detect(context.Background(), "Everything feels hopeless lately")

	require.True(t, result.IsCrisis)
	assert.Equal(t, 1, classifier.calls)
	assert.InDelta(t, 1.2, result.Score, 1e-9)
	assert.Equal(t, models.CrisisHigh, result.Level)
}

func TestCrisisDetector_ClassifierFailureDegradesToKeywords(t *testing.T) {
	classifier := &stubConcernClassifier{err: errors.New("model timed out")}
	detector := NewCrisisDetector(classifier, zap.NewNop())

	result := detector.Detect(context.Background(), "Everything feels hopeless lately")

	require.True(t, result.IsCrisis)
	assert.InDelta(t, 0.7, result.Score, 1e-9)
	assert.Equal(t, models.CrisisModerate, result.Level)
}
