package services

import (
	"testing"

	"mazingira-mind-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseGenerator_NegativeSentimentIsDeterministic(t *testing.T) {
	generator := NewResponseGenerator(nil)
	sentiment := models.SentimentResult{Label: models.SentimentNegative, Score: 0.7, Confidence: models.ConfidenceMedium}
	mentalState := models.MentalStateResult{Category: models.ConcernStress, Confidence: 0.7}

	pool := responseCatalog[models.ConcernStress]
	require.Greater(t, len(pool), 1)

	for i := 0; i < 25; i++ {
		reply := generator.Generate("work is crushing me", sentiment, mentalState)
		assert.Equal(t, pool[0], reply, "negative sentiment must always pick the first pool entry")
	}
}

func TestResponseGenerator_NonNegativeStaysInPool(t *testing.T) {
	generator := NewResponseGenerator(nil)
	sentiment := models.SentimentResult{Label: models.SentimentPositive, Score: 0.7, Confidence: models.ConfidenceMedium}
	mentalState := models.MentalStateResult{Category: models.ConcernAnxiety, Confidence: 0.7}

	pool := responseCatalog[models.ConcernAnxiety]
	for i := 0; i < 25; i++ {
		reply := generator.Generate("feeling a bit better", sentiment, mentalState)
		assert.Contains(t, pool, reply)
	}
}

func TestResponseGenerator_InjectedRandomSource(t *testing.T) {
	// Always pick the last entry.
	generator := NewResponseGenerator(func(n int) int { return n - 1 })
	sentiment := models.SentimentResult{Label: models.SentimentNeutral, Score: 0.5, Confidence: models.ConfidenceLow}
	mentalState := models.MentalStateResult{Category: models.ConcernGeneral, Confidence: 0.5}

	pool := responseCatalog[models.ConcernGeneral]
	reply := generator.Generate("hi", sentiment, mentalState)
	assert.Equal(t, pool[len(pool)-1], reply)
}

func TestResponseGenerator_UnknownCategoryUsesGeneralPool(t *testing.T) {
	generator := NewResponseGenerator(func(n int) int { return 0 })
	sentiment := models.SentimentResult{Label: models.SentimentNeutral, Score: 0.5, Confidence: models.ConfidenceLow}
	mentalState := models.MentalStateResult{Category: models.ConcernCategory("psychosis"), Confidence: 0.9}

	reply := generator.Generate("anything", sentiment, mentalState)
	assert.Equal(t, responseCatalog[models.ConcernGeneral][0], reply)
}

func TestResponseCatalog_CoversAllCategories(t *testing.T) {
	categories := []models.ConcernCategory{
		models.ConcernAnxiety,
		models.ConcernDepression,
		models.ConcernStress,
		models.ConcernTrauma,
		models.ConcernRelationships,
		models.ConcernFinancial,
		models.ConcernGeneral,
	}

	for _, category := range categories {
		pool, ok := responseCatalog[category]
		assert.True(t, ok, "missing pool for %s", category)
		assert.NotEmpty(t, pool, "empty pool for %s", category)
	}
}
