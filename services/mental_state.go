package services

import (
	"context"
	"strings"

	"mazingira-mind-backend/models"
	"mazingira-mind-backend/utils"

	"go.uber.org/zap"
)

type categoryKeywords struct {
	category models.ConcernCategory
	keywords []string
}

// concernCategories is scanned in priority order; the first category with
// any keyword match wins.
var concernCategories = []categoryKeywords{
	{models.ConcernAnxiety, []string{"anxious", "worried", "panic", "nervous", "fear", "scared"}},
	{models.ConcernDepression, []string{"sad", "depressed", "hopeless", "empty", "worthless"}},
	{models.ConcernStress, []string{"stressed", "overwhelmed", "pressure", "burden", "exhausted"}},
	{models.ConcernTrauma, []string{"trauma", "flashback", "nightmare", "abuse", "assault"}},
	{models.ConcernRelationships, []string{"family", "marriage", "spouse", "relationship", "partner"}},
	{models.ConcernFinancial, []string{"money", "job", "work", "financial", "bills", "debt"}},
}

// MentalStateClassifier assigns a concern category to a message, using
// the external classifier when available and keyword priority matching
// otherwise.
type MentalStateClassifier struct {
	classifier ConcernClassifier
	logger     *zap.Logger
}

func NewMentalStateClassifier(classifier ConcernClassifier, logger *zap.Logger) *MentalStateClassifier {
	return &MentalStateClassifier{
		classifier: classifier,
		logger:     logger,
	}
}

// Classify returns the concern category and whether the external
// classifier produced it.
func (c *MentalStateClassifier) Classify(ctx context.Context, message string) (models.MentalStateResult, bool) {
	if c.classifier != nil {
		result, err := c.classifier.ClassifyConcern(ctx, message)
		if err != nil {
			c.logger.Warn("concern classification failed, using keyword fallback", zap.Error(err))
		} else {
			return models.MentalStateResult{
				Category:   models.ConcernCategory(strings.ToLower(result.Label)),
				Confidence: result.Score,
			}, true
		}
	}

	return c.keywordClassification(message), false
}

func (c *MentalStateClassifier) keywordClassification(message string) models.MentalStateResult {
	for _, entry := range concernCategories {
		if utils.ContainsAny(message, entry.keywords) {
			return models.MentalStateResult{Category: entry.category, Confidence: 0.7}
		}
	}
	return models.MentalStateResult{Category: models.ConcernGeneral, Confidence: 0.5}
}
