package services

import (
	"context"
	"strings"

	"mazingira-mind-backend/models"
	"mazingira-mind-backend/utils"

	"go.uber.org/zap"
)

// Keyword weights and the crisis decision threshold.
const (
	highRiskWeight   = 1.0
	mediumRiskWeight = 0.7
	contextualWeight = 0.3
	classifierBoost  = 0.5
	crisisThreshold  = 0.7
	highLevelScore   = 1.0
)

// Crisis keyword tiers. Contextual words only count once the score is
// already positive; on their own they never trigger a crisis.
var (
	highRiskKeywords = []string{
		"kill myself", "end my life", "suicide", "better off dead",
		"no point living", "want to die", "end it all",
	}
	mediumRiskKeywords = []string{
		"hurt myself", "self harm", "cut myself", "overdose",
		"can't go on", "give up", "hopeless",
	}
	contextualKeywords = []string{
		"pills", "rope", "bridge", "jump", "knife",
	}
)

// crisisContacts is the static crisis contact directory, loaded once and
// never mutated.
var crisisContacts = []models.ContactRecord{
	{
		Name:         "Kenya Red Cross Crisis Line",
		Number:       "1199",
		Availability: "24/7",
		Type:         "Crisis counseling",
	},
	{
		Name:         "Emergency Services",
		Number:       "999",
		Availability: "24/7",
		Type:         "Emergency medical response",
	},
	{
		Name:         "Befrienders Kenya",
		Number:       "+254 722 178 177",
		Availability: "3PM - 9PM daily",
		Type:         "Emotional support",
	},
	{
		Name:         "Kenyatta National Hospital Emergency",
		Number:       "+254 20 2726300",
		Availability: "24/7",
		Type:         "Emergency psychiatric services",
	},
}

var immediateCrisisActions = []string{
	"Call one of the crisis hotlines immediately",
	"Go to the nearest hospital emergency room",
	"Remove any means of self-harm from your immediate area",
	"Contact a trusted family member or friend right now",
	"Stay with someone until you can get professional help",
	"Remember: This crisis is temporary, help is available",
}

const highCrisisResponse = `I'm very concerned about what you've shared. Please reach out for immediate help right now:

🚨 EMERGENCY CONTACTS:
• Kenya Red Cross Crisis Line: 1199
• Emergency Services: 999
• Befrienders Kenya: +254 722 178 177

You don't have to go through this alone. Professional help is available 24/7. Please contact one of these services immediately or go to the nearest hospital emergency room.

Your life has value, and there are people who want to help you through this difficult time.`

const moderateCrisisResponse = `I'm worried about you based on what you've shared. It sounds like you're going through a really difficult time, and I want you to know that help is available.

Please consider reaching out to:
• Kenya Red Cross Counseling: 1199
• Befrienders Kenya: +254 722 178 177
• Or speak with a trusted family member or friend

You don't have to handle this alone. These feelings can be temporary, even when they feel overwhelming. Would you like me to help you find professional support in your area?`

// CrisisDetector identifies potential self-harm or emergency situations
// from weighted keyword evidence, optionally sharpened by the concern
// classifier. It is evaluated before any other analysis and gates the
// entire response.
type CrisisDetector struct {
	concernClassifier ConcernClassifier
	logger            *zap.Logger
}

func NewCrisisDetector(concernClassifier ConcernClassifier, logger *zap.Logger) *CrisisDetector {
	return &CrisisDetector{
		concernClassifier: concernClassifier,
		logger:            logger,
	}
}

// Detect scores the message against the crisis lexicons. A classifier
// failure degrades to pure keyword logic; it never raises the score and
// never blocks the response.
func (d *CrisisDetector) Detect(ctx context.Context, message string) models.CrisisResult {
	score := 0.0
	var detected []string

	for _, keyword := range utils.MatchAll(message, highRiskKeywords) {
		score += highRiskWeight
		detected = append(detected, keyword)
	}

	for _, keyword := range utils.MatchAll(message, mediumRiskKeywords) {
		score += mediumRiskWeight
		detected = append(detected, keyword)
	}

	// Contextual words alone never trigger a crisis; they only sharpen
	// a score that is already positive.
	if score > 0 {
		for _, keyword := range utils.MatchAll(message, contextualKeywords) {
			score += contextualWeight
			detected = append(detected, keyword)
		}
	}

	// The classifier boost is gated on keyword evidence: with a zero
	// keyword score the classifier is never invoked.
	if d.concernClassifier != nil && score > 0 {
		result, err := d.concernClassifier.ClassifyConcern(ctx, message)
		if err != nil {
			d.logger.Warn("concern classification failed during crisis detection, continuing with keyword score",
				zap.Error(err))
		} else if strings.Contains(strings.ToLower(result.Label), "severe") {
			score += classifierBoost
		}
	}

	if !isCrisisScore(score) {
		return models.CrisisResult{IsCrisis: false, Score: score}
	}

	level := crisisLevel(score)
	d.logger.Warn("crisis detected",
		zap.Float64("score", score),
		zap.String("level", string(level)),
		zap.Strings("keywords", detected))

	return models.CrisisResult{
		IsCrisis:          true,
		Level:             level,
		Score:             score,
		Message:           crisisResponse(score),
		DetectedKeywords:  detected,
		EmergencyContacts: crisisContacts,
		ImmediateActions:  immediateCrisisActions,
	}
}

func isCrisisScore(score float64) bool {
	return score >= crisisThreshold
}

func crisisLevel(score float64) models.CrisisLevel {
	if score >= highLevelScore {
		return models.CrisisHigh
	}
	return models.CrisisModerate
}

// crisisResponse picks one of the two fixed crisis scripts by severity.
func crisisResponse(score float64) string {
	if score >= highLevelScore {
		return highCrisisResponse
	}
	return moderateCrisisResponse
}
