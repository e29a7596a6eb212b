package services

import (
	"mazingira-mind-backend/models"
	"mazingira-mind-backend/utils"
)

type suggestionRule struct {
	triggers    []string
	suggestions []string
}

// suggestionRules is evaluated in order; the first rule whose trigger
// matches wins and later triggers in the same message are ignored.
var suggestionRules = []suggestionRule{
	{
		triggers: []string{"stress"},
		suggestions: []string{
			"Try a 5-minute breathing exercise",
			"Take our detailed stress assessment",
			"Learn stress management techniques",
			"Consider booking a therapy session",
		},
	},
	{
		triggers: []string{"sad", "depressed", "down"},
		suggestions: []string{
			"Complete our depression screening",
			"Explore mood tracking techniques",
			"Connect with a mental health professional",
			"Join a support group",
		},
	},
	{
		triggers: []string{"anxious", "anxiety"},
		suggestions: []string{
			"Practice grounding techniques",
			"Learn about anxiety management",
			"Take our anxiety assessment",
			"Consider professional counseling",
		},
	},
	{
		triggers: []string{"family"},
		suggestions: []string{
			"Explore family therapy options",
			"Learn communication strategies",
			"Consider mediation services",
			"Join family support groups",
		},
	},
}

var defaultSuggestions = []string{
	"Take our comprehensive wellness assessment",
	"Explore our therapy directory",
	"Join community support groups",
	"Learn more about mental wellness",
}

// SuggestionEngine derives follow-up suggestions from raw message content.
type SuggestionEngine struct{}

func NewSuggestionEngine() *SuggestionEngine {
	return &SuggestionEngine{}
}

func (e *SuggestionEngine) Suggest(message string, sentiment models.SentimentResult) []string {
	for _, rule := range suggestionRules {
		if utils.ContainsAny(message, rule.triggers) {
			return rule.suggestions
		}
	}
	return defaultSuggestions
}
