package services

import (
	"math/rand/v2"

	"mazingira-mind-backend/models"
)

// responseCatalog maps every concern category to its ordered response
// pool. Pools are ordered to front-load the most empathetic wording.
// Static data, never mutated after process start.
var responseCatalog = map[models.ConcernCategory][]string{
	models.ConcernAnxiety: {
		"I can hear the worry in your words, and I want you to know that anxiety is something many people experience. In our communities, we often say 'pole pole' - take it slowly. Let's work through this step by step. What specific situation is making you feel most anxious right now?",
		"Anxiety can feel like a storm in your mind, but remember that even the strongest storms eventually pass. You mentioned feeling anxious - can you tell me more about what's triggering these feelings? Sometimes talking through our worries can help reduce their power over us.",
	},
	models.ConcernDepression: {
		"I hear the heaviness in what you've shared, and I want you to know that you're not alone in feeling this way. Depression can make everything feel more difficult, but reaching out like you have today shows real strength. What has been weighing on you most lately?",
		"Thank you for trusting me with your feelings. When we're feeling low, it can seem like the darkness will never lift, but healing is possible. In many African traditions, we understand that 'baada ya dhiki faraja' - after hardship comes ease. What would help you feel a little lighter today?",
	},
	models.ConcernStress: {
		"It sounds like you're carrying a heavy load right now. Stress is very common in our busy lives, especially when we're trying to balance family, work, and personal responsibilities. The Swahili saying 'haraka haraka haina baraka' reminds us that rushing brings no blessing. What's putting the most pressure on you?",
		"I can sense that you're feeling overwhelmed. Stress affects all of us, and it's important to acknowledge when the burden feels too heavy. Let's think about ways to lighten this load. What part of your stress feels most manageable to address first?",
	},
	models.ConcernTrauma: {
		"Thank you for having the courage to share something so difficult. Trauma can have lasting effects on how we see ourselves and the world around us. Healing from trauma takes time, and everyone's journey is different. You don't have to go through this alone - there are people trained to help with trauma recovery. How are you feeling right now after sharing this?",
		"I'm honored that you felt safe enough to share your trauma with me. What you've experienced was not your fault, and your feelings about it are completely valid. Trauma recovery is possible, though it often requires professional support. Would you like me to help you find trauma-informed therapists in your area?",
	},
	models.ConcernRelationships: {
		"Relationships, especially family ones, can be both our greatest source of joy and our biggest challenges. In African culture, we deeply value our connections with others, which can sometimes create complex dynamics. What relationship situation is concerning you most?",
		"I understand that relationship issues can be particularly difficult because they involve people we care about deeply. The concept of Ubuntu teaches us that we are interconnected, but it's also important to maintain healthy boundaries. Can you share more about what's happening?",
	},
	models.ConcernFinancial: {
		"Financial stress can affect every aspect of our lives - our sleep, relationships, and overall wellbeing. Many people are facing economic challenges, especially in these uncertain times. While I can't solve money problems directly, I can help you manage the emotional impact. How are these financial concerns affecting your daily life?",
		"Money worries can feel overwhelming and can consume our thoughts. You're not alone in facing financial challenges - many people in our community struggle with this. Let's talk about ways to manage the stress while you work on practical solutions. What aspect of your financial situation worries you most?",
	},
	models.ConcernGeneral: {
		"Thank you for reaching out and sharing what's on your mind. It takes courage to talk about our mental health, and you've taken an important step today. I'm here to listen and support you through whatever you're experiencing. What would you like to explore together?",
		"I'm glad you decided to talk today. Sometimes just expressing our thoughts and feelings can provide some relief. Your mental health matters, and you deserve support. What's been on your mind lately that you'd like to discuss?",
	},
}

const defaultResponse = "I'm here to listen and support you. Thank you for sharing with me. What would you like to talk about today?"

// ResponseGenerator selects a reply template for a concern category.
// Negative sentiment forces the first (most empathetic) entry of the
// pool; otherwise selection is uniform random. The random source is
// injectable so tests can pin the choice.
type ResponseGenerator struct {
	intn func(n int) int
}

func NewResponseGenerator(intn func(n int) int) *ResponseGenerator {
	if intn == nil {
		intn = rand.IntN
	}
	return &ResponseGenerator{intn: intn}
}

func (g *ResponseGenerator) Generate(message string, sentiment models.SentimentResult, mentalState models.MentalStateResult) string {
	pool, ok := responseCatalog[mentalState.Category]
	if !ok {
		pool = responseCatalog[models.ConcernGeneral]
	}
	if len(pool) == 0 {
		return defaultResponse
	}

	if sentiment.Label == models.SentimentNegative && len(pool) > 1 {
		return pool[0]
	}
	return pool[g.intn(len(pool))]
}
