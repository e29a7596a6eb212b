package services

import (
	"context"
)

// stubSentimentClassifier is a canned sentiment capability for tests.
type stubSentimentClassifier struct {
	result *ClassifierResult
	err    error
	calls  int
}

func (s *stubSentimentClassifier) ClassifySentiment(ctx context.Context, text string) (*ClassifierResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// stubConcernClassifier is a canned concern capability for tests.
type stubConcernClassifier struct {
	result *ClassifierResult
	err    error
	calls  int
}

func (s *stubConcernClassifier) ClassifyConcern(ctx context.Context, text string) (*ClassifierResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}
