package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAny(t *testing.T) {
	keywords := []string{"stress", "pressure"}

	assert.True(t, ContainsAny("I feel so STRESSED about work", keywords))
	assert.True(t, ContainsAny("too much pressure", keywords))
	assert.False(t, ContainsAny("a calm evening", keywords))
	assert.False(t, ContainsAny("", keywords))
}

func TestMatchAll_PreservesScanOrder(t *testing.T) {
	keywords := []string{"hopeless", "give up", "overdose"}

	matched := MatchAll("I want to give up, it all feels hopeless", keywords)

	assert.Equal(t, []string{"hopeless", "give up"}, matched)
}

func TestCountMatches_CountsEachKeywordOnce(t *testing.T) {
	keywords := []string{"sad", "worried"}

	assert.Equal(t, 2, CountMatches("sad, sad, and worried", keywords))
	assert.Equal(t, 0, CountMatches("all good", keywords))
}
