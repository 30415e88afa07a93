package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		score    float64
		category Sentiment
		rated    bool
	}{
		{-1.0, "", false},
		{0.0, Negative, true},
		{1.9, Negative, true},
		{2.0, Neutral, true},
		{3.99, Neutral, true},
		{4.0, Positive, true},
		{5.0, Positive, true},
	}

	for _, tc := range cases {
		category, ok := Categorize(tc.score)
		assert.Equal(t, tc.rated, ok, "score %v", tc.score)
		assert.Equal(t, tc.category, category, "score %v", tc.score)
	}
}

func TestParseRating(t *testing.T) {
	assert.Equal(t, Rating{Value: 4.5, Rated: true}, ParseRating("4.5"))
	assert.Equal(t, Rating{Value: 3, Rated: true}, ParseRating(" 3 "))
	assert.Equal(t, Rating{}, ParseRating(""))
	assert.Equal(t, Rating{}, ParseRating("   "))
	assert.Equal(t, Rating{}, ParseRating("five"))

	assert.Equal(t, -1.0, ParseRating("").Param())
	assert.Equal(t, 2.0, ParseRating("2").Param())
}

func TestParseSentiment(t *testing.T) {
	for raw, want := range map[string]Sentiment{
		"Positive":  Positive,
		"negative":  Negative,
		" Neutral ": Neutral,
	} {
		got, err := ParseSentiment(raw)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSentiment("meh")
	assert.Error(t, err)
}

func TestAspectDisplayName(t *testing.T) {
	assert.Equal(t, "Seat Comfort", AspectCount{Aspect: "seat_comfort"}.DisplayName())
	assert.Equal(t, "Wifi", AspectCount{Aspect: "wifi"}.DisplayName())
	assert.Equal(t, "Value Money", AspectCount{Aspect: "value_money"}.DisplayName())
}
