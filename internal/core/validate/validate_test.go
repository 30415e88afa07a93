package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgraph/airgraph/internal/core/model"
)

func TestNormalize_Defaults(t *testing.T) {
	params, err := Normalize(model.Fields{}, "The flight was fine.")
	require.NoError(t, err)

	assert.Equal(t, "Anonymous", params["name"])
	assert.Equal(t, "Unknown Route", params["route"])
	assert.Equal(t, "Unknown Aircraft", params["aircraft"])
	assert.Equal(t, "Unknown Class", params["seat_type"])
	assert.Equal(t, "Unknown Type", params["traveller_type"])
	assert.Equal(t, "no", params["recommended"])
	assert.Equal(t, "False", params["verified"])
	assert.Equal(t, "-1", params["datetime"])
	assert.Equal(t, "-1", params["date_flown"])
	assert.Equal(t, "The flight was fine.", params["review_text"])

	// Every numeric field collapses to the unrated sentinel.
	for _, key := range append([]string{"overall_rating"}, model.Aspects...) {
		assert.Equal(t, -1.0, params[key], key)
	}
}

func TestNormalize_ProvidedFields(t *testing.T) {
	fields := model.Fields{
		Name:          "Alice",
		Route:         "LHR-JFK",
		Aircraft:      "A350",
		SeatType:      "Economy",
		TravellerType: "Solo Leisure",
		Datetime:      "2026-03-14",
		DateFlown:     "2026-03-01",
		Verified:      "True",
		Recommended:   "yes",
		OverallRating: "8",
		SeatComfort:   "4.5",
		Food:          "1.0",
	}

	params, err := Normalize(fields, "Great seats, terrible food.")
	require.NoError(t, err)

	assert.Equal(t, "Alice", params["name"])
	assert.Equal(t, "LHR-JFK", params["route"])
	assert.Equal(t, "A350", params["aircraft"])
	assert.Equal(t, "True", params["verified"])
	assert.Equal(t, "yes", params["recommended"])
	assert.Equal(t, 8.0, params["overall_rating"])
	assert.Equal(t, 4.5, params["seat_comfort"])
	assert.Equal(t, 1.0, params["food"])
	assert.Equal(t, -1.0, params["wifi"])
}

func TestNormalize_UnparseableScore(t *testing.T) {
	params, err := Normalize(model.Fields{SeatComfort: "comfy"}, "ok")
	require.NoError(t, err)
	assert.Equal(t, -1.0, params["seat_comfort"])
}

func TestNormalize_MissingText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := Normalize(model.Fields{Name: "Alice"}, text)
		assert.ErrorIs(t, err, ErrMissingReviewText)
	}
}
