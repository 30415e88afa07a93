// Package validate normalizes raw survey input into the parameter set
// the graph write expects. Structured fields are optional and fall
// back to named defaults; the review text is the one required input.
package validate

import (
	"errors"
	"strings"

	"github.com/airgraph/airgraph/internal/core/model"
)

var ErrMissingReviewText = errors.New("review text is required")

const (
	DefaultName          = "Anonymous"
	DefaultRoute         = "Unknown Route"
	DefaultAircraft      = "Unknown Aircraft"
	DefaultSeatType      = "Unknown Class"
	DefaultTravellerType = "Unknown Type"
	DefaultRecommended   = "no"
	DefaultVerified      = "False"

	// Blank date fields fall through to the same "-1" marker the
	// numeric fields use, preserving the stored form of the data.
	defaultDate = "-1"
)

func orDefault(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	return raw
}

// Normalize coerces the raw fields into query parameters for the
// review write. Numeric fields that are blank or fail to parse become
// the -1.0 unrated sentinel. Empty review text aborts with
// ErrMissingReviewText before any external call is made.
func Normalize(fields model.Fields, reviewText string) (map[string]interface{}, error) {
	reviewText = strings.TrimSpace(reviewText)
	if reviewText == "" {
		return nil, ErrMissingReviewText
	}

	params := map[string]interface{}{
		"name":           orDefault(fields.Name, DefaultName),
		"route":          orDefault(fields.Route, DefaultRoute),
		"aircraft":       orDefault(fields.Aircraft, DefaultAircraft),
		"seat_type":      orDefault(fields.SeatType, DefaultSeatType),
		"traveller_type": orDefault(fields.TravellerType, DefaultTravellerType),
		"datetime":       orDefault(fields.Datetime, defaultDate),
		"date_flown":     orDefault(fields.DateFlown, defaultDate),
		"verified":       orDefault(fields.Verified, DefaultVerified),
		"recommended":    orDefault(fields.Recommended, DefaultRecommended),
		"review_text":    reviewText,

		"overall_rating": model.ParseRating(fields.OverallRating).Param(),
		"seat_comfort":   model.ParseRating(fields.SeatComfort).Param(),
		"cabin_staff":    model.ParseRating(fields.CabinStaff).Param(),
		"ground_service": model.ParseRating(fields.GroundService).Param(),
		"value_money":    model.ParseRating(fields.ValueForMoney).Param(),
		"food":           model.ParseRating(fields.Food).Param(),
		"entertainment":  model.ParseRating(fields.Entertainment).Param(),
		"wifi":           model.ParseRating(fields.Wifi).Param(),
	}

	return params, nil
}
