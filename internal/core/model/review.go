package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Sentiment is one of the three labels the classifier can produce.
type Sentiment string

const (
	Negative Sentiment = "Negative"
	Neutral  Sentiment = "Neutral"
	Positive Sentiment = "Positive"
)

func ParseSentiment(s string) (Sentiment, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "negative":
		return Negative, nil
	case "neutral":
		return Neutral, nil
	case "positive":
		return Positive, nil
	}
	return "", fmt.Errorf("unknown sentiment label: %q", s)
}

// Aspects lists the seven rated service dimensions as stored on a
// Review node. Order is the stable display order.
var Aspects = []string{
	"cabin_staff",
	"entertainment",
	"food",
	"ground_service",
	"seat_comfort",
	"value_money",
	"wifi",
}

// UnratedScore is the stored marker for "score not provided/invalid".
const UnratedScore = -1.0

// Rating is an optional aspect score. The zero value is "not rated".
type Rating struct {
	Value float64
	Rated bool
}

// ParseRating parses a raw form value. Blank or unparseable input
// yields the unrated zero value rather than an error.
func ParseRating(raw string) Rating {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Rating{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Rating{}
	}
	return Rating{Value: v, Rated: true}
}

// Param is the store-boundary representation: unrated collapses to
// the -1.0 sentinel existing dashboards key on.
func (r Rating) Param() float64 {
	if !r.Rated {
		return UnratedScore
	}
	return r.Value
}

// Categorize buckets a stored score into a sentiment category.
// Returns false for the sentinel (and any negative score), which is
// excluded from bucketing.
func Categorize(score float64) (Sentiment, bool) {
	switch {
	case score < 0:
		return "", false
	case score >= 4:
		return Positive, true
	case score >= 2:
		return Neutral, true
	default:
		return Negative, true
	}
}

// Fields are the structured survey fields accompanying a review, as
// entered (raw strings; defaults and coercion happen in validate).
type Fields struct {
	Name          string `json:"name"`
	Route         string `json:"route"`
	Aircraft      string `json:"aircraft"`
	SeatType      string `json:"seat_type"`
	TravellerType string `json:"traveller_type"`
	Datetime      string `json:"datetime"`
	Verified      string `json:"verified"`
	Recommended   string `json:"recommended"`
	DateFlown     string `json:"date_flown"`
	OverallRating string `json:"overall_rating"`
	SeatComfort   string `json:"seat_comfort"`
	CabinStaff    string `json:"cabin_staff"`
	GroundService string `json:"ground_service"`
	ValueForMoney string `json:"value_money"`
	Food          string `json:"food"`
	Entertainment string `json:"entertainment"`
	Wifi          string `json:"wifi"`
}

// AspectCount is one row of the per-aspect sentiment distribution.
type AspectCount struct {
	Aspect   string    `json:"aspect"`
	Category Sentiment `json:"category"`
	Count    int64     `json:"count"`
}

// DisplayName renders the aspect property name for humans
// ("seat_comfort" -> "Seat Comfort").
func (a AspectCount) DisplayName() string {
	words := strings.Split(a.Aspect, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// LatestReview is the most-recently-ingested review's snapshot:
// the writing passenger plus raw per-aspect scores, sentinel
// preserved so callers can categorize independently.
type LatestReview struct {
	PassengerName string             `json:"passenger_name"`
	Scores        map[string]float64 `json:"scores"`
}
