package driver

const (
	// SaveReviewQuery writes one review as a single atomic statement:
	// the five dimension nodes and the sentiment node are matched or
	// created by their dedup key, the Review node itself is always
	// created fresh, and the six relationships are merged. Property
	// names and relationship types are a compatibility surface for
	// existing dashboards and must not drift.
	SaveReviewQuery = `
		MERGE (p:Passenger {name: $name})
		MERGE (route:Route {name: $route})
		MERGE (ac:Aircraft {model: $aircraft})
		MERGE (st:SeatType {class: $seat_type})
		MERGE (tt:TravellerType {type: $traveller_type})

		CREATE (r:Review {
			uuid: $uuid,
			ingested_at: $ingested_at,
			date: $datetime,
			text: $review_text,
			verified: $verified,
			recommended: $recommended,
			date_flown: $date_flown,

			overall_rating: toFloat($overall_rating),
			seat_comfort: toFloat($seat_comfort),
			cabin_staff: toFloat($cabin_staff),
			ground_service: toFloat($ground_service),
			value_money: toFloat($value_money),
			food: toFloat($food),
			entertainment: toFloat($entertainment),
			wifi: toFloat($wifi)
		})

		MERGE (p)-[:WROTE]->(r)
		MERGE (r)-[:ABOUT_FLIGHT]->(route)
		MERGE (r)-[:FLOWN_ON]->(ac)
		MERGE (r)-[:IN_SEAT]->(st)
		MERGE (r)-[:TRAVELLED_AS]->(tt)

		MERGE (s:Sentiment {label: $sentiment})
		MERGE (r)-[:HAS_SENTIMENT]->(s)

		RETURN r.uuid AS uuid
	`

	// AspectSentimentQuery buckets every rated aspect score into a
	// sentiment category. The -1.0 "unrated" sentinel is filtered by
	// the score >= 0 guard before bucketing.
	AspectSentimentQuery = `
		MATCH (r:Review)
		UNWIND ['seat_comfort', 'cabin_staff', 'ground_service', 'value_money', 'food', 'entertainment', 'wifi'] AS aspect
		WITH aspect, r[aspect] AS score
		WHERE score >= 0
		WITH aspect, score,
		     CASE
		       WHEN score >= 4 THEN 'Positive'
		       WHEN score >= 2 THEN 'Neutral'
		       ELSE 'Negative'
		     END AS sentiment_category
		RETURN aspect, sentiment_category, count(score) AS total_reviews
		ORDER BY aspect, sentiment_category
	`

	// LatestReviewQuery returns the most recently ingested review's
	// raw aspect scores together with the passenger who wrote it.
	// Ordering is by the explicit ingestion timestamp, not internal
	// node ids.
	LatestReviewQuery = `
		MATCH (p:Passenger)-[:WROTE]->(r:Review)
		WITH p, r
		ORDER BY r.ingested_at DESC
		LIMIT 1
		RETURN
			p.name AS PassengerName,
			r.seat_comfort AS seat_comfort,
			r.cabin_staff AS cabin_staff,
			r.food AS food,
			r.wifi AS wifi,
			r.entertainment AS entertainment,
			r.ground_service AS ground_service,
			r.value_money AS value_money
	`
)
