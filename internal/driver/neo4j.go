package driver

import (
	"context"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type Neo4jDriver struct {
	Driver neo4j.DriverWithContext
}

func NewNeo4jDriver(uri, username, password string) (*Neo4jDriver, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to Neo4j")
	return &Neo4jDriver{Driver: driver}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

// BuildConstraints creates a uniqueness constraint on every dimension
// dedup key. MERGE alone can race two writers into duplicate nodes;
// with the constraint in place one of the racing transactions retries
// against the committed node instead.
func (d *Neo4jDriver) BuildConstraints(ctx context.Context) error {
	queries := []string{
		"CREATE CONSTRAINT passenger_name IF NOT EXISTS FOR (p:Passenger) REQUIRE p.name IS UNIQUE;",
		"CREATE CONSTRAINT route_name IF NOT EXISTS FOR (r:Route) REQUIRE r.name IS UNIQUE;",
		"CREATE CONSTRAINT aircraft_model IF NOT EXISTS FOR (a:Aircraft) REQUIRE a.model IS UNIQUE;",
		"CREATE CONSTRAINT seat_type_class IF NOT EXISTS FOR (s:SeatType) REQUIRE s.class IS UNIQUE;",
		"CREATE CONSTRAINT traveller_type IF NOT EXISTS FOR (t:TravellerType) REQUIRE t.type IS UNIQUE;",
		"CREATE CONSTRAINT sentiment_label IF NOT EXISTS FOR (s:Sentiment) REQUIRE s.label IS UNIQUE;",

		"CREATE INDEX review_ingested_at IF NOT EXISTS FOR (r:Review) ON (r.ingested_at);",
	}

	for _, q := range queries {
		_, err := d.ExecuteQuery(ctx, q, nil)
		if err != nil {
			log.Printf("Warning: failed to create constraint '%s': %v", q, err)
			// Continue, as constraint might already exist
		}
	}

	return nil
}
