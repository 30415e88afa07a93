package core

import "errors"

var (
	// ErrStoreUnavailable means the graph store capability was never
	// obtained; every operation fails fast with it until a driver is
	// supplied.
	ErrStoreUnavailable = errors.New("graph store unavailable")

	// ErrGraphWrite wraps a store rejection of the review write. The
	// write is a single atomic unit, so nothing partial was persisted
	// for the review.
	ErrGraphWrite = errors.New("graph write failed")

	// ErrAggregationQuery wraps a read failure. Distinct from a true
	// empty result, which is not an error.
	ErrAggregationQuery = errors.New("aggregation query failed")
)
