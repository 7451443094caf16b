package types

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
)

// QueryServer is the read-only query surface of the module.
type QueryServer interface {
	// Exp evaluates the natural exponential of an 18-decimal fixed-point
	// exponent.
	Exp(ctx context.Context, req *QueryExpRequest) (*QueryExpResponse, error)
}

// QueryExpRequest is the request for the Exp query.
type QueryExpRequest struct {
	// Exponent is a signed 18-decimal fixed-point value in [-40e18, 40e18].
	Exponent sdkmath.Int
}

// QueryExpResponse is the response for the Exp query.
type QueryExpResponse struct {
	// Result is e^Exponent as an 18-decimal fixed-point value.
	Result sdkmath.Int
	// Height is the block height at which the query was evaluated.
	Height int64
	// Time is the block time at which the query was evaluated.
	Time time.Time
}
