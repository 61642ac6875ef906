package service

import "time"

// Account cache lookup results.
const (
	CacheResultHit   = "hit"
	CacheResultStale = "stale"
	CacheResultMiss  = "miss"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// MetricsRecorder records business-level measurements.
type MetricsRecorder interface {
	// ObserveCacheLookup counts one account cache read by result.
	ObserveCacheLookup(result string)

	// ObserveOAuthExchange counts one callback by outcome (a business error code or "success").
	ObserveOAuthExchange(outcome string)

	// ObserveUpstreamCall records one Graph API call.
	ObserveUpstreamCall(endpoint, outcome string, elapsed time.Duration)
}
