package metrics

// Attribute keys shared by every instrument.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
	AttrBackend  = "backend"
)

// Outcome values for cache lookups and rate-limit decisions.
const (
	OutcomeHit     = "hit"
	OutcomeMiss    = "miss"
	OutcomeAllowed = "allowed"
	OutcomeDenied  = "denied"
	OutcomeError   = "error"
)
