package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the minimum the
	// requested family supports.
	ErrTooFewVertices = errors.New("builder: vertex count too small")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrBadDegree indicates an impossible regular degree (d < 0, d ≥ n, or
	// n·d odd).
	ErrBadDegree = errors.New("builder: invalid regular degree")

	// ErrBadEdgeList indicates an edge-list entry with an empty endpoint or
	// identical endpoints.
	ErrBadEdgeList = errors.New("builder: malformed edge list entry")

	// ErrPairingFailed indicates the random regular pairing model failed to
	// produce a simple graph within the retry budget.
	ErrPairingFailed = errors.New("builder: regular pairing failed to converge")
)
