package ledger

import (
	"errors"
	"fmt"
)

// ErrInvalidCommitment is returned when a commitment level is not recognised.
var ErrInvalidCommitment = errors.New("invalid commitment")

// Commitment is the finality guarantee requested from the ledger.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

// rank orders commitment levels from weakest to strongest. Unknown levels rank zero.
func (c Commitment) rank() int {
	switch c {
	case CommitmentProcessed:
		return 1
	case CommitmentConfirmed:
		return 2
	case CommitmentFinalized:
		return 3
	default:
		return 0
	}
}

// Valid reports whether c is one of the recognised levels.
func (c Commitment) Valid() bool {
	return c.rank() > 0
}

// Satisfies reports whether a transaction observed at level c meets the
// requested level. A finalized transaction satisfies every request.
func (c Commitment) Satisfies(requested Commitment) bool {
	return c.Valid() && c.rank() >= requested.rank()
}

// ParseCommitment validates s as a commitment level.
func ParseCommitment(s string) (Commitment, error) {
	c := Commitment(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q (expected processed, confirmed or finalized)", ErrInvalidCommitment, s)
	}

	return c, nil
}
