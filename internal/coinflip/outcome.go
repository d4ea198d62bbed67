package coinflip

import "strings"

// Log markers emitted by the program when a bet settles.
const (
	MarkerWon  = "Player won!"
	MarkerLost = "Player lost!"
)

// Outcome is the result of a settled bet as reported by the program logs.
type Outcome uint8

const (
	OutcomeUnknown Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// ParseOutcome scans every log line for the outcome markers. It reports
// false when no marker is present or when both kinds appear, since the
// outcome is ambiguous in that case.
func ParseOutcome(logs []string) (Outcome, bool) {
	var won, lost bool
	for _, line := range logs {
		if strings.Contains(line, MarkerWon) {
			won = true
		}

		if strings.Contains(line, MarkerLost) {
			lost = true
		}
	}

	switch {
	case won && !lost:
		return OutcomeWon, true
	case lost && !won:
		return OutcomeLost, true
	default:
		return OutcomeUnknown, false
	}
}
