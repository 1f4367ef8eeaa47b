package handlog

import "fmt"

// Anomaly codes. Each names the specific way a stretch of log failed to
// assemble into a clean hand.
const (
	AnomalyOrphanedEvent    = "orphaned_event"
	AnomalyEmptyHand        = "empty_hand"
	AnomalyUnterminatedHand = "unterminated_hand"
	AnomalyUnclaimedReveal  = "unclaimed_reveal"
	AnomalyPotMismatch      = "pot_mismatch"
)

// Anomaly records a parsing irregularity that was isolated rather than
// allowed to abort the run. HandID is zero when the problem lies between
// hands.
type Anomaly struct {
	HandID int
	Code   string
	Detail string
}

func (a Anomaly) String() string {
	if a.HandID == 0 {
		return fmt.Sprintf("%s: %s", a.Code, a.Detail)
	}
	return fmt.Sprintf("hand %d: %s: %s", a.HandID, a.Code, a.Detail)
}
