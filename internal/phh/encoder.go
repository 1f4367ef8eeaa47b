package phh

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/mlu11/poker-adviser/internal/handlog"
)

// Encode writes one hand history to the writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeSession writes a whole session as a sectioned .phhs file, one
// [hand_N] table per hand in input order.
func EncodeSession(w io.Writer, hands []*handlog.HandRecord) error {
	for n, rec := range hands {
		if n > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[hand_%d]\n", n+1); err != nil {
			return err
		}
		hand := FromRecord(rec)
		if err := Encode(w, &hand); err != nil {
			return fmt.Errorf("phh: hand %d: %w", rec.HandID, err)
		}
	}
	return nil
}
