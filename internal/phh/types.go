// Package phh encodes reconstructed hands in the PHH (poker hand history)
// TOML format so they can be fed to solvers and replayers that speak it.
package phh

import "time"

// HandHistory represents a single poker hand encoded in PHH format.
// Players are listed in betting order: small blind first, button last
// (heads-up the button posts the small blind and acts first preflop).
type HandHistory struct {
	Variant           string   `toml:"variant"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Seats             []int    `toml:"seats,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Winnings          []int    `toml:"winnings,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
	Time              string   `toml:"time,omitempty"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`

	Timestamp time.Time `toml:"-"`
}
