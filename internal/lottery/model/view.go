package model

import "math/big"

// StatusView is derived from a round snapshot and a wall-clock instant. It holds no
// state of its own.
type StatusView struct {
	Status        Status
	IsOpen        bool
	IsClosingSoon bool
	TimeRemaining string
	// Entry stays Unknown until a round snapshot exists.
	Entry    Tristate
	MinEntry *big.Int
}

// EntryAllowed reports a resolved permission to enter.
func (v StatusView) EntryAllowed() bool {
	return v.Entry == Yes
}

// Label is the status bar text, giving precedence to the closing-soon warning.
func (v StatusView) Label() string {
	if v.IsClosingSoon {
		return "Closing Soon"
	}
	return v.Status.Label()
}
