package service

import "errors"

var (
	ErrEntryNotAllowed = errors.New("entry not allowed")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrNotOwner        = errors.New("session is not the contract owner")
	ErrOwnerUnresolved = errors.New("ownership not resolved yet")
	ErrNoPlayers       = errors.New("round has no players")
	ErrInvalidSchedule = errors.New("round must start before it ends")
	ErrRoundUnknown    = errors.New("round not loaded yet")
	ErrNoSigner        = errors.New("no signer configured")
)
