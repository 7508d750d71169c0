package model

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Field holds the last successfully fetched value of one remote read together with its
// loading and error state. A failed read keeps Value and sets Err.
type Field[T any] struct {
	Value     T
	Loaded    bool
	Fetching  bool
	Err       error
	UpdatedAt time.Time
}

// Loading reports that no good value has arrived yet.
func (f Field[T]) Loading() bool {
	return !f.Loaded
}

// Stale reports that the value is a held-over good value and the latest read failed.
func (f Field[T]) Stale() bool {
	return f.Loaded && f.Err != nil
}

// Tristate is an explicit three-way decision for values that depend on data which may
// not have arrived yet.
type Tristate uint8

const (
	Unknown Tristate = iota
	Yes
	No
)

func (t Tristate) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}

// MarshalText encodes the tristate by name.
func (t Tristate) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TristateOf converts a resolved boolean.
func TristateOf(v bool) Tristate {
	if v {
		return Yes
	}
	return No
}

// Session is the connected identity as reported by the wallet collaborator.
// Resolved stays false until the collaborator has reported; an empty Address after
// that means nobody is connected.
type Session struct {
	Resolved bool
	Address  string
}

// Connected reports a resolved, non-empty session.
func (s Session) Connected() bool {
	return s.Resolved && strings.TrimSpace(s.Address) != ""
}

// ZeroAddress reports whether a is the all-zero address.
func ZeroAddress(a common.Address) bool {
	return a == (common.Address{})
}
