package model

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Position is the strict chain order of a log.
type Position struct {
	Block    uint64
	LogIndex uint
}

// Less orders positions by block, then log index.
func (p Position) Less(o Position) bool {
	if p.Block != o.Block {
		return p.Block < o.Block
	}
	return p.LogIndex < o.LogIndex
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Block, p.LogIndex)
}

// PayoutEvent is one decoded WinnerPaid log.
type PayoutEvent struct {
	RoundID  uint64
	Winner   common.Address
	Payout   *big.Int
	TotalPot *big.Int
	Position Position
	TxHash   common.Hash
}

// Key returns the identity used for de-duplication.
func (e PayoutEvent) Key() EventKey {
	return EventKey{RoundID: e.RoundID, Position: e.Position}
}

// SameValue reports whether two events carry identical payload.
func (e PayoutEvent) SameValue(o PayoutEvent) bool {
	return e.RoundID == o.RoundID &&
		e.Winner == o.Winner &&
		e.Position == o.Position &&
		e.TxHash == o.TxHash &&
		bigEqual(e.Payout, o.Payout) &&
		bigEqual(e.TotalPot, o.TotalPot)
}

// EventKey identifies a ledger entry.
type EventKey struct {
	RoundID  uint64
	Position Position
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
