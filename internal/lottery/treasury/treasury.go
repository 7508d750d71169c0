// Package treasury computes protocol fee totals from the payout ledger.
package treasury

import (
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
	"github.com/shopspring/decimal"
)

// MaxBasisPoints is 100%.
const MaxBasisPoints = 10_000

// DefaultRetainedBasisPoints pays the winner 98% of the pot.
const DefaultRetainedBasisPoints = 9_800

// CumulativeFee sums pot - floor(pot * retainedBps / 10000) over events.
func CumulativeFee(events []model.PayoutEvent, retainedBps uint64) (*big.Int, error) {
	if retainedBps > MaxBasisPoints {
		return nil, fmt.Errorf("retained basis points %d exceed %d", retainedBps, MaxBasisPoints)
	}

	bps := new(big.Int).SetUint64(retainedBps)
	denom := big.NewInt(MaxBasisPoints)
	total := new(big.Int)
	retained := new(big.Int)

	for _, e := range events {
		if e.TotalPot == nil {
			continue
		}
		retained.Mul(e.TotalPot, bps)
		retained.Quo(retained, denom)
		total.Add(total, new(big.Int).Sub(e.TotalPot, retained))
	}

	return total, nil
}

// TotalPaidOut sums the winner payouts.
func TotalPaidOut(events []model.PayoutEvent) *big.Int {
	total := new(big.Int)
	for _, e := range events {
		if e.Payout != nil {
			total.Add(total, e.Payout)
		}
	}
	return total
}

// FormatEther renders a wei amount as ether with a fixed number of decimal places.
func FormatEther(wei *big.Int, places int32) string {
	if wei == nil {
		return decimal.Zero.StringFixed(places)
	}
	return decimal.NewFromBigInt(wei, -18).StringFixed(places)
}

// Summary is the aggregate shown next to the history.
type Summary struct {
	Events        int
	TotalPaidOut  *big.Int
	CumulativeFee *big.Int
}

// Summarize aggregates the ledger.
func Summarize(events []model.PayoutEvent, retainedBps uint64) (Summary, error) {
	fee, err := CumulativeFee(events, retainedBps)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Events:        len(events),
		TotalPaidOut:  TotalPaidOut(events),
		CumulativeFee: fee,
	}, nil
}
