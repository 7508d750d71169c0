// Package status derives the presentation view of a round from a snapshot and the wall clock.
package status

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
	"github.com/shopspring/decimal"
)

const (
	// DefaultClosingSoonWindow is the fixed warning threshold before the round ends.
	DefaultClosingSoonWindow = 30 * time.Minute

	weiDecimals = 18
)

// DefaultFallbackMinEntry is 0.01 ether, used while the round fee is unknown.
var DefaultFallbackMinEntry = big.NewInt(10_000_000_000_000_000)

var (
	ErrEmptyAmount    = errors.New("empty amount")
	ErrNegativeAmount = errors.New("negative amount")
)

// Policy holds the tunables of the derivation.
type Policy struct {
	// ClosingSoonWindow <= 0 flags the whole open window as closing soon.
	ClosingSoonWindow time.Duration
	FallbackMinEntry  *big.Int
}

// DefaultPolicy returns the 30 minute threshold with a 0.01 ether fallback.
func DefaultPolicy() Policy {
	return Policy{
		ClosingSoonWindow: DefaultClosingSoonWindow,
		FallbackMinEntry:  new(big.Int).Set(DefaultFallbackMinEntry),
	}
}

// Derive computes the status view. It reads nothing but its arguments.
func Derive(round *model.Round, now time.Time, p Policy) model.StatusView {
	view := model.StatusView{
		Status:   model.StatusNotStarted,
		Entry:    model.Unknown,
		MinEntry: minEntry(round, p),
	}
	if round == nil {
		return view
	}

	view.Status = round.Status
	view.IsOpen = round.Status == model.StatusOpen

	nowUnix := now.Unix()
	inWindow := round.StartTime <= nowUnix && nowUnix < round.EndTime
	view.Entry = model.TristateOf(round.Status.AcceptsEntries() && inWindow)

	remaining := time.Unix(round.EndTime, 0).Sub(now)
	if remaining > 0 && round.Status < model.StatusClosed {
		view.TimeRemaining = FormatRemaining(remaining)
	}

	if view.IsOpen && remaining > 0 {
		view.IsClosingSoon = p.ClosingSoonWindow <= 0 || remaining < p.ClosingSoonWindow
	}

	return view
}

func minEntry(round *model.Round, p Policy) *big.Int {
	if round != nil && round.EntryFee != nil {
		return new(big.Int).Set(round.EntryFee)
	}
	if p.FallbackMinEntry != nil {
		return new(big.Int).Set(p.FallbackMinEntry)
	}
	return new(big.Int).Set(DefaultFallbackMinEntry)
}

// FormatRemaining renders d as H:MM:SS with unpadded hours, truncated to whole seconds.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total/60%60, total%60)
}

// ParseAmount converts a decimal ether string to wei, flooring sub-wei digits.
func ParseAmount(text string) (*big.Int, error) {
	d, err := parseEther(text)
	if err != nil {
		return nil, err
	}
	return d.Shift(weiDecimals).Floor().BigInt(), nil
}

// IsInvalidAmount reports whether text is not a finite non-negative number or is below minEntry.
func IsInvalidAmount(text string, minEntry *big.Int) bool {
	d, err := parseEther(text)
	if err != nil {
		return true
	}
	if minEntry == nil {
		return false
	}
	return d.LessThan(decimal.NewFromBigInt(minEntry, -weiDecimals))
}

func parseEther(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Decimal{}, ErrEmptyAmount
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", text, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, ErrNegativeAmount
	}
	return d, nil
}
