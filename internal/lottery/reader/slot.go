package reader

import (
	"time"

	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
)

const (
	reasonOutOfOrder       = "out_of_order"
	reasonStatusRegression = "status_regression"
	reasonPlayersShrunk    = "players_shrunk"
)

// slot tracks one remote field. Completions are applied only in request order.
// It is guarded by the Reader mutex.
type slot[T any] struct {
	field    model.Field[T]
	key      uint64
	issued   uint64
	applied  uint64
	inflight int
}

func (s *slot[T]) begin() uint64 {
	s.issued++
	s.inflight++
	s.field.Fetching = true
	return s.issued
}

// complete applies a finished request and returns the discard reason, if any.
// guard may veto a value; it sees the slot before the update.
func (s *slot[T]) complete(seq, key uint64, v T, err error, now time.Time, guard func(*slot[T], uint64, T) string) string {
	s.inflight--
	s.field.Fetching = s.inflight > 0

	if seq <= s.applied {
		return reasonOutOfOrder
	}
	s.applied = seq

	if err != nil {
		s.field.Err = err
		return ""
	}
	if guard != nil {
		if reason := guard(s, key, v); reason != "" {
			return reason
		}
	}

	s.field.Value = v
	s.field.Loaded = true
	s.field.Err = nil
	s.field.UpdatedAt = now
	s.key = key
	return ""
}
