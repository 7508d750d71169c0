// Package reader keeps the latest good snapshot of every remote round field.
package reader

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/lotterywatch/internal/clock"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
)

const (
	fieldCounter  = "counter"
	fieldRound    = "round"
	fieldPlayers  = "players"
	fieldOwner    = "owner"
	fieldTreasury = "treasury"
	fieldBalance  = "balance"
)

// State is a consistent copy of every field.
type State struct {
	// RoundID is the round the reader follows; zero until it is known.
	RoundID  uint64
	Counter  model.Field[uint64]
	Round    model.Field[model.Round]
	Players  model.Field[model.PlayerList]
	Owner    model.Field[common.Address]
	Treasury model.Field[common.Address]
	Balance  model.Field[*big.Int]
}

// Reader refreshes round state. A failed read keeps the previous good value;
// stale or regressing results are discarded. Safe for concurrent use.
type Reader struct {
	contract Contract
	metrics  Metrics
	clock    clock.Clock
	logger   *zap.Logger
	// fixedRoundID pins the reader to one round; zero follows the active round.
	fixedRoundID uint64

	mu       sync.Mutex
	counter  slot[uint64]
	round    slot[model.Round]
	players  slot[model.PlayerList]
	owner    slot[common.Address]
	treasury slot[common.Address]
	balance  slot[*big.Int]
}

func New(contract Contract, metrics Metrics, clk clock.Clock, logger *zap.Logger, roundID uint64) *Reader {
	if clk == nil {
		clk = clock.System{}
	}
	return &Reader{
		contract:     contract,
		metrics:      metrics,
		clock:        clk,
		logger:       logger.Named("reader"),
		fixedRoundID: roundID,
	}
}

// Refresh re-reads the round, its players and the treasury concurrently. The owner is
// included until it has loaded once; after that it is only read by RefreshOwner.
// The returned error is the first field failure, already recorded in State.
func (r *Reader) Refresh(ctx context.Context) error {
	id, err := r.resolveRoundID(ctx)

	var g errgroup.Group
	if id != 0 {
		g.Go(func() error { return r.refreshRound(ctx, id) })
		g.Go(func() error { return r.refreshPlayers(ctx, id) })
	}
	g.Go(func() error { return r.refreshTreasury(ctx) })

	r.mu.Lock()
	ownerLoaded := r.owner.field.Loaded
	r.mu.Unlock()
	if !ownerLoaded {
		g.Go(func() error { return r.RefreshOwner(ctx) })
	}

	if werr := g.Wait(); err == nil {
		err = werr
	}
	return err
}

// RefreshOwner re-reads the contract owner.
func (r *Reader) RefreshOwner(ctx context.Context) error {
	seq := r.begin(&r.owner)
	started := time.Now()
	owner, err := r.contract.Owner(ctx)
	r.metrics.ObserveFetch(fieldOwner, err, started)
	complete(r, &r.owner, fieldOwner, seq, 0, owner, err, nil)
	if err != nil {
		return fmt.Errorf("read owner: %w", err)
	}
	return nil
}

// State returns a copy of all fields. Round and players held for a round other than
// RoundID are reported as not loaded, so a round change never mixes two rounds.
func (r *Reader) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.currentRoundID()
	st := State{
		RoundID:  id,
		Counter:  r.counter.field,
		Round:    forRound(r.round.field, r.round.key, id),
		Players:  forRound(r.players.field, r.players.key, id),
		Owner:    r.owner.field,
		Treasury: r.treasury.field,
		Balance:  r.balance.field,
	}
	if st.Players.Loaded {
		st.Players.Value = append(model.PlayerList(nil), r.players.field.Value...)
	}
	if v := r.balance.field.Value; v != nil {
		st.Balance.Value = new(big.Int).Set(v)
	}
	return st
}

// forRound hides a value that was loaded for another round, keeping the in-flight and
// error state of the reads for the current one.
func forRound[T any](f model.Field[T], key, id uint64) model.Field[T] {
	if !f.Loaded || key == id {
		return f
	}
	return model.Field[T]{Fetching: f.Fetching, Err: f.Err}
}

func (r *Reader) currentRoundID() uint64 {
	if r.fixedRoundID != 0 {
		return r.fixedRoundID
	}
	if !r.counter.field.Loaded {
		return 0
	}
	return activeRoundID(r.counter.field.Value)
}

// activeRoundID maps lotteryIdCounter to the round in progress.
func activeRoundID(counter uint64) uint64 {
	if counter == 0 {
		return 1
	}
	return counter - 1
}

func (r *Reader) resolveRoundID(ctx context.Context) (uint64, error) {
	if r.fixedRoundID != 0 {
		return r.fixedRoundID, nil
	}

	seq := r.begin(&r.counter)
	started := time.Now()
	counter, err := r.contract.RoundCounter(ctx)
	r.metrics.ObserveFetch(fieldCounter, err, started)

	r.mu.Lock()
	before := r.currentRoundID()
	r.mu.Unlock()

	complete(r, &r.counter, fieldCounter, seq, 0, counter, err, nil)

	r.mu.Lock()
	id := r.currentRoundID()
	r.mu.Unlock()

	if before != 0 && id != before {
		r.logger.Info("active round changed", zap.Uint64("from", before), zap.Uint64("to", id))
	}
	if err != nil {
		return id, fmt.Errorf("read round counter: %w", err)
	}
	return id, nil
}

func (r *Reader) refreshRound(ctx context.Context, id uint64) error {
	seq := r.begin(&r.round)
	started := time.Now()
	round, err := r.contract.Round(ctx, id)
	r.metrics.ObserveFetch(fieldRound, err, started)
	complete(r, &r.round, fieldRound, seq, id, round, err, statusGuard)
	if err != nil {
		return fmt.Errorf("read round %d: %w", id, err)
	}
	return nil
}

func (r *Reader) refreshPlayers(ctx context.Context, id uint64) error {
	seq := r.begin(&r.players)
	started := time.Now()
	players, err := r.contract.Players(ctx, id)
	r.metrics.ObserveFetch(fieldPlayers, err, started)
	complete(r, &r.players, fieldPlayers, seq, id, players, err, r.playersGuard)
	if err != nil {
		return fmt.Errorf("read players of round %d: %w", id, err)
	}
	return nil
}

func (r *Reader) refreshTreasury(ctx context.Context) error {
	seq := r.begin(&r.treasury)
	started := time.Now()
	addr, err := r.contract.TreasuryAddress(ctx)
	r.metrics.ObserveFetch(fieldTreasury, err, started)
	complete(r, &r.treasury, fieldTreasury, seq, 0, addr, err, nil)
	if err != nil {
		return fmt.Errorf("read treasury address: %w", err)
	}

	r.mu.Lock()
	treasury := r.treasury.field
	r.mu.Unlock()
	if !treasury.Loaded || model.ZeroAddress(treasury.Value) {
		return nil
	}

	seq = r.begin(&r.balance)
	started = time.Now()
	balance, err := r.contract.Balance(ctx, treasury.Value)
	r.metrics.ObserveFetch(fieldBalance, err, started)
	complete(r, &r.balance, fieldBalance, seq, 0, balance, err, nil)
	if err != nil {
		return fmt.Errorf("read treasury balance: %w", err)
	}
	return nil
}

func (r *Reader) begin(s interface{ begin() uint64 }) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return s.begin()
}

func complete[T any](r *Reader, s *slot[T], field string, seq, key uint64, v T, err error, guard func(*slot[T], uint64, T) string) {
	r.mu.Lock()
	reason := s.complete(seq, key, v, err, r.clock.Now(), guard)
	r.mu.Unlock()

	if err != nil {
		r.logger.Warn("read failed, keeping last good value", zap.String("field", field), zap.Error(err))
	}
	if reason != "" {
		r.metrics.ObserveDiscarded(field, reason)
		r.logger.Debug("discarded read result", zap.String("field", field), zap.String("reason", reason))
	}
}

// statusGuard drops a snapshot whose status moved backwards within the same round.
func statusGuard(s *slot[model.Round], id uint64, round model.Round) string {
	if s.field.Loaded && s.key == id && round.Status < s.field.Value.Status {
		return reasonStatusRegression
	}
	return ""
}

// playersGuard drops a shorter list for the same round while entries are still accepted.
// Called with r.mu held.
func (r *Reader) playersGuard(s *slot[model.PlayerList], id uint64, players model.PlayerList) string {
	if !s.field.Loaded || s.key != id || len(players) >= len(s.field.Value) {
		return ""
	}
	round := r.round.field
	if round.Loaded && r.round.key == id && !round.Value.Status.AcceptsEntries() {
		return ""
	}
	return reasonPlayersShrunk
}
