package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/goodnatureofminers/lotterywatch/pkg/safe"
)

// Writer submits state-changing calls. Each call is a single attempt.
type Writer struct {
	contract *bind.BoundContract
}

func NewWriter(address common.Address, backend bind.ContractBackend) *Writer {
	return &Writer{
		contract: bind.NewBoundContract(address, lotteryABI, backend, backend, backend),
	}
}

func (w *Writer) JoinRound(ctx context.Context, opts *bind.TransactOpts, id uint64, value *big.Int) (*types.Transaction, error) {
	o := withContext(ctx, opts)
	o.Value = value
	tx, err := w.contract.Transact(o, methodJoinLottery, new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("transact %s(%d): %w", methodJoinLottery, id, err)
	}
	return tx, nil
}

func (w *Writer) RequestWinner(ctx context.Context, opts *bind.TransactOpts, id uint64) (*types.Transaction, error) {
	tx, err := w.contract.Transact(withContext(ctx, opts), methodRequestWinner, new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("transact %s(%d): %w", methodRequestWinner, id, err)
	}
	return tx, nil
}

func (w *Writer) CreateRound(ctx context.Context, opts *bind.TransactOpts, entryFee *big.Int, start, end int64) (*types.Transaction, error) {
	startTime, err := safe.Uint64(start)
	if err != nil {
		return nil, fmt.Errorf("create round start time: %w", err)
	}
	endTime, err := safe.Uint64(end)
	if err != nil {
		return nil, fmt.Errorf("create round end time: %w", err)
	}
	tx, err := w.contract.Transact(withContext(ctx, opts), methodCreateLottery,
		entryFee, new(big.Int).SetUint64(startTime), new(big.Int).SetUint64(endTime))
	if err != nil {
		return nil, fmt.Errorf("transact %s: %w", methodCreateLottery, err)
	}
	return tx, nil
}

func withContext(ctx context.Context, opts *bind.TransactOpts) *bind.TransactOpts {
	o := *opts
	o.Context = ctx
	return &o
}
