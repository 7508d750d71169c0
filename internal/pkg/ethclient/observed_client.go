package ethclient

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Backend is the node surface used by the lottery adapters. *ethclient.Client satisfies it.
	Backend interface {
		bind.ContractBackend
		BlockNumber(ctx context.Context) (uint64, error)
		BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	}
)

// ObservedClient records metrics for every node call the watcher issues.
// Calls it does not override go straight to the backend.
type ObservedClient struct {
	Backend
	rpcMetrics RPCMetrics
}

func NewObservedClient(backend Backend, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		Backend:    backend,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) (code []byte, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("code_at", err, started)
	}()
	return r.Backend.CodeAt(ctx, contract, blockNumber)
}

func (r *ObservedClient) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) (out []byte, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("call_contract", err, started)
	}()
	return r.Backend.CallContract(ctx, call, blockNumber)
}

func (r *ObservedClient) FilterLogs(ctx context.Context, q ethereum.FilterQuery) (logs []types.Log, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("filter_logs", err, started)
	}()
	return r.Backend.FilterLogs(ctx, q)
}

func (r *ObservedClient) BlockNumber(ctx context.Context) (number uint64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("block_number", err, started)
	}()
	return r.Backend.BlockNumber(ctx)
}

func (r *ObservedClient) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (balance *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("balance_at", err, started)
	}()
	return r.Backend.BalanceAt(ctx, account, blockNumber)
}

func (r *ObservedClient) SendTransaction(ctx context.Context, tx *types.Transaction) (err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_transaction", err, started)
	}()
	return r.Backend.SendTransaction(ctx, tx)
}
