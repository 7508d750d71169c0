package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/lotterywatch/internal/lottery/history"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/reader"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/scheduler"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RoundReader interface {
		Refresh(ctx context.Context) error
		RefreshOwner(ctx context.Context) error
		State() reader.State
	}
	HistoryRunner interface {
		Run(ctx context.Context) (history.Result, error)
	}
	Scheduler interface {
		Schedule(ctx context.Context, name string, interval time.Duration, fn scheduler.Func) error
		Update(name string, fn scheduler.Func) error
		Trigger(name string) bool
		Stop()
	}
	Writer interface {
		JoinRound(ctx context.Context, opts *bind.TransactOpts, id uint64, value *big.Int) (*types.Transaction, error)
		RequestWinner(ctx context.Context, opts *bind.TransactOpts, id uint64) (*types.Transaction, error)
		CreateRound(ctx context.Context, opts *bind.TransactOpts, entryFee *big.Int, start, end int64) (*types.Transaction, error)
	}
	// Signer supplies authorised transaction options for the wallet it holds.
	Signer interface {
		Address() common.Address
		TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
	}
	HealthReporter interface {
		SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
	}
)
