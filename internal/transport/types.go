package transport

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Watcher interface {
		Snapshot() *service.Snapshot
		ViewFor(session model.Session) service.SessionView
		ValidateEntry(text string) service.EntryCheck
		RefreshOwner(ctx context.Context) error
		Join(ctx context.Context, amountText string) (*types.Transaction, error)
		RequestWinner(ctx context.Context) (*types.Transaction, error)
		CreateRound(ctx context.Context, feeText string, start, end time.Time) (*types.Transaction, error)
	}
)
