package history

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LogSource is bound to one contract address and the WinnerPaid topic.
	LogSource interface {
		LatestBlock(ctx context.Context) (uint64, error)
		Logs(ctx context.Context, from, to uint64) ([]types.Log, error)
	}
	Decoder interface {
		Decode(log types.Log) (model.PayoutEvent, error)
	}
	Metrics interface {
		ObserveScan(err error, admitted int, started time.Time)
		ObserveWindow(err error, logs int)
		ObserveDecodeFailure()
		ObserveConflicts(n int)
		SetLedgerSize(n int)
	}
)
