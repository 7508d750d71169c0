package reader

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Contract interface {
		Round(ctx context.Context, id uint64) (model.Round, error)
		Players(ctx context.Context, id uint64) (model.PlayerList, error)
		Owner(ctx context.Context) (common.Address, error)
		TreasuryAddress(ctx context.Context) (common.Address, error)
		RoundCounter(ctx context.Context) (uint64, error)
		Balance(ctx context.Context, account common.Address) (*big.Int, error)
	}
	Metrics interface {
		ObserveFetch(field string, err error, started time.Time)
		ObserveDiscarded(field, reason string)
	}
)
