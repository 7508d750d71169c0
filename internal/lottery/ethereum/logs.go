package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
	"github.com/goodnatureofminers/lotterywatch/pkg/safe"
)

var ErrForeignLog = errors.New("log emitted by another contract")

type (
	// LogBackend is the log query surface of a node or log provider.
	LogBackend interface {
		BlockNumber(ctx context.Context) (uint64, error)
		FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	}
)

// LogSource queries WinnerPaid logs of one contract.
type LogSource struct {
	backend LogBackend
	address common.Address
}

func NewLogSource(address common.Address, backend LogBackend) *LogSource {
	return &LogSource{backend: backend, address: address}
}

func (s *LogSource) LatestBlock(ctx context.Context) (uint64, error) {
	head, err := s.backend.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return head, nil
}

// Logs returns payout logs in [from, to].
func (s *LogSource) Logs(ctx context.Context, from, to uint64) ([]types.Log, error) {
	logs, err := s.backend.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{s.address},
		Topics:    [][]common.Hash{{WinnerPaidTopic}},
	})
	if err != nil {
		return nil, fmt.Errorf("filter logs [%d,%d]: %w", from, to, err)
	}
	return logs, nil
}

type winnerPaid struct {
	LotteryId     *big.Int
	WinnerAddress common.Address
	WinnerPayout  *big.Int
	TotalPot      *big.Int
}

// Decoder turns raw WinnerPaid logs into payout events.
type Decoder struct {
	address  common.Address
	contract *bind.BoundContract
}

func NewDecoder(address common.Address) *Decoder {
	return &Decoder{
		address:  address,
		contract: bind.NewBoundContract(address, lotteryABI, nil, nil, nil),
	}
}

func (d *Decoder) Decode(log types.Log) (model.PayoutEvent, error) {
	if log.Address != d.address {
		return model.PayoutEvent{}, fmt.Errorf("%w: %s", ErrForeignLog, log.Address.Hex())
	}

	var ev winnerPaid
	if err := d.contract.UnpackLog(&ev, eventWinnerPaid, log); err != nil {
		return model.PayoutEvent{}, fmt.Errorf("unpack %s at %d:%d: %w", eventWinnerPaid, log.BlockNumber, log.Index, err)
	}

	roundID, err := safe.BigUint64(ev.LotteryId)
	if err != nil {
		return model.PayoutEvent{}, fmt.Errorf("lottery id: %w", err)
	}

	return model.PayoutEvent{
		RoundID:  roundID,
		Winner:   ev.WinnerAddress,
		Payout:   cloneOrZero(ev.WinnerPayout),
		TotalPot: cloneOrZero(ev.TotalPot),
		Position: model.Position{Block: log.BlockNumber, LogIndex: log.Index},
		TxHash:   log.TxHash,
	}, nil
}
