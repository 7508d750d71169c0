package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
	"github.com/goodnatureofminers/lotterywatch/pkg/safe"
)

var (
	// ErrRoundNotFound is returned when the contract answers with an empty round.
	ErrRoundNotFound    = errors.New("round not found")
	ErrUnexpectedOutput = errors.New("unexpected output length")
)

type (
	// Caller is the read surface of a node.
	Caller interface {
		bind.ContractCaller
		BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	}
)

// lotteryTuple mirrors the getLottery output. Field names follow the ABI component names.
type lotteryTuple struct {
	Id          *big.Int
	EntryFee    *big.Int
	StartTime   *big.Int
	EndTime     *big.Int
	TotalPot    *big.Int
	Status      uint8
	Winner      common.Address
	RandomValue *big.Int
}

// Contract reads round state from the deployed lottery.
type Contract struct {
	address  common.Address
	caller   Caller
	contract *bind.BoundContract
}

func NewContract(address common.Address, caller Caller) *Contract {
	return &Contract{
		address:  address,
		caller:   caller,
		contract: bind.NewBoundContract(address, lotteryABI, caller, nil, nil),
	}
}

// Address returns the contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

func (c *Contract) Round(ctx context.Context, id uint64) (model.Round, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetLottery, new(big.Int).SetUint64(id)); err != nil {
		return model.Round{}, fmt.Errorf("call %s(%d): %w", methodGetLottery, id, err)
	}
	if err := singleOutput(methodGetLottery, out); err != nil {
		return model.Round{}, err
	}

	tuple := *abi.ConvertType(out[0], new(lotteryTuple)).(*lotteryTuple)
	round, err := roundFromTuple(tuple)
	if err != nil {
		return model.Round{}, fmt.Errorf("decode round %d: %w", id, err)
	}
	return round, nil
}

func (c *Contract) Players(ctx context.Context, id uint64) (model.PlayerList, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetPlayers, new(big.Int).SetUint64(id)); err != nil {
		return nil, fmt.Errorf("call %s(%d): %w", methodGetPlayers, id, err)
	}
	if err := singleOutput(methodGetPlayers, out); err != nil {
		return nil, err
	}
	players := *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address)
	return model.PlayerList(players), nil
}

func (c *Contract) Owner(ctx context.Context) (common.Address, error) {
	return c.callAddress(ctx, methodOwner)
}

func (c *Contract) TreasuryAddress(ctx context.Context) (common.Address, error) {
	return c.callAddress(ctx, methodTreasury)
}

func (c *Contract) RoundCounter(ctx context.Context) (uint64, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodLotteryCounter); err != nil {
		return 0, fmt.Errorf("call %s: %w", methodLotteryCounter, err)
	}
	if err := singleOutput(methodLotteryCounter, out); err != nil {
		return 0, err
	}
	counter := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	v, err := safe.BigUint64(counter)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", methodLotteryCounter, err)
	}
	return v, nil
}

func (c *Contract) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := c.caller.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", account.Hex(), err)
	}
	return balance, nil
}

func (c *Contract) callAddress(ctx context.Context, method string) (common.Address, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method); err != nil {
		return common.Address{}, fmt.Errorf("call %s: %w", method, err)
	}
	if err := singleOutput(method, out); err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// singleOutput guards the out[0] conversions against nodes returning an empty result.
func singleOutput(method string, out []interface{}) error {
	if len(out) != 1 {
		return fmt.Errorf("call %s: %w: got %d values", method, ErrUnexpectedOutput, len(out))
	}
	return nil
}

func roundFromTuple(t lotteryTuple) (model.Round, error) {
	id, err := safe.BigUint64(t.Id)
	if err != nil {
		return model.Round{}, fmt.Errorf("id: %w", err)
	}
	if id == 0 {
		return model.Round{}, ErrRoundNotFound
	}
	start, err := safe.BigInt64(t.StartTime)
	if err != nil {
		return model.Round{}, fmt.Errorf("start time: %w", err)
	}
	end, err := safe.BigInt64(t.EndTime)
	if err != nil {
		return model.Round{}, fmt.Errorf("end time: %w", err)
	}
	status, err := model.ParseStatus(t.Status)
	if err != nil {
		return model.Round{}, err
	}

	round := model.Round{
		ID:        id,
		EntryFee:  cloneOrZero(t.EntryFee),
		StartTime: start,
		EndTime:   end,
		TotalPot:  cloneOrZero(t.TotalPot),
		Status:    status,
	}
	if !model.ZeroAddress(t.Winner) {
		winner := t.Winner
		round.Winner = &winner
	}
	if t.RandomValue != nil && t.RandomValue.Sign() != 0 {
		round.RandomValue = new(big.Int).Set(t.RandomValue)
	}
	return round, nil
}

func cloneOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
