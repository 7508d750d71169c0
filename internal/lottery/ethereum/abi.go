// Package ethereum binds the lottery contract through go-ethereum.
package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// LotteryABI lists the contract surface the watcher uses.
const LotteryABI = `[
  {"type":"function","name":"getLottery","stateMutability":"view",
   "inputs":[{"name":"lotteryId","type":"uint256"}],
   "outputs":[{"name":"","type":"tuple","components":[
     {"name":"id","type":"uint256"},
     {"name":"entryFee","type":"uint256"},
     {"name":"startTime","type":"uint256"},
     {"name":"endTime","type":"uint256"},
     {"name":"totalPot","type":"uint256"},
     {"name":"status","type":"uint8"},
     {"name":"winner","type":"address"},
     {"name":"randomValue","type":"uint256"}]}]},
  {"type":"function","name":"getPlayersByLotteryId","stateMutability":"view",
   "inputs":[{"name":"lotteryId","type":"uint256"}],
   "outputs":[{"name":"","type":"address[]"}]},
  {"type":"function","name":"owner","stateMutability":"view",
   "inputs":[],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"getTreasuryAddress","stateMutability":"view",
   "inputs":[],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"lotteryIdCounter","stateMutability":"view",
   "inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"joinLottery","stateMutability":"payable",
   "inputs":[{"name":"lotteryId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"requestWinner","stateMutability":"nonpayable",
   "inputs":[{"name":"lotteryId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"createLottery","stateMutability":"nonpayable",
   "inputs":[{"name":"entryFee","type":"uint256"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"}],
   "outputs":[]},
  {"type":"event","name":"WinnerPaid","anonymous":false,
   "inputs":[
     {"name":"lotteryId","type":"uint256","indexed":true},
     {"name":"winnerAddress","type":"address","indexed":true},
     {"name":"winnerPayout","type":"uint256","indexed":false},
     {"name":"totalPot","type":"uint256","indexed":false}]}
]`

const (
	methodGetLottery     = "getLottery"
	methodGetPlayers     = "getPlayersByLotteryId"
	methodOwner          = "owner"
	methodTreasury       = "getTreasuryAddress"
	methodLotteryCounter = "lotteryIdCounter"
	methodJoinLottery    = "joinLottery"
	methodRequestWinner  = "requestWinner"
	methodCreateLottery  = "createLottery"
	eventWinnerPaid      = "WinnerPaid"
)

// WinnerPaidSignature is the canonical event signature hashed into WinnerPaidTopic.
const WinnerPaidSignature = "WinnerPaid(uint256,address,uint256,uint256)"

// WinnerPaidTopic is the first topic of every payout log.
var WinnerPaidTopic = crypto.Keccak256Hash([]byte(WinnerPaidSignature))

var lotteryABI = mustParseABI()

// ParseABI returns the parsed contract ABI.
func ParseABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(LotteryABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse lottery abi: %w", err)
	}
	return parsed, nil
}

func mustParseABI() abi.ABI {
	parsed, err := ParseABI()
	if err != nil {
		panic(err)
	}
	return parsed
}
