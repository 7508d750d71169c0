package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrMissingChainID = errors.New("chain id is required for signing")

// KeyedSigner signs transactions with a single private key.
type KeyedSigner struct {
	opts *bind.TransactOpts
}

// NewKeyedSigner parses a hex private key, with or without the 0x prefix.
func NewKeyedSigner(hexKey string, chainID *big.Int) (*KeyedSigner, error) {
	if chainID == nil || chainID.Sign() <= 0 {
		return nil, ErrMissingChainID
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("new transactor: %w", err)
	}
	return &KeyedSigner{opts: opts}, nil
}

// Address is the account transactions are sent from.
func (s *KeyedSigner) Address() common.Address {
	return s.opts.From
}

// TransactOpts returns a copy bound to ctx. Nonce, gas and fees are left to the backend.
func (s *KeyedSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return withContext(ctx, s.opts), nil
}
