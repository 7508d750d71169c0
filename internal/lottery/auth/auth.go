// Package auth decides whether the connected session is the contract owner.
package auth

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
)

// Evaluate re-derives ownership from its inputs on every call.
//
// The result stays Unknown while the session is unresolved or the owner has not loaded;
// callers must hide owner-only actions rather than treat that as a refusal.
func Evaluate(session model.Session, owner model.Field[common.Address]) model.Tristate {
	if !session.Resolved {
		return model.Unknown
	}
	if !owner.Loaded {
		return model.Unknown
	}
	addr := strings.TrimSpace(session.Address)
	if addr == "" {
		return model.No
	}
	if !common.IsHexAddress(addr) {
		return model.No
	}
	return model.TristateOf(strings.EqualFold(canonical(addr), owner.Value.Hex()))
}

func canonical(addr string) string {
	if !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		addr = "0x" + addr
	}
	return "0x" + addr[2:]
}
