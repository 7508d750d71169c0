// Package transport exposes the lottery feed over HTTP.
package transport

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/service"
	"github.com/goodnatureofminers/lotterywatch/internal/lottery/treasury"
)

const etherPlaces = 4

var errUnauthorized = errors.New("missing or invalid write token")

// LotteryHandler serves the published snapshot and, when a write token is set, the write
// operations. Writes are signed by the server wallet, so every write route requires
// "Authorization: Bearer <token>".
type LotteryHandler struct {
	watcher    Watcher
	logger     *zap.Logger
	writeToken string
}

func NewLotteryHandler(watcher Watcher, logger *zap.Logger, writeToken string) *LotteryHandler {
	return &LotteryHandler{
		watcher:    watcher,
		logger:     logger.Named("lottery_handler"),
		writeToken: writeToken,
	}
}

// Register mounts the routes on mux.
func (h *LotteryHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/v1/lottery", h.getLottery},
		{http.MethodGet, "/v1/history", h.getHistory},
		{http.MethodGet, "/v1/entry/validate", h.validateEntry},
		{http.MethodPost, "/v1/lottery/owner/refresh", h.refreshOwner},
	}
	if h.writeToken != "" {
		routes = append(routes, []struct {
			method  string
			pattern string
			handler gwruntime.HandlerFunc
		}{
			{http.MethodPost, "/v1/lottery/join", h.authorized(h.join)},
			{http.MethodPost, "/v1/lottery/draw", h.authorized(h.requestWinner)},
			{http.MethodPost, "/v1/lottery/rounds", h.authorized(h.createRound)},
		}...)
	}

	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", r.method, r.pattern, err)
		}
	}
	return nil
}

type fieldJSON struct {
	Loaded    bool       `json:"loaded"`
	Fetching  bool       `json:"fetching"`
	Stale     bool       `json:"stale"`
	Error     string     `json:"error,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func fieldMeta[T any](f model.Field[T]) fieldJSON {
	out := fieldJSON{Loaded: f.Loaded, Fetching: f.Fetching, Stale: f.Stale()}
	if f.Err != nil {
		out.Error = f.Err.Error()
	}
	if !f.UpdatedAt.IsZero() {
		at := f.UpdatedAt
		out.UpdatedAt = &at
	}
	return out
}

type roundJSON struct {
	ID          uint64       `json:"id"`
	EntryFee    string       `json:"entryFee"`
	StartTime   time.Time    `json:"startTime"`
	EndTime     time.Time    `json:"endTime"`
	TotalPot    string       `json:"totalPot"`
	Status      model.Status `json:"status"`
	Winner      string       `json:"winner,omitempty"`
	RandomValue string       `json:"randomValue,omitempty"`
}

type lotteryResponse struct {
	At              time.Time            `json:"at"`
	RoundID         uint64               `json:"roundId"`
	Round           *roundJSON           `json:"round,omitempty"`
	Status          model.Status         `json:"status"`
	StatusLabel     string               `json:"statusLabel"`
	IsOpen          bool                 `json:"isOpen"`
	IsClosingSoon   bool                 `json:"isClosingSoon"`
	TimeRemaining   string               `json:"timeRemaining,omitempty"`
	EntryAllowed    model.Tristate       `json:"entryAllowed"`
	MinEntry        string               `json:"minEntry"`
	Players         []string             `json:"players"`
	Owner           string               `json:"owner,omitempty"`
	IsOwner         model.Tristate       `json:"isOwner"`
	Treasury        string               `json:"treasury,omitempty"`
	TreasuryBalance string               `json:"treasuryBalance,omitempty"`
	Fields          map[string]fieldJSON `json:"fields"`
}

func (h *LotteryHandler) getLottery(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	view := h.watcher.ViewFor(sessionFromQuery(r))
	st := view.State

	resp := lotteryResponse{
		At:            view.At,
		RoundID:       st.RoundID,
		Status:        view.View.Status,
		StatusLabel:   view.View.Label(),
		IsOpen:        view.View.IsOpen,
		IsClosingSoon: view.View.IsClosingSoon,
		TimeRemaining: view.View.TimeRemaining,
		EntryAllowed:  view.View.Entry,
		MinEntry:      treasury.FormatEther(view.View.MinEntry, etherPlaces),
		Players:       make([]string, 0, len(st.Players.Value)),
		IsOwner:       view.IsOwner,
		Fields: map[string]fieldJSON{
			"counter":  fieldMeta(st.Counter),
			"round":    fieldMeta(st.Round),
			"players":  fieldMeta(st.Players),
			"owner":    fieldMeta(st.Owner),
			"treasury": fieldMeta(st.Treasury),
			"balance":  fieldMeta(st.Balance),
		},
	}
	if st.Round.Loaded {
		resp.Round = newRoundJSON(st.Round.Value)
	}
	for _, p := range st.Players.Value {
		resp.Players = append(resp.Players, p.Hex())
	}
	if st.Owner.Loaded {
		resp.Owner = st.Owner.Value.Hex()
	}
	if st.Treasury.Loaded && !model.ZeroAddress(st.Treasury.Value) {
		resp.Treasury = st.Treasury.Value.Hex()
	}
	if st.Balance.Loaded {
		resp.TreasuryBalance = treasury.FormatEther(st.Balance.Value, etherPlaces)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func newRoundJSON(r model.Round) *roundJSON {
	out := &roundJSON{
		ID:        r.ID,
		EntryFee:  treasury.FormatEther(r.EntryFee, etherPlaces),
		StartTime: time.Unix(r.StartTime, 0).UTC(),
		EndTime:   time.Unix(r.EndTime, 0).UTC(),
		TotalPot:  treasury.FormatEther(r.TotalPot, etherPlaces),
		Status:    r.Status,
	}
	if r.Winner != nil {
		out.Winner = r.Winner.Hex()
	}
	if r.RandomValue != nil {
		out.RandomValue = r.RandomValue.String()
	}
	return out
}

type payoutJSON struct {
	RoundID  uint64 `json:"roundId"`
	Winner   string `json:"winner"`
	Payout   string `json:"payout"`
	TotalPot string `json:"totalPot"`
	Block    uint64 `json:"block"`
	LogIndex uint   `json:"logIndex"`
	TxHash   string `json:"txHash"`
}

type historyResponse struct {
	Events        []payoutJSON `json:"events"`
	TotalPaidOut  string       `json:"totalPaidOut"`
	CumulativeFee string       `json:"cumulativeFee"`
	Error         string       `json:"error,omitempty"`
}

func (h *LotteryHandler) getHistory(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	snap := h.watcher.Snapshot()

	resp := historyResponse{
		Events:        make([]payoutJSON, 0, len(snap.History)),
		TotalPaidOut:  treasury.FormatEther(snap.Summary.TotalPaidOut, etherPlaces),
		CumulativeFee: treasury.FormatEther(snap.Summary.CumulativeFee, etherPlaces),
	}
	for _, e := range snap.History {
		resp.Events = append(resp.Events, payoutJSON{
			RoundID:  e.RoundID,
			Winner:   e.Winner.Hex(),
			Payout:   treasury.FormatEther(e.Payout, etherPlaces),
			TotalPot: treasury.FormatEther(e.TotalPot, etherPlaces),
			Block:    e.Position.Block,
			LogIndex: e.Position.LogIndex,
			TxHash:   e.TxHash.Hex(),
		})
	}
	if snap.HistoryErr != nil {
		resp.Error = snap.HistoryErr.Error()
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type validateResponse struct {
	Amount       string         `json:"amount,omitempty"`
	MinEntry     string         `json:"minEntry"`
	Invalid      bool           `json:"invalid"`
	EntryAllowed model.Tristate `json:"entryAllowed"`
}

func (h *LotteryHandler) validateEntry(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	check := h.watcher.ValidateEntry(r.URL.Query().Get("amount"))

	resp := validateResponse{
		MinEntry:     treasury.FormatEther(check.MinEntry, etherPlaces),
		Invalid:      check.Invalid,
		EntryAllowed: check.Entry,
	}
	if check.Amount != nil {
		resp.Amount = weiString(check.Amount)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *LotteryHandler) refreshOwner(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if err := h.watcher.RefreshOwner(r.Context()); err != nil {
		h.logger.Warn("refresh owner", zap.Error(err))
		h.writeError(w, http.StatusBadGateway, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type joinRequest struct {
	Amount string `json:"amount"`
}

type createRoundRequest struct {
	EntryFee string    `json:"entryFee"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type txResponse struct {
	TxHash string `json:"txHash"`
}

func (h *LotteryHandler) join(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req joinRequest
	if !h.decode(w, r, &req) {
		return
	}
	tx, err := h.watcher.Join(r.Context(), req.Amount)
	h.writeTx(w, "join", tx, err)
}

func (h *LotteryHandler) requestWinner(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	tx, err := h.watcher.RequestWinner(r.Context())
	h.writeTx(w, "request winner", tx, err)
}

func (h *LotteryHandler) createRound(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req createRoundRequest
	if !h.decode(w, r, &req) {
		return
	}
	tx, err := h.watcher.CreateRound(r.Context(), req.EntryFee, req.Start, req.End)
	h.writeTx(w, "create round", tx, err)
}

// sessionFromQuery reads the caller's wallet session. session_pending=true means the wallet
// has not reported its account yet.
func sessionFromQuery(r *http.Request) model.Session {
	q := r.URL.Query()
	return model.Session{
		Resolved: q.Get("session_pending") != "true",
		Address:  q.Get("session"),
	}
}

// authorized rejects requests that do not carry the write token.
func (h *LotteryHandler) authorized(next gwruntime.HandlerFunc) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.writeToken)) != 1 {
			h.writeError(w, http.StatusUnauthorized, errUnauthorized)
			return
		}
		next(w, r, params)
	}
}

func (h *LotteryHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return false
	}
	return true
}

func (h *LotteryHandler) writeTx(w http.ResponseWriter, op string, tx *types.Transaction, err error) {
	if err != nil {
		h.logger.Warn("write rejected", zap.String("operation", op), zap.Error(err))
		h.writeError(w, statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, txResponse{TxHash: tx.Hash().Hex()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEntryNotAllowed),
		errors.Is(err, service.ErrNoPlayers),
		errors.Is(err, service.ErrRoundUnknown):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidSchedule):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrOwnerUnresolved):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrNoSigner):
		return http.StatusNotImplemented
	default:
		return http.StatusBadGateway
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *LotteryHandler) writeError(w http.ResponseWriter, code int, err error) {
	h.writeJSON(w, code, errorResponse{Error: err.Error()})
}

func (h *LotteryHandler) writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

func weiString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
