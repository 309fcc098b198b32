package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

// handleWallet reports the signing account and network.
func (h *Handler) handleWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.svc.ConnectWallet(r.Context())
	if err != nil {
		h.writeError(w, "connect wallet", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toWalletJSON(wallet))
}

// handleBoard returns active and ended campaigns with action gating. An
// optional `account` query parameter gates for that address instead of the
// service's own account, which lets a read-only client see its refunds.
func (h *Handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	account, ok := accountParam(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid account"})
		return
	}
	wallet, err := h.svc.ConnectWallet(r.Context())
	if err != nil {
		h.writeError(w, "connect wallet", err)
		return
	}
	if account != nil {
		wallet = wallet.WithAccount(*account)
	}
	board, err := h.svc.Board(r.Context(), wallet, h.clock())
	if err != nil {
		h.writeError(w, "board", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBoardJSON(board))
}

// handleRefresh forces a new read of all campaigns.
func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Refresh(r.Context()); err != nil {
		h.writeError(w, "refresh", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleReceipts lists journaled action receipts, optionally for one
// account.
func (h *Handler) handleReceipts(w http.ResponseWriter, r *http.Request) {
	account, ok := accountParam(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid account"})
		return
	}
	var limit int
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}
	receipts, err := h.svc.Receipts(r.Context(), account, limit)
	if err != nil {
		h.writeError(w, "receipts", err)
		return
	}
	out := make([]receiptJSON, 0, len(receipts))
	for _, rc := range receipts {
		out = append(out, toReceiptJSON(rc))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// accountParam parses the optional `account` query parameter. ok is false
// when it is present but not a hex address.
func accountParam(r *http.Request) (*common.Address, bool) {
	s := r.URL.Query().Get("account")
	if s == "" {
		return nil, true
	}
	if !common.IsHexAddress(s) {
		return nil, false
	}
	a := common.HexToAddress(s)
	return &a, true
}
