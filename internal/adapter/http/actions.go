package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

// textValue accepts a JSON string or number and keeps its literal text, so
// "0.5" and 0.5 both reach the amount parser unchanged.
type textValue string

func (v *textValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = textValue(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = textValue(n)
	return nil
}

type createRequest struct {
	Description string    `json:"description"`
	Goal        textValue `json:"goal"`
	Duration    textValue `json:"duration"`
}

type donateRequest struct {
	Amount textValue `json:"amount"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	h.submit(w, r, domain.ActionRequest{
		Action:      domain.ActionCreate,
		Description: body.Description,
		Goal:        string(body.Goal),
		Duration:    string(body.Duration),
	})
}

func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	var body donateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	h.submit(w, r, domain.ActionRequest{
		Action:     domain.ActionDonate,
		CampaignID: campaignID(r),
		Amount:     string(body.Amount),
	})
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.ActionRequest{Action: domain.ActionWithdraw, CampaignID: campaignID(r)})
}

func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.ActionRequest{Action: domain.ActionRefund, CampaignID: campaignID(r)})
}

// submit runs one action and waits for its confirmation, bounded by the
// configured action timeout.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, req domain.ActionRequest) {
	ctx := r.Context()
	if h.actionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.actionTimeout)
		defer cancel()
	}

	wallet, err := h.svc.ConnectWallet(ctx)
	if err != nil {
		h.writeError(w, string(req.Action), err)
		return
	}
	receipt, err := h.svc.Submit(ctx, wallet, req)
	if err != nil {
		h.writeError(w, string(req.Action), err)
		return
	}
	h.logger.Info("action confirmed",
		slog.String("action", string(receipt.Action)),
		slog.String("tx", receipt.TxHash.Hex()),
		slog.Uint64("block", receipt.BlockNumber),
		slog.String("subject", Subject(ctx)))
	h.writeJSON(w, http.StatusOK, toReceiptJSON(*receipt))
}

// campaignID parses the {id} path parameter. It returns nil when the value
// is not a non-negative integer; the dispatcher rejects nil ids.
func campaignID(r *http.Request) *big.Int {
	id, ok := new(big.Int).SetString(chi.URLParam(r, "id"), 10)
	if !ok || id.Sign() < 0 {
		return nil
	}
	return id
}
