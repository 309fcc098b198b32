package httpadapter

import (
	"encoding/json"
	"math/big"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type contributorJSON struct {
	Address string `json:"address"`
	Short   string `json:"short"`
}

// campaignJSON renders amounts twice: as ether text for display and as wei
// for clients that do their own arithmetic.
type campaignJSON struct {
	ID              string             `json:"id"`
	Owner           string             `json:"owner"`
	Description     string             `json:"description"`
	Goal            string             `json:"goal"`
	GoalWei         string             `json:"goal_wei"`
	AmountRaised    string             `json:"amount_raised"`
	AmountRaisedWei string             `json:"amount_raised_wei"`
	Deadline        time.Time          `json:"deadline"`
	Withdrawn       bool               `json:"withdrawn"`
	GoalReached     bool               `json:"goal_reached"`
	Contributors    []contributorJSON  `json:"contributors"`
	Contribution    string             `json:"contribution,omitempty"`
	Actions         domain.Eligibility `json:"actions"`
}

type boardJSON struct {
	Active    []campaignJSON `json:"active"`
	Ended     []campaignJSON `json:"ended"`
	FetchedAt time.Time      `json:"fetched_at"`
	Now       time.Time      `json:"now"`
}

type walletJSON struct {
	Connected    bool   `json:"connected"`
	Address      string `json:"address,omitempty"`
	ChainID      string `json:"chain_id,omitempty"`
	WrongNetwork bool   `json:"wrong_network"`
}

type receiptJSON struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	CampaignID  string    `json:"campaign_id,omitempty"`
	Account     string    `json:"account"`
	TxHash      string    `json:"tx_hash"`
	BlockNumber uint64    `json:"block_number"`
	GasUsed     uint64    `json:"gas_used"`
	Value       string    `json:"value"`
	CreatedAt   time.Time `json:"created_at"`
}

// streamMessage is pushed to stream clients after every applied refresh.
// Refund gating needs a per-account contribution lookup, so streamed
// campaigns never offer refund; clients fetch the board for that.
type streamMessage struct {
	Type       string         `json:"type"`
	Generation uint64         `json:"generation"`
	FetchedAt  time.Time      `json:"fetched_at"`
	Active     []campaignJSON `json:"active"`
	Ended      []campaignJSON `json:"ended"`
}

func toCampaignJSON(c domain.CampaignRecord, contribution *big.Int, el domain.Eligibility) campaignJSON {
	out := campaignJSON{
		ID:              bigString(c.ID),
		Owner:           c.Owner.Hex(),
		Description:     c.Description,
		Goal:            domain.FormatAmount(c.Goal),
		GoalWei:         bigString(c.Goal),
		AmountRaised:    domain.FormatAmount(c.AmountRaised),
		AmountRaisedWei: bigString(c.AmountRaised),
		Deadline:        c.DeadlineTime().UTC(),
		Withdrawn:       c.Withdrawn,
		GoalReached:     c.GoalReached(),
		Contributors:    make([]contributorJSON, 0, len(c.Contributors)),
		Actions:         el,
	}
	for _, a := range c.Contributors {
		out.Contributors = append(out.Contributors, contributorJSON{Address: a.Hex(), Short: domain.ShortAddress(a)})
	}
	if contribution != nil {
		out.Contribution = domain.FormatAmount(contribution)
	}
	return out
}

func toBoardJSON(b *port.Board) boardJSON {
	out := boardJSON{
		Active:    make([]campaignJSON, 0, len(b.Active)),
		Ended:     make([]campaignJSON, 0, len(b.Ended)),
		FetchedAt: b.FetchedAt.UTC(),
		Now:       b.Now.UTC(),
	}
	for _, v := range b.Active {
		out.Active = append(out.Active, toCampaignJSON(v.Record, v.Contribution, v.Eligibility))
	}
	for _, v := range b.Ended {
		out.Ended = append(out.Ended, toCampaignJSON(v.Record, v.Contribution, v.Eligibility))
	}
	return out
}

func toWalletJSON(w domain.WalletContext) walletJSON {
	out := walletJSON{Connected: w.Connected, WrongNetwork: w.WrongNetwork}
	if w.Connected {
		out.Address = w.Address.Hex()
	}
	if w.ChainID != nil {
		out.ChainID = w.ChainID.String()
	}
	return out
}

func toReceiptJSON(r domain.Receipt) receiptJSON {
	out := receiptJSON{
		ID:          r.ID.String(),
		Action:      string(r.Action),
		Account:     r.Account.Hex(),
		TxHash:      r.TxHash.Hex(),
		BlockNumber: r.BlockNumber,
		GasUsed:     r.GasUsed,
		Value:       domain.FormatAmount(r.ValueWei),
		CreatedAt:   r.CreatedAt.UTC(),
	}
	if r.CampaignID != nil {
		out.CampaignID = r.CampaignID.String()
	}
	return out
}

// SnapshotMessage encodes a refreshed campaign list for stream clients,
// split into active and ended at now, newest first.
func SnapshotMessage(records []domain.CampaignRecord, generation uint64, fetchedAt, now time.Time) ([]byte, error) {
	active, ended := domain.Partition(records, now)
	msg := streamMessage{
		Type:       "campaigns",
		Generation: generation,
		FetchedAt:  fetchedAt.UTC(),
		Active:     make([]campaignJSON, 0, len(active)),
		Ended:      make([]campaignJSON, 0, len(ended)),
	}
	for i := len(active) - 1; i >= 0; i-- {
		msg.Active = append(msg.Active, toCampaignJSON(active[i], nil, domain.Evaluate(active[i], now, nil)))
	}
	for i := len(ended) - 1; i >= 0; i-- {
		msg.Ended = append(msg.Ended, toCampaignJSON(ended[i], nil, domain.Evaluate(ended[i], now, nil)))
	}
	return json.Marshal(msg)
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
