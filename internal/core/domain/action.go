package domain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// Action is a state-changing call the Dispatcher can submit.
type Action string

const (
	ActionCreate   Action = "create"
	ActionDonate   Action = "donate"
	ActionWithdraw Action = "withdraw"
	ActionRefund   Action = "refund"
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionDonate, ActionWithdraw, ActionRefund:
		return true
	}
	return false
}

// ActionRequest carries user input for one action. Amounts and durations
// arrive as raw text and are validated by the Dispatcher.
type ActionRequest struct {
	Action     Action
	CampaignID *big.Int

	// create
	Description string
	Goal        string
	Duration    string

	// donate
	Amount string
}

// Receipt is the confirmed outcome of one submitted call.
type Receipt struct {
	ID          uuid.UUID
	Action      Action
	CampaignID  *big.Int // nil for create
	Account     common.Address
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	ValueWei    *big.Int
	CreatedAt   time.Time
}

// String is used in log lines.
func (r Receipt) String() string {
	return fmt.Sprintf("%s tx=%s block=%d", r.Action, r.TxHash.Hex(), r.BlockNumber)
}
