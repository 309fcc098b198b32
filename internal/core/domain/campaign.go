package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// CampaignRecord is a snapshot of one campaign as reported by the contract.
// Monetary fields are in wei. A record is never mutated after a Reader pass
// builds it; the next pass replaces it.
type CampaignRecord struct {
	ID           *big.Int
	Owner        common.Address
	Description  string
	Goal         *big.Int
	Deadline     int64 // unix seconds
	AmountRaised *big.Int
	Withdrawn    bool
	Contributors []common.Address
}

// DeadlineTime returns the deadline as a time.Time.
func (c CampaignRecord) DeadlineTime() time.Time {
	return time.Unix(c.Deadline, 0)
}

// IsActive reports whether the funding window is still open at now.
func (c CampaignRecord) IsActive(now time.Time) bool {
	return now.Before(c.DeadlineTime())
}

// IsEnded is the complement of IsActive.
func (c CampaignRecord) IsEnded(now time.Time) bool {
	return !c.IsActive(now)
}

// GoalReached reports whether the raised amount covers the goal.
func (c CampaignRecord) GoalReached() bool {
	return amountOrZero(c.AmountRaised).Cmp(amountOrZero(c.Goal)) >= 0
}

// Partition splits records into active and ended campaigns. Every record ends
// up in exactly one of the two slices and source order is kept.
func Partition(records []CampaignRecord, now time.Time) (active, ended []CampaignRecord) {
	active = make([]CampaignRecord, 0, len(records))
	ended = make([]CampaignRecord, 0, len(records))
	for _, r := range records {
		if r.IsActive(now) {
			active = append(active, r)
		} else {
			ended = append(ended, r)
		}
	}
	return active, ended
}

// ShortAddress renders an address as 0x1234...abcd.
func ShortAddress(a common.Address) string {
	hex := a.Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}

func amountOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
