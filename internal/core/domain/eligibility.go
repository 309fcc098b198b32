package domain

import (
	"math/big"
	"time"
)

// Eligibility lists which actions the UI may offer for a campaign.
type Eligibility struct {
	Donate   bool `json:"donate"`
	Withdraw bool `json:"withdraw"`
	Refund   bool `json:"refund"`
}

// CanDonate reports whether the funding window is open. Whether the caller
// has typed a positive amount is a separate check made at submit time.
func CanDonate(c CampaignRecord, now time.Time) bool {
	return now.Before(c.DeadlineTime())
}

// CanWithdraw reports whether the owner may collect the funds: the goal was
// met, nothing was withdrawn yet and the deadline has strictly passed.
// At exactly the deadline instant neither CanDonate nor CanWithdraw holds;
// this mirrors the contract's boundary.
func CanWithdraw(c CampaignRecord, now time.Time) bool {
	return !c.Withdrawn && c.GoalReached() && now.After(c.DeadlineTime())
}

// CanRefund reports whether a contributor may reclaim funds from a campaign
// that ended short of its goal. contribution is the caller's own prior
// contribution to this campaign; nil counts as zero.
func CanRefund(c CampaignRecord, now time.Time, contribution *big.Int) bool {
	if contribution == nil || contribution.Sign() <= 0 {
		return false
	}
	return now.After(c.DeadlineTime()) && !c.GoalReached()
}

// Evaluate runs all three predicates.
func Evaluate(c CampaignRecord, now time.Time, contribution *big.Int) Eligibility {
	return Eligibility{
		Donate:   CanDonate(c, now),
		Withdraw: CanWithdraw(c, now),
		Refund:   CanRefund(c, now, contribution),
	}
}
