package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const deadline int64 = 1_700_000_000

func record(goal, raised int64, withdrawn bool) CampaignRecord {
	return CampaignRecord{
		ID:           big.NewInt(1),
		Goal:         big.NewInt(goal),
		AmountRaised: big.NewInt(raised),
		Deadline:     deadline,
		Withdrawn:    withdrawn,
	}
}

func at(offset int64) time.Time {
	return time.Unix(deadline+offset, 0)
}

// TestWithdrawAfterDeadlineWhenFunded covers a funded campaign one second past its deadline.
func TestWithdrawAfterDeadlineWhenFunded(t *testing.T) {
	r := record(10, 10, false)
	assert.True(t, CanWithdraw(r, at(1)))
	assert.False(t, CanDonate(r, at(1)))
}

func TestDonateBeforeDeadline(t *testing.T) {
	r := record(10, 10, false)
	assert.False(t, CanWithdraw(r, at(-1)))
	assert.True(t, CanDonate(r, at(-1)))
}

func TestWithdrawBlockedWhenAlreadyWithdrawn(t *testing.T) {
	assert.False(t, CanWithdraw(record(10, 20, true), at(1)))
}

func TestWithdrawBlockedBelowGoal(t *testing.T) {
	assert.False(t, CanWithdraw(record(10, 9, false), at(1)))
}

func TestRefund(t *testing.T) {
	r := record(10, 5, false)
	assert.True(t, CanRefund(r, at(1), big.NewInt(3)))
	assert.False(t, CanRefund(r, at(1), big.NewInt(0)))
	assert.False(t, CanRefund(r, at(1), nil))
	assert.False(t, CanRefund(r, at(-1), big.NewInt(3)), "campaign still running")
	assert.False(t, CanRefund(record(10, 10, false), at(1), big.NewInt(3)), "goal met")
}

// TestDeadlineInstant pins the gap where neither donate nor withdraw applies.
func TestDeadlineInstant(t *testing.T) {
	r := record(10, 10, false)
	now := at(0)
	assert.False(t, CanDonate(r, now))
	assert.False(t, CanWithdraw(r, now))
	assert.False(t, CanRefund(record(10, 5, false), now, big.NewInt(1)))
}

func TestDonateAndWithdrawNeverBothTrue(t *testing.T) {
	records := []CampaignRecord{
		record(10, 10, false),
		record(10, 0, false),
		record(10, 50, true),
		record(0, 0, false),
	}
	for _, r := range records {
		for offset := int64(-3); offset <= 3; offset++ {
			now := at(offset)
			assert.False(t, CanDonate(r, now) && CanWithdraw(r, now), "offset %d", offset)
			assert.False(t, CanRefund(r, now, big.NewInt(0)), "offset %d", offset)
		}
	}
}

func TestEvaluate(t *testing.T) {
	got := Evaluate(record(10, 5, false), at(2), big.NewInt(1))
	assert.Equal(t, Eligibility{Donate: false, Withdraw: false, Refund: true}, got)

	// sub-second precision: half a second past the deadline already counts
	got = Evaluate(record(10, 10, false), at(0).Add(500*time.Millisecond), nil)
	assert.Equal(t, Eligibility{Withdraw: true}, got)
}
