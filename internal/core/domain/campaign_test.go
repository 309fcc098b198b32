package domain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	var records []CampaignRecord
	for i, off := range []int64{-10, 5, 0, -1, 100, 1} {
		records = append(records, CampaignRecord{ID: big.NewInt(int64(i)), Deadline: deadline + off})
	}
	now := at(0)

	active, ended := Partition(records, now)
	assert.Len(t, active, 3)
	assert.Len(t, ended, 3)

	seen := map[int64]int{}
	for _, r := range active {
		assert.True(t, now.Unix() < r.Deadline)
		seen[r.ID.Int64()]++
	}
	for _, r := range ended {
		assert.False(t, now.Unix() < r.Deadline)
		seen[r.ID.Int64()]++
	}
	assert.Len(t, seen, len(records))
	for id, n := range seen {
		assert.Equal(t, 1, n, "campaign %d", id)
	}

	// source order is kept inside each half
	assert.Equal(t, int64(1), active[0].ID.Int64())
	assert.Equal(t, int64(4), active[1].ID.Int64())
	assert.Equal(t, int64(5), active[2].ID.Int64())
}

func TestShortAddress(t *testing.T) {
	a := common.HexToAddress("0x55bDaFa6b9E7762684305615828A49589f4D7Ee5")
	assert.Equal(t, "0x55bD...7Ee5", ShortAddress(a))
}
