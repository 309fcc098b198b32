package postgres

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigTextRoundTrip(t *testing.T) {
	assert.Nil(t, bigText(nil))
	assert.Nil(t, parseBig(nil))

	wei, _ := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	text := bigText(wei)
	if assert.NotNil(t, text) {
		assert.Equal(t, 0, wei.Cmp(parseBig(text)))
	}

	junk := "12.5"
	assert.Nil(t, parseBig(&junk))
}
