package domain

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of wei decimals in one ether.
const EtherDecimals = 18

// Amount limits. An exponent outside the range cannot describe a uint256 wei
// value and would only make the conversion expensive.
const (
	maxAmountExponent = 60
	minAmountExponent = -(EtherDecimals + 60)
	maxAmountBits     = 256
)

// ParseAmount converts decimal ether text (e.g. "0.0001") into wei. The
// conversion is exact: input with more precision than one wei is rejected
// rather than rounded. Zero, negative, non-numeric and out-of-range input
// (more than a uint256 of wei) yield ErrInvalidAmount.
func ParseAmount(text string) (*big.Int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < minAmountExponent {
		return nil, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, text)
	}
	if !d.IsPositive() {
		return nil, fmt.Errorf("%w: %q must be positive", ErrInvalidAmount, text)
	}
	wei := d.Shift(EtherDecimals)
	if !wei.IsInteger() {
		return nil, fmt.Errorf("%w: %q is more precise than one wei", ErrInvalidAmount, text)
	}
	v := wei.BigInt()
	if v.BitLen() > maxAmountBits {
		return nil, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, text)
	}
	return v, nil
}

// FormatAmount renders wei as decimal ether with trailing zeros trimmed.
// A nil amount renders as "0".
func FormatAmount(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals).String()
}

// ParseDuration parses a positive whole number of seconds.
func ParseDuration(text string) (int64, error) {
	text = strings.TrimSpace(text)
	secs, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
	}
	if secs <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidDuration, text)
	}
	return secs, nil
}
