package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNegativeAmount is returned when decoding an amount below zero.
var ErrNegativeAmount = errors.New("amount must not be negative")

// Millisats represents a Lightning amount in millisatoshis, the smallest unit
// used on the wire by wallet clients.
type Millisats int64

// Sats returns the amount in satoshis as an exact decimal.
// Sub-satoshi amounts are kept as fractional digits (e.g., 10500 -> 10.5).
func (m Millisats) Sats() decimal.Decimal {
	return decimal.New(int64(m), -3)
}

// String formats the amount for display, e.g. "10 sats" or "10.5 sats".
func (m Millisats) String() string {
	return m.Sats().String() + " sats"
}

// UnmarshalJSON decodes a JSON number into Millisats, rejecting negative values.
func (m *Millisats) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid millisat amount: %w", err)
	}

	if v < 0 {
		return ErrNegativeAmount
	}

	*m = Millisats(v)
	return nil
}
