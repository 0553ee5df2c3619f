package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value as a client sent it. It accepts a JSON number or
// a numeric string and keeps any other literal verbatim, so a malformed value
// reaches validation as an amount error instead of failing the whole decode.
type Amount string

// AmountOf formats d as an Amount.
func AmountOf(d decimal.Decimal) Amount {
	return Amount(d.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	*a = Amount(b)
	return nil
}

// Decimal parses the amount. An empty amount is zero.
func (a Amount) Decimal() (decimal.Decimal, error) {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal number", apperrors.ErrInvalidAmount, string(a))
	}
	return d, nil
}

// Valid reports whether the amount parses as a decimal number.
func (a Amount) Valid() bool {
	_, err := a.Decimal()
	return err == nil
}
