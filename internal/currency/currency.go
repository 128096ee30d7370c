// Package currency is the fixed registry of currencies the ledger can hold.
// It is pure and stateless: formatting and parsing only, no ledger state.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// Currency describes one entry of the registry. SymbolPrefix is part of the
// currency's definition: USD renders "$1,000.00", everything else renders
// "1,000.00 <symbol>".
type Currency struct {
	Code         string
	Name         string
	Symbol       string
	SymbolPrefix bool
}

// registry order is the display order.
var registry = []Currency{
	{Code: "USD", Name: "US Dollars", Symbol: "$", SymbolPrefix: true},
	{Code: "BB", Name: "BrainBucks", Symbol: "BB", SymbolPrefix: false},
}

func init() {
	// Register every entry with go-money so Format can use its templating.
	// The template carries the placement flag ("$1" prefix, "1 $" suffix).
	for _, c := range registry {
		template := "1 $"
		if c.SymbolPrefix {
			template = "$1"
		}
		money.AddCurrency(c.Code, c.Symbol, template, ".", ",", 2)
	}
}

// Resolve returns the registry entry for code.
func Resolve(code string) (Currency, error) {
	for _, c := range registry {
		if c.Code == code {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
}

// IsValid reports whether code resolves in the registry.
func IsValid(code string) bool {
	_, err := Resolve(code)
	return err == nil
}

// List returns all registry entries in declaration order.
func List() []Currency {
	out := make([]Currency, len(registry))
	copy(out, registry)
	return out
}

// Format renders an amount of minor units (cents) in the given currency,
// with two decimal places and thousands grouping.
func Format(code string, minorUnits int64) (string, error) {
	if _, err := Resolve(code); err != nil {
		return "", err
	}
	return money.New(minorUnits, code).Display(), nil
}

// ParseAmount converts a user-entered decimal string such as "1,234.56" into
// minor units. It rejects negative values and sub-cent precision.
func ParseAmount(s string) (int64, error) {
	normalized, err := normalizeGrouping(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative", s)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	return cents.IntPart(), nil
}

var errMisplacedSeparator = errors.New("misplaced thousands separator")

// normalizeGrouping strips thousands separators after checking they sit on
// 3-digit boundaries, so a typo like "1,2,3.45" is rejected instead of
// silently collapsing to 123.45.
func normalizeGrouping(s string) (string, error) {
	if !strings.Contains(s, ",") {
		return s, nil
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	if strings.Contains(frac, ",") {
		return "", errMisplacedSeparator
	}

	groups := strings.Split(intPart, ",")
	for i, g := range groups {
		if i == 0 {
			if len(g) == 0 || len(g) > 3 {
				return "", errMisplacedSeparator
			}
			continue
		}
		if len(g) != 3 {
			return "", errMisplacedSeparator
		}
	}

	return strings.Join(groups, "") + frac, nil
}
