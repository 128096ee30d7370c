package currency

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	usd, err := Resolve("USD")
	require.NoError(t, err)
	assert.Equal(t, "US Dollars", usd.Name)
	assert.True(t, usd.SymbolPrefix)

	bb, err := Resolve("BB")
	require.NoError(t, err)
	assert.Equal(t, "BrainBucks", bb.Name)
	assert.False(t, bb.SymbolPrefix)

	_, err = Resolve("EUR")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	// Codes are case sensitive.
	_, err = Resolve("usd")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("USD"))
	assert.True(t, IsValid("BB"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("XYZ"))
}

func TestList(t *testing.T) {
	currencies := List()
	require.Len(t, currencies, 2)
	assert.Equal(t, "USD", currencies[0].Code)
	assert.Equal(t, "BB", currencies[1].Code)

	// Mutating the returned slice must not affect the registry.
	currencies[0].Name = "mutated"
	again := List()
	assert.Equal(t, "US Dollars", again[0].Name)
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name       string
		code       string
		minorUnits int64
		want       string
	}{
		{name: "usd zero", code: "USD", minorUnits: 0, want: "$0.00"},
		{name: "usd cents only", code: "USD", minorUnits: 5, want: "$0.05"},
		{name: "usd whole dollars", code: "USD", minorUnits: 1500, want: "$15.00"},
		{name: "usd thousands grouping", code: "USD", minorUnits: 123456789, want: "$1,234,567.89"},
		{name: "bb suffix symbol", code: "BB", minorUnits: 1500, want: "15.00 BB"},
		{name: "bb thousands grouping", code: "BB", minorUnits: 123456789, want: "1,234,567.89 BB"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := Format(testCase.code, testCase.minorUnits)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}

	_, err := Format("XYZ", 100)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "whole number", input: "15", want: 1500},
		{name: "two decimals", input: "15.25", want: 1525},
		{name: "one decimal", input: "0.5", want: 50},
		{name: "zero", input: "0", want: 0},
		{name: "grouped thousands", input: "1,234.56", want: 123456},
		{name: "grouped millions", input: "1,234,567.89", want: 123456789},
		{name: "misgrouped commas", input: "1,2,3.45", wantErr: true},
		{name: "short trailing group", input: "12,34", wantErr: true},
		{name: "oversized leading group", input: "1234,567", wantErr: true},
		{name: "leading comma", input: ",123", wantErr: true},
		{name: "comma in fraction", input: "1.2,3", wantErr: true},
		{name: "sub-cent precision", input: "1.005", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "not a number", input: "ten", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := ParseAmount(testCase.input)
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}
