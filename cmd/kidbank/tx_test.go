package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"

	"github.com/dworin/KidBank/internal/ledger"
)

type stubService struct {
	ledger.Service
	account       *ledger.AccountSnapshot
	getAccountErr error
}

func (s *stubService) GetAccount(_ context.Context, _ string) (*ledger.AccountSnapshot, error) {
	if s.getAccountErr != nil {
		return nil, s.getAccountErr
	}
	return s.account, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testResult() *ledger.TransactionResult {
	return &ledger.TransactionResult{
		AccountNumber: "123456",
		TransactionID: 42,
		Kind:          ledger.TxKindDeposit,
		Amount:        500,
		NewBalance:    7500,
		CreatedAt:     time.Now(),
	}
}

// A committed transaction must never surface as a failure exit because
// the follow-up display lookup broke.
func TestShowOutcomeLookupFailureStillSucceeds(t *testing.T) {
	svc := &stubService{getAccountErr: errors.New("connection reset")}

	status := showOutcome(context.Background(), discardLogger(), svc, nil, testResult(), false)

	assert.Equal(t, subcommands.ExitSuccess, status)
}

func TestShowOutcomeFormatFailureStillSucceeds(t *testing.T) {
	svc := &stubService{account: &ledger.AccountSnapshot{
		Number:   "123456",
		Currency: "XYZ",
	}}

	status := showOutcome(context.Background(), discardLogger(), svc, nil, testResult(), false)

	assert.Equal(t, subcommands.ExitSuccess, status)
}

func TestShowOutcome(t *testing.T) {
	svc := &stubService{account: &ledger.AccountSnapshot{
		Number:      "123456",
		FirstName:   "Alice",
		LastName:    "Lee",
		AccountType: ledger.AccountTypeChecking,
		Currency:    "USD",
		Balance:     7500,
	}}

	status := showOutcome(context.Background(), discardLogger(), svc, nil, testResult(), false)

	assert.Equal(t, subcommands.ExitSuccess, status)
}
