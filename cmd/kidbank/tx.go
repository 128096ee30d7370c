package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/dworin/KidBank/internal/currency"
	"github.com/dworin/KidBank/internal/ledger"
	"github.com/dworin/KidBank/internal/printer"
	"github.com/dworin/KidBank/internal/receipt"
)

// runTransaction is the shared body of the deposit and withdraw commands.
func runTransaction(ctx context.Context, logger *slog.Logger, kind ledger.TxKind, number, amount, note string, printReceipt bool) subcommands.ExitStatus {
	minorUnits, err := currency.ParseAmount(amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.close()

	request := ledger.TransactionRequest{
		AccountNumber: number,
		Amount:        minorUnits,
		Description:   note,
	}

	var result *ledger.TransactionResult

	if kind == ledger.TxKindDeposit {
		result, err = s.service.Deposit(ctx, request)
	} else {
		result, err = s.service.Withdraw(ctx, request)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The transaction is committed. Confirm it before any display lookup so
	// a hiccup there cannot read as a failed transaction.
	fmt.Printf("%s of %s to account %s committed (transaction %d)\n",
		result.Kind, amount, result.AccountNumber, result.TransactionID)

	return showOutcome(ctx, logger, s.service, s.spooler, result, printReceipt)
}

// showOutcome renders the post-commit balance line and optional receipt.
// The transaction is already durable, so problems here are logged and the
// command still exits successfully.
func showOutcome(ctx context.Context, logger *slog.Logger, svc ledger.Service, spooler *printer.Spooler, result *ledger.TransactionResult, printReceipt bool) subcommands.ExitStatus {
	account, err := svc.GetAccount(ctx, result.AccountNumber)
	if err != nil {
		logger.Error("account lookup after commit failed", "error", err)
		fmt.Printf("New balance (minor units): %d\n", result.NewBalance)
		return subcommands.ExitSuccess
	}

	newBalance, err := currency.Format(account.Currency, result.NewBalance)
	if err != nil {
		logger.Error("format balance failed", "error", err)
		fmt.Printf("New balance (minor units): %d\n", result.NewBalance)
		return subcommands.ExitSuccess
	}

	fmt.Printf("New balance: %s\n", newBalance)

	if printReceipt {
		content, err := receipt.Receipt(account, result, result.CreatedAt)
		if err != nil {
			logger.Error("render receipt failed", "error", err)
			return subcommands.ExitSuccess
		}

		if err := spooler.Print(ctx, content); err != nil {
			logger.Error("print receipt failed", "error", err)
		}
	}

	return subcommands.ExitSuccess
}
