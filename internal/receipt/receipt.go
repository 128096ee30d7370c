// Package receipt renders ledger read results as 80-column text blocks for
// the print spooler. It is pure: nothing here touches ledger state.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/dworin/KidBank/internal/currency"
	"github.com/dworin/KidBank/internal/ledger"
)

const width = 80

const timeLayout = "01/02/2006 03:04:05 PM"

func center(text string) string {
	if len(text) >= width {
		return text
	}
	pad := (width - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}

func line(char string) string {
	return strings.Repeat(char, width)
}

// Receipt renders a transaction receipt for a completed deposit/withdrawal.
func Receipt(account *ledger.AccountSnapshot, result *ledger.TransactionResult, now time.Time) (string, error) {
	amount, err := currency.Format(account.Currency, result.Amount)

	if err != nil {
		return "", err
	}

	newBalance, err := currency.Format(account.Currency, result.NewBalance)

	if err != nil {
		return "", err
	}

	lines := []string{
		"",
		line("*"),
		center("KIDBANK TERMINAL SYSTEM"),
		center("TRANSACTION RECEIPT"),
		line("*"),
		"",
		line("-"),
		fmt.Sprintf("  DATE/TIME: %s", now.Format(timeLayout)),
		fmt.Sprintf("  TRANSACTION ID: %d", result.TransactionID),
		line("-"),
		"",
		fmt.Sprintf("  ACCOUNT HOLDER: %s %s", account.FirstName, account.LastName),
		fmt.Sprintf("  ACCOUNT NUMBER: %s", account.Number),
		fmt.Sprintf("  ACCOUNT TYPE: %s", strings.ToUpper(string(account.AccountType))),
		"",
		line("-"),
		fmt.Sprintf("  TRANSACTION TYPE: %s", strings.ToUpper(string(result.Kind))),
		fmt.Sprintf("  AMOUNT: %s", amount),
		"",
		fmt.Sprintf("  NEW BALANCE: %s", newBalance),
		line("-"),
		"",
		center("Thank you for banking with KIDBANK"),
		line("*"),
		"",
		"",
	}

	return strings.Join(lines, "\n"), nil
}

// Statement renders the tabular recent-transactions statement.
func Statement(account *ledger.AccountSnapshot, transactions []ledger.TransactionSnapshot, now time.Time) (string, error) {
	cur, err := currency.Resolve(account.Currency)

	if err != nil {
		return "", err
	}

	balance, err := currency.Format(account.Currency, account.Balance)

	if err != nil {
		return "", err
	}

	lines := []string{
		"",
		line("*"),
		center("KIDBANK TERMINAL SYSTEM"),
		center("ACCOUNT STATEMENT"),
		line("*"),
		"",
		fmt.Sprintf("  STATEMENT DATE: %s", now.Format(timeLayout)),
		"",
		line("-"),
		fmt.Sprintf("  ACCOUNT HOLDER: %s %s", account.FirstName, account.LastName),
		fmt.Sprintf("  ACCOUNT NUMBER: %s", account.Number),
		fmt.Sprintf("  ACCOUNT TYPE: %s", strings.ToUpper(string(account.AccountType))),
		fmt.Sprintf("  CURRENCY: %s", cur.Name),
		"",
		fmt.Sprintf("  CURRENT BALANCE: %s", balance),
		line("-"),
		"",
		center("RECENT TRANSACTIONS"),
		"",
	}

	if len(transactions) == 0 {
		lines = append(lines, center("No transactions on record"))
	} else {
		lines = append(lines,
			"  DATE/TIME           TYPE          AMOUNT              BALANCE",
			line("-"),
		)

		for _, txn := range transactions {
			row, err := statementRow(account.Currency, txn)

			if err != nil {
				return "", err
			}

			lines = append(lines, row)
		}
	}

	lines = append(lines,
		"",
		line("*"),
		center("Thank you for banking with KIDBANK"),
		line("*"),
		"",
		"",
	)

	return strings.Join(lines, "\n"), nil
}

// DetailedStatement renders one block per transaction, including notes.
func DetailedStatement(account *ledger.AccountSnapshot, transactions []ledger.TransactionSnapshot, now time.Time) (string, error) {
	cur, err := currency.Resolve(account.Currency)

	if err != nil {
		return "", err
	}

	balance, err := currency.Format(account.Currency, account.Balance)

	if err != nil {
		return "", err
	}

	lines := []string{
		"",
		line("*"),
		center("KIDBANK TERMINAL SYSTEM"),
		center("DETAILED ACCOUNT STATEMENT"),
		line("*"),
		"",
		fmt.Sprintf("  STATEMENT DATE: %s", now.Format(timeLayout)),
		"",
		line("-"),
		fmt.Sprintf("  ACCOUNT HOLDER: %s %s", account.FirstName, account.LastName),
		fmt.Sprintf("  ACCOUNT NUMBER: %s", account.Number),
		fmt.Sprintf("  ACCOUNT TYPE: %s", strings.ToUpper(string(account.AccountType))),
		fmt.Sprintf("  CURRENCY: %s", cur.Name),
		"",
		fmt.Sprintf("  CURRENT BALANCE: %s", balance),
		line("-"),
		"",
		center("TRANSACTION DETAILS"),
		"",
	}

	if len(transactions) == 0 {
		lines = append(lines, center("No transactions on record"))
	} else {
		for i, txn := range transactions {
			amount, err := currency.Format(account.Currency, txn.Amount)

			if err != nil {
				return "", err
			}

			after, err := currency.Format(account.Currency, txn.BalanceAfter)

			if err != nil {
				return "", err
			}

			lines = append(lines,
				line("-"),
				fmt.Sprintf("  TRANSACTION #%d", i+1),
				fmt.Sprintf("  Date/Time: %s", txn.CreatedAt.Format(timeLayout)),
				fmt.Sprintf("  Type: %s", strings.ToUpper(string(txn.Kind))),
				fmt.Sprintf("  Amount: %s%s", sign(txn.Kind), amount),
				fmt.Sprintf("  Balance After: %s", after),
			)

			if txn.Description != "" {
				lines = append(lines, fmt.Sprintf("  Notes: %s", txn.Description))
			}

			lines = append(lines, "")
		}
	}

	lines = append(lines,
		line("*"),
		center("Thank you for banking with KIDBANK"),
		line("*"),
		"",
		"",
	)

	return strings.Join(lines, "\n"), nil
}

func statementRow(currencyCode string, txn ledger.TransactionSnapshot) (string, error) {
	amount, err := currency.Format(currencyCode, txn.Amount)

	if err != nil {
		return "", err
	}

	balance, err := currency.Format(currencyCode, txn.BalanceAfter)

	if err != nil {
		return "", err
	}

	kind := strings.ToUpper(string(txn.Kind))
	if len(kind) > 10 {
		kind = kind[:10]
	}

	return fmt.Sprintf("  %-20s %-10s %s%15s  %15s",
		txn.CreatedAt.Format(timeLayout), kind, sign(txn.Kind), amount, balance), nil
}

func sign(kind ledger.TxKind) string {
	if kind == ledger.TxKindDeposit {
		return "+"
	}
	return "-"
}
