package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dworin/KidBank/internal/currency"
	"github.com/dworin/KidBank/internal/ledger"
)

type createCmd struct {
	first    string
	last     string
	acctType string
	curr     string
	deposit  string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new account" }
func (*createCmd) Usage() string {
	return `kidbank create -first <name> -last <name> [-type checking|savings] [-currency USD|BB] [-deposit <amount>]

  Creates an account and assigns it a fresh 6-digit account number. An
  initial deposit, when given, is recorded as the account's first
  transaction.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.first, "first", "", "Account holder's first name.")
	f.StringVar(&c.last, "last", "", "Account holder's last name.")
	f.StringVar(&c.acctType, "type", "checking", "Account type (checking or savings).")
	f.StringVar(&c.curr, "currency", "USD", "Currency code.")
	f.StringVar(&c.deposit, "deposit", "0", "Initial deposit amount, e.g. 25.00.")
}

func (c *createCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialDeposit, err := currency.ParseAmount(c.deposit)
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

	account, err := s.service.CreateAccount(ctx, ledger.CreateAccountRequest{
		FirstName:      c.first,
		LastName:       c.last,
		AccountType:    ledger.AccountType(c.acctType),
		Currency:       c.curr,
		InitialDeposit: initialDeposit,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	balance, err := currency.Format(account.Currency, account.Balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created account %s for %s %s (%s, %s), balance %s\n",
		account.Number, account.FirstName, account.LastName,
		account.AccountType, account.Currency, balance)

	return subcommands.ExitSuccess
}
