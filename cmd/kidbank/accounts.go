package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dworin/KidBank/internal/currency"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts" }
func (*accountsCmd) Usage() string {
	return `kidbank accounts

  Lists every account, ordered by holder last name then first name.
`
}

func (*accountsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *accountsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.close()

	accounts, err := s.service.ListAccounts(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if len(accounts) == 0 {
		fmt.Println("No accounts found.")
		return subcommands.ExitSuccess
	}

	for _, account := range accounts {
		balance, err := currency.Format(account.Currency, account.Balance)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

		name := account.FirstName + " " + account.LastName
		fmt.Printf("%s  %-25s  %-10s  %s\n", account.Number, name, account.AccountType, balance)
	}

	return subcommands.ExitSuccess
}

type accountCmd struct {
	number string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "show one account" }
func (*accountCmd) Usage() string {
	return `kidbank account -n <number>

  Shows the current snapshot of a single account.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number.")
}

func (c *accountCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.close()

	account, err := s.service.GetAccount(ctx, c.number)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	balance, err := currency.Format(account.Currency, account.Balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account:  %s\n", account.Number)
	fmt.Printf("Holder:   %s %s\n", account.FirstName, account.LastName)
	fmt.Printf("Type:     %s\n", account.AccountType)
	fmt.Printf("Currency: %s\n", account.Currency)
	fmt.Printf("Balance:  %s\n", balance)
	fmt.Printf("Opened:   %s\n", account.CreatedAt.Format("01/02/2006 03:04:05 PM"))

	return subcommands.ExitSuccess
}
