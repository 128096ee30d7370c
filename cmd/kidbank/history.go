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

type historyCmd struct {
	number string
	limit  int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show recent transactions for an account" }
func (*historyCmd) Usage() string {
	return `kidbank history -n <number> [-limit <count>]

  Shows the account's most recent transactions, newest first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number.")
	f.IntVar(&c.limit, "limit", 10, "Maximum number of transactions to show.")
}

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	transactions, err := s.service.ListTransactions(ctx, c.number, c.limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions on record.")
		return subcommands.ExitSuccess
	}

	for _, txn := range transactions {
		amount, err := currency.Format(account.Currency, txn.Amount)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

		balance, err := currency.Format(account.Currency, txn.BalanceAfter)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

		sign := "+"
		if txn.Kind == ledger.TxKindWithdrawal {
			sign = "-"
		}

		fmt.Printf("%s  %-10s  %s%-12s  balance %-12s  %s\n",
			txn.CreatedAt.Format("01/02/2006 03:04:05 PM"),
			txn.Kind, sign, amount, balance, txn.Description)
	}

	return subcommands.ExitSuccess
}
