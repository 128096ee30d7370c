package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/google/subcommands"

	"github.com/dworin/KidBank/internal/ledger"
)

type depositCmd struct {
	logger       *slog.Logger
	number       string
	amount       string
	note         string
	printReceipt bool
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `kidbank deposit -n <number> -amount <amount> [-note <text>] [-print]

  Adds the amount to the account balance and appends a deposit transaction.
  With -print, spools a receipt after the transaction commits.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number.")
	f.StringVar(&c.amount, "amount", "", "Amount to deposit, e.g. 25.00.")
	f.StringVar(&c.note, "note", "", "Optional transaction description.")
	f.BoolVar(&c.printReceipt, "print", false, "Print a receipt.")
}

func (c *depositCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runTransaction(ctx, c.logger, ledger.TxKindDeposit, c.number, c.amount, c.note, c.printReceipt)
}
