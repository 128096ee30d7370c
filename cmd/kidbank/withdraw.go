package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/google/subcommands"

	"github.com/dworin/KidBank/internal/ledger"
)

type withdrawCmd struct {
	logger       *slog.Logger
	number       string
	amount       string
	note         string
	printReceipt bool
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `kidbank withdraw -n <number> -amount <amount> [-note <text>] [-print]

  Subtracts the amount from the account balance and appends a withdrawal
  transaction. Fails if the balance would go negative. With -print, spools
  a receipt after the transaction commits.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number.")
	f.StringVar(&c.amount, "amount", "", "Amount to withdraw, e.g. 10.00.")
	f.StringVar(&c.note, "note", "", "Optional transaction description.")
	f.BoolVar(&c.printReceipt, "print", false, "Print a receipt.")
}

func (c *withdrawCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runTransaction(ctx, c.logger, ledger.TxKindWithdrawal, c.number, c.amount, c.note, c.printReceipt)
}
