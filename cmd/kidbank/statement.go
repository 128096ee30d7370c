package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/dworin/KidBank/internal/receipt"
)

type statementCmd struct {
	logger   *slog.Logger
	number   string
	limit    int
	detailed bool
	spool    bool
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "render an account statement" }
func (*statementCmd) Usage() string {
	return `kidbank statement -n <number> [-limit <count>] [-detailed] [-print]

  Renders an account statement of the most recent transactions. -detailed
  shows one block per transaction with notes. -print spools the statement
  instead of writing it to stdout.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number.")
	f.IntVar(&c.limit, "limit", 10, "Maximum number of transactions to include.")
	f.BoolVar(&c.detailed, "detailed", false, "Render the detailed statement.")
	f.BoolVar(&c.spool, "print", false, "Send the statement to the printer.")
}

func (c *statementCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	now := time.Now()

	var content string
	if c.detailed {
		content, err = receipt.DetailedStatement(account, transactions, now)
	} else {
		content, err = receipt.Statement(account, transactions, now)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !c.spool {
		fmt.Print(content)
		return subcommands.ExitSuccess
	}

	if err := s.spooler.Print(ctx, content); err != nil {
		c.logger.Error("print statement failed", "error", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
