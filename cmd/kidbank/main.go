package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"
	"strconv"

	"github.com/google/subcommands"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// convert all int64 to string, so it does not break some log visualization tools built with JavaScript
			if a.Value.Kind() == slog.KindInt64 {
				return slog.String(a.Key, strconv.FormatInt(a.Value.Int64(), 10))
			}
			return a
		},
	})).With("app", "kidbank")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	commander.Register(&createCmd{}, "accounts")
	commander.Register(&accountsCmd{}, "accounts")
	commander.Register(&accountCmd{}, "accounts")
	commander.Register(&depositCmd{logger: logger}, "transactions")
	commander.Register(&withdrawCmd{logger: logger}, "transactions")
	commander.Register(&historyCmd{}, "transactions")
	commander.Register(&statementCmd{logger: logger}, "statements")
	commander.Register(&currenciesCmd{}, "currencies")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
