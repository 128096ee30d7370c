package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/dworin/KidBank/internal/currency"
)

type currenciesCmd struct{}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list supported currencies" }
func (*currenciesCmd) Usage() string {
	return `kidbank currencies

  Lists the currencies accounts can be opened in.
`
}

func (*currenciesCmd) SetFlags(_ *flag.FlagSet) {}

func (*currenciesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return listCurrencies(os.Stdout, os.Stderr, currency.Format)
}

func listCurrencies(out, errOut io.Writer, format func(code string, minorUnits int64) (string, error)) subcommands.ExitStatus {
	for _, c := range currency.List() {
		sample, err := format(c.Code, 123456)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		fmt.Fprintf(out, "%-4s  %-15s  e.g. %s\n", c.Code, c.Name, sample)
	}

	return subcommands.ExitSuccess
}
