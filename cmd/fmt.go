package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"cryptogains"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	ledgerFile string
	write      bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `cgt fmt [-l <ledger-file>] [-w]

  Validates the ledger file and writes it back in canonical JSONL form.
  By default the canonical form is printed to stdout; -w rewrites the file
  in place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "transactions.jsonl", "Ledger file to format (JSONL format)")
	f.BoolVar(&c.write, "w", false, "Rewrite the ledger file in place instead of printing")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := decodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := cryptogains.EncodeTransactions(&buf, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.write {
		fmt.Print(buf.String())
		return subcommands.ExitSuccess
	}

	if err := os.WriteFile(c.ledgerFile, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", c.ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted ledger %q.\n", c.ledgerFile)
	return subcommands.ExitSuccess
}
