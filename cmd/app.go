// Package cmd implements the CLI application around the gains engine.
package cmd

import (
	"fmt"
	"os"

	"cryptogains"

	"github.com/google/subcommands"
)

// Commands lists the subcommands registered by a main package.
var Commands = []subcommands.Command{
	&reportCmd{},
	&jurisdictionsCmd{},
	&fmtCmd{},
}

// decodeLedgerFile reads and validates all transactions from a JSONL ledger file.
func decodeLedgerFile(filename string) ([]cryptogains.Transaction, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", filename, err)
	}
	defer f.Close()

	txs, err := cryptogains.DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", filename, err)
	}
	return txs, nil
}
