package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cryptogains"
	"cryptogains/renderer"

	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	ledgerFile   string
	jurisdiction string
	json         bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "capital gains and estimated tax for a jurisdiction" }
func (*reportCmd) Usage() string {
	return `cgt report -j <jurisdiction> [-l <ledger-file>] [-json]

  Matches sells against buy lots (FIFO), applies the jurisdiction's tax
  policy, and prints the report as markdown (or canonical JSON with -json).
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "transactions.jsonl", "Ledger file containing transactions (JSONL format)")
	f.StringVar(&c.jurisdiction, "j", "", "Jurisdiction code (US, IN, GB, CA, AU, DE, AE)")
	f.BoolVar(&c.json, "json", false, "Print the report as canonical JSON instead of markdown")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	jurisdiction, err := cryptogains.ParseJurisdiction(c.jurisdiction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (see 'cgt jurisdictions' for supported codes)\n", err)
		return subcommands.ExitUsageError
	}

	txs, err := decodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := cryptogains.ComputeTaxReport(txs, jurisdiction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing report: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := cryptogains.EncodeReport(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	fmt.Print(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
