package cmd

import (
	"context"
	"flag"
	"fmt"

	"cryptogains"

	"github.com/google/subcommands"
)

type jurisdictionsCmd struct{}

func (*jurisdictionsCmd) Name() string     { return "jurisdictions" }
func (*jurisdictionsCmd) Synopsis() string { return "list supported jurisdictions and their rules" }
func (*jurisdictionsCmd) Usage() string {
	return `cgt jurisdictions

  Lists the supported jurisdiction codes with a summary of each taxable-gain rule.
`
}

func (*jurisdictionsCmd) SetFlags(*flag.FlagSet) {}

func (*jurisdictionsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, code := range cryptogains.Jurisdictions() {
		fmt.Printf("%s  %s\n", code, code.Describe())
	}
	return subcommands.ExitSuccess
}
