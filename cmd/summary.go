package cmd

import (
	"context"
	"flag"

	"github.com/ewise/expensewise/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the spending summary" }
func (*summaryCmd) Usage() string {
	return `xw summary -user <id>

  Displays total income, total expenses, net and the expense breakdown by
  category. Transfers between wallets are excluded.
`
}
func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(l.Summarize()))
	return closeStore(s)
}
