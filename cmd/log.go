package cmd

import (
	"context"
	"flag"

	"github.com/ewise/expensewise/renderer"
	"github.com/google/subcommands"
)

type logCmd struct{}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the activity log" }
func (*logCmd) Usage() string {
	return `xw log -user <id>

  Displays the recorded user actions, newest first.
`
}
func (*logCmd) SetFlags(*flag.FlagSet) {}

func (*logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ActivityMarkdown(l.Activity()))
	return closeStore(s)
}
