package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "reset all financial data of a user" }
func (*resetCmd) Usage() string {
	return `xw reset -user <id>

  Clears every wallet, budget, goal, transaction and activity entry of the
  user, re-seeds the default Cash wallet and saves immediately. The profile
  itself stays. This cannot be undone.
`
}
func (*resetCmd) SetFlags(*flag.FlagSet) {}

func (*resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := selectUser()
	if err != nil {
		return fail(err)
	}
	if err := s.ResetUserData(); err != nil {
		return fail(err)
	}
	fmt.Println("All financial data for this user has been reset.")
	return subcommands.ExitSuccess
}
