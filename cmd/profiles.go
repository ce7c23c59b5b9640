package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/ewise/expensewise/renderer"
	"github.com/google/subcommands"
)

type profilesCmd struct{}

func (*profilesCmd) Name() string     { return "profiles" }
func (*profilesCmd) Synopsis() string { return "list the user profiles" }
func (*profilesCmd) Usage() string {
	return `xw profiles

  Lists every user profile in the data directory.
`
}
func (*profilesCmd) SetFlags(*flag.FlagSet) {}

func (*profilesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ProfilesMarkdown(s.Profiles().Profiles()))
	return subcommands.ExitSuccess
}

type addProfileCmd struct {
	name string
}

func (*addProfileCmd) Name() string     { return "add-profile" }
func (*addProfileCmd) Synopsis() string { return "create a new user profile" }
func (*addProfileCmd) Usage() string {
	return `xw add-profile -name <name>

  Creates a new user profile with a random icon color.
`
}

func (c *addProfileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the new profile.")
}

func (c *addProfileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := s.Profiles().Add(c.name)
	if err != nil {
		return fail(err)
	}
	if err := s.SaveProfiles(); err != nil {
		return fail(err)
	}
	fmt.Printf("Created profile %q with id %s\n", p.Name, p.ID)
	return subcommands.ExitSuccess
}

type deleteProfileCmd struct{}

func (*deleteProfileCmd) Name() string     { return "delete-profile" }
func (*deleteProfileCmd) Synopsis() string { return "delete a user profile and all its data" }
func (*deleteProfileCmd) Usage() string {
	return `xw delete-profile -user <id>

  Deletes the profile and every data file of that user. This cannot be undone.
`
}
func (*deleteProfileCmd) SetFlags(*flag.FlagSet) {}

func (*deleteProfileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := selectUser()
	if err != nil {
		return fail(err)
	}
	if err := s.DeleteUserProfile(); err != nil {
		return fail(err)
	}
	fmt.Println("Profile and all associated data deleted.")
	return subcommands.ExitSuccess
}
