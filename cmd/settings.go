package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/ewise/expensewise"
	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or switch the presentation theme" }
func (*themeCmd) Usage() string {
	return `xw theme -user <id> [dark|light]

  Without an argument, prints the current theme. With one, switches to it.
`
}
func (*themeCmd) SetFlags(*flag.FlagSet) {}

func (*themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	if f.NArg() == 0 {
		fmt.Println(l.Settings().Theme)
		return closeStore(s)
	}
	theme, err := expensewise.ParseTheme(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if err := l.SetTheme(theme); err != nil {
		return fail(err)
	}
	fmt.Printf("Theme switched to %s\n", theme)
	return closeStore(s)
}
