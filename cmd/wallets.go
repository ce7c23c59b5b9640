package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/ewise/expensewise"
	"github.com/ewise/expensewise/renderer"
	"github.com/google/subcommands"
)

// findWallet resolves a wallet name to the stored entity.
func findWallet(l *expensewise.Ledger, name string) (expensewise.Wallet, error) {
	for _, w := range l.Wallets() {
		if w.Name == name {
			return w, nil
		}
	}
	return expensewise.Wallet{}, fmt.Errorf("wallet %q: %w", name, expensewise.ErrNotFound)
}

type walletsCmd struct{}

func (*walletsCmd) Name() string     { return "wallets" }
func (*walletsCmd) Synopsis() string { return "list wallets with their balances" }
func (*walletsCmd) Usage() string {
	return `xw wallets -user <id>

  Lists the user's wallets and cached balances.
`
}
func (*walletsCmd) SetFlags(*flag.FlagSet) {}

func (*walletsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.WalletsMarkdown(l.Wallets()))
	return closeStore(s)
}

type addWalletCmd struct {
	name string
}

func (*addWalletCmd) Name() string     { return "add-wallet" }
func (*addWalletCmd) Synopsis() string { return "create a new wallet" }
func (*addWalletCmd) Usage() string {
	return `xw add-wallet -user <id> -name <name>

  Creates a wallet with a zero balance. Money enters through transactions.
`
}

func (c *addWalletCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the new wallet.")
}

func (c *addWalletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	w, err := l.CreateWallet(c.name)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added wallet %q\n", w.Name)
	return closeStore(s)
}

type editWalletCmd struct {
	name    string
	rename  string
	balance string
}

func (*editWalletCmd) Name() string     { return "edit-wallet" }
func (*editWalletCmd) Synopsis() string { return "rename a wallet or correct its balance" }
func (*editWalletCmd) Usage() string {
	return `xw edit-wallet -user <id> -name <name> [-rename <new name>] [-balance <amount>]

  Renames the wallet and/or corrects its cached balance.
`
}

func (c *editWalletCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Current name of the wallet.")
	f.StringVar(&c.rename, "rename", "", "New name. Keeps the current name when omitted.")
	f.StringVar(&c.balance, "balance", "", "Corrected balance. Keeps the current balance when omitted.")
}

func (c *editWalletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	w, err := findWallet(l, c.name)
	if err != nil {
		return fail(err)
	}
	name := w.Name
	if c.rename != "" {
		name = c.rename
	}
	balance := w.Balance
	if c.balance != "" {
		balance, err = expensewise.ParseMoney(c.balance)
		if err != nil {
			return fail(err)
		}
	}
	if _, err := l.EditWallet(w.ID, name, balance); err != nil {
		return fail(err)
	}
	fmt.Printf("Edited wallet %q\n", name)
	return closeStore(s)
}

type deleteWalletCmd struct {
	name string
}

func (*deleteWalletCmd) Name() string     { return "delete-wallet" }
func (*deleteWalletCmd) Synopsis() string { return "delete a wallet" }
func (*deleteWalletCmd) Usage() string {
	return `xw delete-wallet -user <id> -name <name>

  Deletes the wallet. A wallet used by any transaction cannot be deleted.
`
}

func (c *deleteWalletCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the wallet to delete.")
}

func (c *deleteWalletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	w, err := findWallet(l, c.name)
	if err != nil {
		return fail(err)
	}
	if err := l.DeleteWallet(w.ID); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted wallet %q\n", w.Name)
	return closeStore(s)
}
