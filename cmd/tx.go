package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/ewise/expensewise"
	"github.com/ewise/expensewise/date"
	"github.com/ewise/expensewise/renderer"
	"github.com/google/subcommands"
)

// instantFlags are the date/time flags shared by the transaction commands.
type instantFlags struct {
	date string
	time string
}

func (c *instantFlags) set(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the transaction (2006-01-02).")
	f.StringVar(&c.time, "t", "", "Time of the transaction (15:04), defaults to now.")
}

func (c *instantFlags) clock() string {
	if c.time == "" {
		return date.Now().Clock.String()
	}
	return c.time
}

type expenseCmd struct {
	instantFlags
	title    string
	wallet   string
	amount   string
	category string
	budget   string
	goal     string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `xw expense -user <id> -title <title> -wallet <wallet> -amount <amount> -category <category> [-budget <budget>] [-goal <goal>]

  Appends an expense to the journal and debits the wallet. The amount is the
  positive magnitude spent. Optional links attribute the expense to a budget
  or a goal.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	c.instantFlags.set(f)
	f.StringVar(&c.title, "title", "", "Title of the expense.")
	f.StringVar(&c.wallet, "wallet", "", "Wallet to spend from.")
	f.StringVar(&c.amount, "amount", "", "Amount spent, positive.")
	f.StringVar(&c.category, "category", "", "Expense category.")
	f.StringVar(&c.budget, "budget", "", "Budget to link the expense to.")
	f.StringVar(&c.goal, "goal", "", "Goal to link the expense to.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	amount, err := expensewise.ParseMoney(c.amount)
	if err != nil {
		return fail(err)
	}
	tx, err := l.RecordExpense(c.date, c.clock(), c.title, c.wallet, amount, c.category, c.budget, c.goal)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded expense %q (%s)\n", tx.Title, tx.Amount)
	return closeStore(s)
}

type incomeCmd struct {
	instantFlags
	title    string
	wallet   string
	amount   string
	category string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income" }
func (*incomeCmd) Usage() string {
	return `xw income -user <id> -title <title> -wallet <wallet> -amount <amount> -category <category>

  Appends an income entry to the journal and credits the wallet.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	c.instantFlags.set(f)
	f.StringVar(&c.title, "title", "", "Title of the income.")
	f.StringVar(&c.wallet, "wallet", "", "Wallet to credit.")
	f.StringVar(&c.amount, "amount", "", "Amount received, positive.")
	f.StringVar(&c.category, "category", "", "Income category.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	amount, err := expensewise.ParseMoney(c.amount)
	if err != nil {
		return fail(err)
	}
	tx, err := l.RecordIncome(c.date, c.clock(), c.title, c.wallet, amount, c.category)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded income %q (%s)\n", tx.Title, tx.Amount)
	return closeStore(s)
}

type transferCmd struct {
	instantFlags
	from   string
	to     string
	amount string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money between wallets" }
func (*transferCmd) Usage() string {
	return `xw transfer -user <id> -from <wallet> -to <wallet> -amount <amount>

  Appends the matched pair of transfer legs and moves the amount between the
  two wallets' balances.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	c.instantFlags.set(f)
	f.StringVar(&c.from, "from", "", "Source wallet.")
	f.StringVar(&c.to, "to", "", "Destination wallet.")
	f.StringVar(&c.amount, "amount", "", "Amount to move, positive.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	amount, err := expensewise.ParseMoney(c.amount)
	if err != nil {
		return fail(err)
	}
	if _, _, err := l.RecordTransfer(c.date, c.clock(), c.from, c.to, amount); err != nil {
		return fail(err)
	}
	fmt.Printf("Transferred %s from %q to %q\n", amount, c.from, c.to)
	return closeStore(s)
}

type txCmd struct {
	head int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `xw tx -user <id> [-head <n>]

  Lists the journal newest first, optionally limited to the first N entries.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	txs := l.Transactions()
	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}
	printMarkdown(renderer.TransactionsMarkdown("Transactions", txs))
	return closeStore(s)
}

type findCmd struct{}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "fuzzy-search transactions by title" }
func (*findCmd) Usage() string {
	return `xw find -user <id> <query>

  Lists the transactions whose title fuzzily matches the query, newest first.
`
}
func (*findCmd) SetFlags(*flag.FlagSet) {}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, l, err := selectUser()
	if err != nil {
		return fail(err)
	}
	query := ""
	if f.NArg() > 0 {
		query = f.Arg(0)
	}
	printMarkdown(renderer.TransactionsMarkdown(fmt.Sprintf("Transactions matching %q", query), l.FindTransactions(query)))
	return closeStore(s)
}
