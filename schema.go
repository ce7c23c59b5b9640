package expensewise

// Schema describes the tabular layout of one persisted collection: its
// column names in order, which columns hold numeric values, and which column
// is the row identifier.
type Schema struct {
	// Name of the collection, used in file names and log messages.
	Name string
	// Fields lists the column names in persisted order. The ID column is
	// always first.
	Fields []string
	// Numeric lists the columns normalized to decimal on read. A value that
	// fails to parse is replaced with "0".
	Numeric []string
	// ID is the name of the identifier column.
	ID string
}

// HasField reports whether the schema contains the given column.
func (s Schema) HasField(name string) bool {
	for _, f := range s.Fields {
		if f == name {
			return true
		}
	}
	return false
}

func (s Schema) isNumeric(name string) bool {
	for _, f := range s.Numeric {
		if f == name {
			return true
		}
	}
	return false
}

var walletSchema = Schema{
	Name:    "wallets",
	Fields:  []string{"id", "name", "balance"},
	Numeric: []string{"balance"},
	ID:      "id",
}

var budgetSchema = Schema{
	Name:    "budgets",
	Fields:  []string{"id", "name", "allocated", "cycle"},
	Numeric: []string{"allocated"},
	ID:      "id",
}

var goalSchema = Schema{
	Name:    "goals",
	Fields:  []string{"id", "name", "target", "saved", "due_date"},
	Numeric: []string{"target", "saved"},
	ID:      "id",
}

// Transactions are an ordered journal, not an id-keyed collection, so the
// schema has no ID column.
var transactionSchema = Schema{
	Name: "transactions",
	Fields: []string{
		"date", "time", "timestamp", "title", "wallet", "amount", "category",
		"type", "from_account", "to_account", "linked_budget", "linked_goal",
	},
	Numeric: []string{"amount"},
}

var activitySchema = Schema{
	Name:   "activity_log",
	Fields: []string{"timestamp", "action"},
}

var profileSchema = Schema{
	Name:   "user_profiles",
	Fields: []string{"user_id", "name", "icon_color"},
	ID:     "user_id",
}
