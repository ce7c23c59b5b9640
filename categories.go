package expensewise

import "sort"

// CategoryKind separates spending categories from income categories.
type CategoryKind string

const (
	KindExpense CategoryKind = "expense"
	KindIncome  CategoryKind = "income"
)

// transferCategory is the category stamped on both legs of a transfer. It is
// not part of the catalog and never offered for regular transactions.
const transferCategory = "Transfer"

// Category is one entry of the built-in catalog.
type Category struct {
	ID   string
	Name string
	Icon string
	Kind CategoryKind
}

// BaseCategories returns a fresh copy of the built-in catalog. The catalog is
// fixed: every load replaces whatever a previous version may have stored.
func BaseCategories() []Category {
	return []Category{
		{ID: "rent", Name: "Rent/Mortgage", Icon: "🏠", Kind: KindExpense},
		{ID: "groceries", Name: "Groceries", Icon: "🛒", Kind: KindExpense},
		{ID: "utilities", Name: "Utilities", Icon: "💡", Kind: KindExpense},
		{ID: "transport", Name: "Transportation", Icon: "🚗", Kind: KindExpense},
		{ID: "dining", Name: "Dining", Icon: "🍽️", Kind: KindExpense},
		{ID: "personal_care", Name: "Personal Care", Icon: "💇", Kind: KindExpense},
		{ID: "healthcare", Name: "Healthcare", Icon: "⚕", Kind: KindExpense},
		{ID: "shopping", Name: "Shopping", Icon: "🛍️", Kind: KindExpense},
		{ID: "entertainment", Name: "Entertainment", Icon: "🎬", Kind: KindExpense},
		{ID: "internet", Name: "Internet", Icon: "🌐", Kind: KindExpense},
		{ID: "subscriptions", Name: "Subscriptions", Icon: "📺", Kind: KindExpense},
		{ID: "home_improvement", Name: "Home", Icon: "🛠️", Kind: KindExpense},
		{ID: "education", Name: "Education", Icon: "📚", Kind: KindExpense},
		{ID: "travel", Name: "Travel", Icon: "✈️", Kind: KindExpense},
		{ID: "others", Name: "Other", Icon: "❓", Kind: KindExpense},
		{ID: "salary", Name: "Salary", Icon: "💼", Kind: KindIncome},
		{ID: "freelance", Name: "Freelance", Icon: "💡", Kind: KindIncome},
		{ID: "investment", Name: "Investment", Icon: "📈", Kind: KindIncome},
		{ID: "business_income", Name: "Business", Icon: "🏢", Kind: KindIncome},
		{ID: "rental_income", Name: "Rental", Icon: "🏘️", Kind: KindIncome},
		{ID: "refunds", Name: "Refunds", Icon: "💰", Kind: KindIncome},
		{ID: "allowance", Name: "Allowance", Icon: "💸", Kind: KindIncome},
		{ID: "gifts", Name: "Gifts", Icon: "💝", Kind: KindIncome},
		{ID: "other_income", Name: "Other", Icon: "➕", Kind: KindIncome},
	}
}

// Categories returns the catalog entries of the given kind, in catalog order.
func (l *Ledger) Categories(kind CategoryKind) []Category {
	var out []Category
	for _, c := range l.categories {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// CategoryNames returns the sorted display names of the given kind.
func (l *Ledger) CategoryNames(kind CategoryKind) []string {
	var names []string
	for _, c := range l.categories {
		if c.Kind == kind {
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)
	return names
}

// hasCategory reports whether name is a catalog entry of the given kind.
func (l *Ledger) hasCategory(name string, kind CategoryKind) bool {
	for _, c := range l.categories {
		if c.Kind == kind && c.Name == name {
			return true
		}
	}
	return false
}
