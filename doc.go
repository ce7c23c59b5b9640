// Package expensewise implements a single-user personal finance ledger:
// wallets, budgets, saving goals, an append-only transaction journal, and the
// derived reporting figures (budget spending, goal progress, spending
// summary).
//
// State is persisted per user as a set of plain CSV files plus a small JSON
// settings document in one data directory, so a ledger stays readable and
// editable by hand. The persistence layer is deliberately forgiving: a
// damaged file degrades to an empty collection instead of blocking the load.
//
// The Store type owns the data directory and the profile roster; selecting a
// profile loads that user's Ledger, whose methods form the command API every
// front end goes through.
package expensewise
