package expensewise

import (
	"fmt"
	"sort"
	"strings"
)

// Wallet is an account holding money, with a cached balance maintained by the
// transaction journal.
type Wallet struct {
	ID      string
	Name    string
	Balance Money
}

func walletToRecord(w Wallet) Record {
	return Record{
		"name":    w.Name,
		"balance": w.Balance.Text(),
	}
}

func walletFromRecord(id string, rec Record) Wallet {
	balance, _ := ParseMoney(rec["balance"])
	return Wallet{ID: id, Name: rec["name"], Balance: balance}
}

// Wallets returns the wallets sorted by name, case-insensitive.
func (l *Ledger) Wallets() []Wallet {
	out := make([]Wallet, 0, len(l.wallets))
	for _, w := range l.wallets {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// WalletNames returns the wallet names sorted case-insensitive.
func (l *Ledger) WalletNames() []string {
	wallets := l.Wallets()
	names := make([]string, len(wallets))
	for i, w := range wallets {
		names[i] = w.Name
	}
	return names
}

func (l *Ledger) walletByName(name string) (Wallet, bool) {
	for _, w := range l.wallets {
		if w.Name == name {
			return w, true
		}
	}
	return Wallet{}, false
}

func (l *Ledger) walletNameTaken(name, selfID string) bool {
	for id, w := range l.wallets {
		if id != selfID && strings.EqualFold(w.Name, name) {
			return true
		}
	}
	return false
}

// CreateWallet adds a new wallet. The balance always starts at zero, money
// enters through transactions.
func (l *Ledger) CreateWallet(name string) (Wallet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Wallet{}, fmt.Errorf("wallet name: %w", ErrEmptyName)
	}
	if l.walletNameTaken(name, "") {
		return Wallet{}, fmt.Errorf("wallet %q: %w", name, ErrNameTaken)
	}
	w := Wallet{ID: newID("wallet"), Name: name, Balance: M(0)}
	l.wallets[w.ID] = w
	l.activity.Append(fmt.Sprintf("Added Wallet: %s", w.Name))
	return w, nil
}

// EditWallet renames a wallet and corrects its cached balance.
func (l *Ledger) EditWallet(id, name string, balance Money) (Wallet, error) {
	w, ok := l.wallets[id]
	if !ok {
		return Wallet{}, fmt.Errorf("wallet %q: %w", id, ErrNotFound)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Wallet{}, fmt.Errorf("wallet name: %w", ErrEmptyName)
	}
	if l.walletNameTaken(name, id) {
		return Wallet{}, fmt.Errorf("wallet %q: %w", name, ErrNameTaken)
	}
	w.Name = name
	w.Balance = balance
	l.wallets[id] = w
	l.activity.Append(fmt.Sprintf("Edited Wallet: %s", w.Name))
	return w, nil
}

// DeleteWallet removes a wallet. A wallet referenced by any transaction,
// as its wallet or as either leg of a transfer, cannot be deleted.
func (l *Ledger) DeleteWallet(id string) error {
	w, ok := l.wallets[id]
	if !ok {
		return fmt.Errorf("wallet %q: %w", id, ErrNotFound)
	}
	if w.Name != "" {
		for _, tx := range l.transactions {
			if tx.Wallet == w.Name || tx.FromAccount == w.Name || tx.ToAccount == w.Name {
				return fmt.Errorf("wallet %q is used in transactions: %w", w.Name, ErrReferenced)
			}
		}
	}
	delete(l.wallets, id)
	l.activity.Append(fmt.Sprintf("Deleted Wallet: %s", w.Name))
	return nil
}

// creditWallet moves the cached balance of the named wallet by delta. An
// unknown name is a stale reference and is ignored.
func (l *Ledger) creditWallet(name string, delta Money) {
	for id, w := range l.wallets {
		if w.Name == name {
			w.Balance = w.Balance.Add(delta)
			l.wallets[id] = w
			return
		}
	}
}
