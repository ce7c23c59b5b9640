package expensewise

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Store owns the data directory: the shared profile roster plus the per-user
// collection files. One user is selected at a time; selecting loads that
// user's ledger and Close saves it back.
//
// Per-user files are named <collection>_<uid>.csv (settings_<uid>.json for
// the settings document) so every profile's data sits side by side in the
// same directory.
type Store struct {
	dir      string
	profiles *ProfileDirectory

	userID string
	ledger *Ledger
}

// DefaultDir returns the default data directory under the XDG data home.
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, "expensewise")
}

// Open opens (creating if needed) the data directory and loads the profile
// roster. When no usable roster exists a demo profile is synthesized and
// saved immediately, so an Open never returns an empty directory.
func Open(dir string) (*Store, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %q: %w", dir, err)
	}
	s := &Store{dir: dir}
	s.loadProfiles()
	return s, nil
}

// Dir returns the data directory the store was opened on.
func (s *Store) Dir() string { return s.dir }

// Profiles returns the profile roster.
func (s *Store) Profiles() *ProfileDirectory { return s.profiles }

// UserID returns the selected user's id, empty when none is selected.
func (s *Store) UserID() string { return s.userID }

// Ledger returns the selected user's ledger.
func (s *Store) Ledger() (*Ledger, error) {
	if s.ledger == nil {
		return nil, ErrNoUser
	}
	return s.ledger, nil
}

func (s *Store) profilesPath() string {
	return filepath.Join(s.dir, "user_profiles.csv")
}

func (s *Store) collectionPath(collection, userID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.csv", collection, userID))
}

func (s *Store) settingsPath(userID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("settings_%s.json", userID))
}

// loadProfiles reads the roster, falling back to a fresh demo profile when
// the file is missing, unreadable or holds no valid row.
func (s *Store) loadProfiles() {
	s.profiles = NewProfileDirectory()
	f, err := os.Open(s.profilesPath())
	if err == nil {
		s.profiles = decodeProfiles(DecodeKeyedTable(f, profileSchema))
		f.Close()
	} else if !os.IsNotExist(err) {
		log.Printf("empty-table table=%q: %v", profileSchema.Name, err)
	}
	if s.profiles.Len() == 0 {
		p := s.profiles.addDemo()
		log.Printf("seed-profile id=%q name=%q", p.ID, p.Name)
		if err := s.SaveProfiles(); err != nil {
			log.Printf("save-profiles: %v", err)
		}
	}
}

// SaveProfiles rewrites the roster file.
func (s *Store) SaveProfiles() error {
	f, err := os.Create(s.profilesPath())
	if err != nil {
		return fmt.Errorf("persist error: cannot create %q: %w", s.profilesPath(), err)
	}
	defer f.Close()
	return EncodeKeyedTable(f, profileSchema, s.profiles.records())
}

// Select makes the given profile the active user and loads its ledger. Any
// previously selected ledger is saved first.
func (s *Store) Select(userID string) (*Ledger, error) {
	if _, ok := s.profiles.Get(userID); !ok {
		return nil, fmt.Errorf("profile %q: %w", userID, ErrNotFound)
	}
	if s.ledger != nil {
		if err := s.Save(); err != nil {
			return nil, err
		}
	}
	s.userID = userID
	s.ledger = s.loadLedger(userID)
	return s.ledger, nil
}

// decodeCollection reads one keyed collection file. A missing or damaged
// file degrades to an empty collection, the rest of the profile still loads.
func (s *Store) decodeCollection(userID string, schema Schema) map[string]Record {
	path := s.collectionPath(schema.Name, userID)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("empty-table table=%q: %v", schema.Name, err)
		}
		return nil
	}
	defer f.Close()
	return DecodeKeyedTable(f, schema)
}

// loadLedger loads every collection of the user independently. After loading,
// a user with no wallet gets the default Cash wallet, and the category
// catalog is reset to the built-in table.
func (s *Store) loadLedger(userID string) *Ledger {
	l := NewLedger()

	for id, rec := range s.decodeCollection(userID, walletSchema) {
		l.wallets[id] = walletFromRecord(id, rec)
	}
	for id, rec := range s.decodeCollection(userID, budgetSchema) {
		l.budgets[id] = budgetFromRecord(id, rec)
	}
	for id, rec := range s.decodeCollection(userID, goalSchema) {
		l.goals[id] = goalFromRecord(id, rec)
	}

	if f, err := os.Open(s.collectionPath(transactionSchema.Name, userID)); err == nil {
		for _, rec := range DecodeTable(f, transactionSchema) {
			l.transactions = append(l.transactions, transactionFromRecord(rec))
		}
		f.Close()
	} else if !os.IsNotExist(err) {
		log.Printf("empty-table table=%q: %v", transactionSchema.Name, err)
	}

	if f, err := os.Open(s.collectionPath(activitySchema.Name, userID)); err == nil {
		for _, rec := range DecodeTable(f, activitySchema) {
			l.activity.push(ActivityEntry{Timestamp: rec["timestamp"], Action: rec["action"]})
		}
		f.Close()
	} else if !os.IsNotExist(err) {
		log.Printf("empty-table table=%q: %v", activitySchema.Name, err)
	}

	l.settings = decodeSettings(s.settingsPath(userID))

	if len(l.wallets) == 0 {
		log.Printf("seed-wallet user=%q name=%q", userID, "Cash")
		w := Wallet{ID: newID("wallet"), Name: "Cash", Balance: M(0)}
		l.wallets[w.ID] = w
	}
	l.categories = BaseCategories()
	return l
}

// Save rewrites every collection of the selected user. Each collection is
// written independently and the errors joined, a failing file must not stop
// the others from being saved.
func (s *Store) Save() error {
	if s.ledger == nil {
		return ErrNoUser
	}
	l, userID := s.ledger, s.userID

	wallets := make(map[string]Record, len(l.wallets))
	for id, w := range l.wallets {
		wallets[id] = walletToRecord(w)
	}
	budgets := make(map[string]Record, len(l.budgets))
	for id, b := range l.budgets {
		budgets[id] = budgetToRecord(b)
	}
	goals := make(map[string]Record, len(l.goals))
	for id, g := range l.goals {
		goals[id] = goalToRecord(g)
	}

	transactions := make([]Record, len(l.transactions))
	for i, tx := range l.transactions {
		transactions[i] = transactionToRecord(tx)
	}
	activity := make([]Record, 0, l.activity.Len())
	for _, e := range l.activity.Entries() {
		activity = append(activity, Record{"timestamp": e.Timestamp, "action": e.Action})
	}

	return errors.Join(
		s.saveKeyed(userID, walletSchema, wallets),
		s.saveKeyed(userID, budgetSchema, budgets),
		s.saveKeyed(userID, goalSchema, goals),
		s.saveTable(userID, transactionSchema, transactions),
		s.saveTable(userID, activitySchema, activity),
		encodeSettings(s.settingsPath(userID), l.settings),
	)
}

func (s *Store) saveKeyed(userID string, schema Schema, records map[string]Record) error {
	path := s.collectionPath(schema.Name, userID)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist error: cannot create %q: %w", path, err)
	}
	defer f.Close()
	return EncodeKeyedTable(f, schema, records)
}

func (s *Store) saveTable(userID string, schema Schema, records []Record) error {
	path := s.collectionPath(schema.Name, userID)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist error: cannot create %q: %w", path, err)
	}
	defer f.Close()
	return EncodeTable(f, schema, records)
}

// Close saves the selected user's ledger and deselects it.
func (s *Store) Close() error {
	if s.ledger == nil {
		return nil
	}
	err := s.Save()
	s.userID = ""
	s.ledger = nil
	return err
}

// ResetUserData clears every collection of the selected user, re-seeds the
// default Cash wallet and saves immediately. The profile itself stays.
func (s *Store) ResetUserData() error {
	if s.ledger == nil {
		return ErrNoUser
	}
	l := NewLedger()
	w := Wallet{ID: newID("wallet"), Name: "Cash", Balance: M(0)}
	l.wallets[w.ID] = w
	l.activity.Append("Reset all user data")
	s.ledger = l
	return s.Save()
}

// DeleteUserProfile removes the selected user's profile from the roster and
// deletes its data files. The removal is best-effort per file: a file that
// cannot be deleted is logged, the profile is gone regardless.
func (s *Store) DeleteUserProfile() error {
	if s.userID == "" {
		return ErrNoUser
	}
	userID := s.userID
	if err := s.profiles.Remove(userID); err != nil {
		return err
	}
	if err := s.SaveProfiles(); err != nil {
		return err
	}
	paths := []string{
		s.collectionPath(walletSchema.Name, userID),
		s.collectionPath(budgetSchema.Name, userID),
		s.collectionPath(goalSchema.Name, userID),
		s.collectionPath(transactionSchema.Name, userID),
		s.collectionPath(activitySchema.Name, userID),
		s.settingsPath(userID),
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("delete-user-file file=%q: %v", path, err)
		}
	}
	s.userID = ""
	s.ledger = nil
	return nil
}
