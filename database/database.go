// Package database implements persistence for compile_commands.json: a
// deduplicated, JSON-serialized set of Compilations, loadable from
// either its own output format or the legacy "command"-string form.
package database

import (
	"fmt"

	"go.chromium.org/luci/common/data/stringset"

	"github.com/rizsotto/Bear/compilation"
)

// Database is a deduplicated set of Compilations, keyed by
// compilation.Compilation.Key(). It preserves the order entries were
// added in, since JSON array order is otherwise unconstrained by the
// format (only object-key order within each entry is normative).
type Database struct {
	seen    stringset.Set
	entries []compilation.Compilation
}

// New returns an empty Database.
func New() *Database {
	return &Database{seen: stringset.New(0)}
}

// Add inserts c if no entry with an equal Key has been added already.
// It reports whether c was newly added.
func (db *Database) Add(c compilation.Compilation) bool {
	if !db.seen.Add(c.Key()) {
		return false
	}
	db.entries = append(db.entries, c)
	return true
}

// AddAll adds every Compilation in cs, deduplicating against everything
// already in db.
func (db *Database) AddAll(cs []compilation.Compilation) {
	for _, c := range cs {
		db.Add(c)
	}
}

// Entries returns the deduplicated Compilations in insertion order.
func (db *Database) Entries() []compilation.Compilation {
	return db.entries
}

// Len reports the number of distinct entries in db.
func (db *Database) Len() int {
	return len(db.entries)
}

func (db *Database) String() string {
	return fmt.Sprintf("database(%d entries)", db.Len())
}
