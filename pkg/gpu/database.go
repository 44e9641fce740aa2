package gpu

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

//go:embed gpu-database.json
var embeddedDatabase []byte

// Database is the read-only reference mapping from normalized GPU name to
// capability profile. Key insertion order is preserved so that partial-match
// tie-breaking is deterministic for a given database build (it is not
// guaranteed to be stable across rebuilds).
type Database struct {
	keys     []string
	profiles map[string]Profile
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{profiles: make(map[string]Profile)}
}

// Add inserts a profile under the given normalized name. The first occurrence
// of a name wins; later duplicates are discarded and Add reports false.
func (db *Database) Add(name string, profile Profile) bool {
	if _, exists := db.profiles[name]; exists {
		return false
	}
	db.keys = append(db.keys, name)
	db.profiles[name] = profile
	return true
}

// Get returns the profile stored under the exact normalized name.
func (db *Database) Get(name string) (Profile, bool) {
	profile, ok := db.profiles[name]
	return profile, ok
}

// Keys returns the database keys in insertion order. The returned slice must
// not be modified.
func (db *Database) Keys() []string {
	return db.keys
}

// Len returns the number of entries.
func (db *Database) Len() int {
	return len(db.keys)
}

// Load reads a reference database from its JSON artifact form: a single
// object whose keys are normalized GPU names. Key order in the document is
// preserved as the database insertion order.
func Load(r io.Reader) (*Database, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading database document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("unexpected top-level token %v, want object", tok)
	}

	db := NewDatabase()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading database key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected database key token %v", keyTok)
		}
		var profile Profile
		if err := dec.Decode(&profile); err != nil {
			return nil, fmt.Errorf("decoding profile for %q: %w", key, err)
		}
		db.Add(key, profile)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading database document end: %w", err)
	}
	return db, nil
}

// LoadFile reads a reference database from a JSON file on disk.
func LoadFile(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadEmbedded returns the reference database bundled with the binary. It is
// a snapshot of the generated artifact, suitable when no external database
// path is configured.
func LoadEmbedded() (*Database, error) {
	return Load(bytes.NewReader(embeddedDatabase))
}

// MarshalJSON encodes the database back into its artifact form, preserving
// key order.
func (db *Database) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range db.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		profileJSON, err := json.Marshal(db.profiles[key])
		if err != nil {
			return nil, err
		}
		buf.Write(profileJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
