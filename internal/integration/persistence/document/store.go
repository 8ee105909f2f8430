// Package document implements the JSON document store used when the
// relational backend is unreachable at startup. One JSON file per collection,
// guarded by a single store-wide mutex.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/auracash/backend/internal/domain/entity"
)

// Store is the shared state behind the document-backed repositories. All
// collections live in memory and are flushed to disk on every mutation.
type Store struct {
	mu  sync.Mutex
	dir string

	// lastID makes id generation monotonic within this process. Ids are
	// millisecond timestamps, bumped by one on same-millisecond collisions.
	lastID int64

	users        []*entity.User
	categories   []*entity.Category
	transactions []*entity.Transaction
	goals        []*entity.Goal
	accounts     []*entity.SharedAccount
	members      []*entity.SharedMember
}

// Open loads (or initializes) the document store rooted at dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		dir:    dir,
		lastID: time.Now().UnixMilli(),
	}

	if err := s.load("users", &s.users); err != nil {
		return nil, err
	}
	if err := s.load("categories", &s.categories); err != nil {
		return nil, err
	}
	if err := s.load("transactions", &s.transactions); err != nil {
		return nil, err
	}
	if err := s.load("goals", &s.goals); err != nil {
		return nil, err
	}
	if err := s.load("shared_accounts", &s.accounts); err != nil {
		return nil, err
	}
	if err := s.load("shared_members", &s.members); err != nil {
		return nil, err
	}

	// Never hand out an id at or below what is already persisted.
	for _, u := range s.users {
		s.bump(u.ID)
	}
	for _, c := range s.categories {
		s.bump(c.ID)
	}
	for _, t := range s.transactions {
		s.bump(t.ID)
	}
	for _, g := range s.goals {
		s.bump(g.ID)
	}
	for _, a := range s.accounts {
		s.bump(a.ID)
	}
	for _, m := range s.members {
		s.bump(m.ID)
	}

	return s, nil
}

// NextID allocates a new id. Callers must hold s.mu.
func (s *Store) NextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) bump(id int64) {
	if id > s.lastID {
		s.lastID = id
	}
}

// load reads one collection file into v. A missing file leaves v empty.
func (s *Store) load(collection string, v interface{}) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", collection, err)
	}
	return nil
}

// save writes one collection file atomically. Callers must hold s.mu.
func (s *Store) save(collection string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}

	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("failed to commit collection %s: %w", collection, err)
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
