// Package favorites owns the user's favorite asset ids: an in-memory mirror
// of a single JSON file, with synchronous change notifications so every
// surface reading favorites stays in sync within one session. Favorites are
// a convenience feature, so storage problems degrade the store instead of
// failing the caller: a corrupt file reinitializes to empty and an
// unwritable one leaves the store memory-only for the process lifetime.
package favorites

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"
)

const defaultPath = "data/gx_favorites.json"

type Store interface {
	// Toggle flips membership for id and reports the new state. The
	// in-memory mirror is updated and persisted before subscribers are
	// notified, so observers always see the post-mutation list.
	Toggle(id string) bool
	IsFavorite(id string) bool
	// List returns the current favorite ids. Order is insertion order but
	// is not contractual.
	List() []string
	// Subscribe registers fn to be called synchronously after every
	// mutation with the post-mutation id list. The returned function
	// removes the subscription.
	Subscribe(fn func(ids []string)) func()
}

type store struct {
	mu      sync.Mutex
	path    string // empty once storage is known to be unavailable
	ids     []string
	member  map[string]bool
	subs    map[int]func([]string)
	nextSub int
}

// New opens the store at FAVORITES_PATH (default data/gx_favorites.json).
func New() Store {
	path := os.Getenv("FAVORITES_PATH")
	if path == "" {
		path = defaultPath
	}
	return Open(path)
}

// Open loads the persisted favorite set from path, tolerating a missing or
// corrupt file.
func Open(path string) Store {
	s := &store{
		path:   path,
		member: make(map[string]bool),
		subs:   make(map[int]func([]string)),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Favorites storage unreadable, starting empty")
		}
		return s
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Favorites storage corrupt, reinitializing to empty")
		return s
	}

	for _, id := range ids {
		if id != "" && !s.member[id] {
			s.member[id] = true
			s.ids = append(s.ids, id)
		}
	}
	return s
}

func (s *store) Toggle(id string) bool {
	s.mu.Lock()

	if s.member[id] {
		delete(s.member, id)
		for i, existing := range s.ids {
			if existing == id {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
	} else {
		s.member[id] = true
		s.ids = append(s.ids, id)
	}

	nowFavorite := s.member[id]
	s.persistLocked()

	snapshot := append([]string(nil), s.ids...)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return nowFavorite
}

func (s *store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.member[id]
}

func (s *store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

func (s *store) Subscribe(fn func(ids []string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.nextSub
	s.nextSub++
	s.subs[key] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, key)
	}
}

// subscribersLocked returns the subscriptions in registration order.
func (s *store) subscribersLocked() []func([]string) {
	keys := make([]int, 0, len(s.subs))
	for k := range s.subs {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	fns := make([]func([]string), 0, len(keys))
	for _, k := range keys {
		fns = append(fns, s.subs[k])
	}
	return fns
}

// persistLocked writes the current set to disk. On failure the store drops
// to memory-only so toggles keep working for the rest of the session.
func (s *store) persistLocked() {
	if s.path == "" {
		return
	}

	raw, err := json.Marshal(s.ids)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode favorites")
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Warn().Err(err).Str("path", s.path).Msg("Favorites storage unavailable, continuing in-memory only")
			s.path = ""
			return
		}
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Favorites storage unavailable, continuing in-memory only")
		s.path = ""
	}
}
