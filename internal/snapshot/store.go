// Package snapshot keeps named copies of the task list in a key-value store.
//
// The whole collection is a single JSON document under one key and is
// rewritten on every save. Entries are identified by position; names may
// repeat.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/angrytodo/internal/log"
	"github.com/sandeepkv93/angrytodo/internal/model"
	"github.com/sandeepkv93/angrytodo/internal/storage"
)

// StorageKey is the key the collection has always been stored under.
const StorageKey = "savedLists"

var (
	ErrIndexOutOfRange = errors.New("snapshot: index out of range")
	ErrPersist         = errors.New("snapshot: persist collection")
)

type Info struct {
	Index     int
	ID        string
	Name      string
	TaskCount int
	SavedAt   time.Time
}

type Store struct {
	kv    storage.KeyValueStore
	key   string
	items []model.Snapshot
	now   func() time.Time
	newID func() string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func WithKey(key string) Option {
	return func(s *Store) {
		if strings.TrimSpace(key) != "" {
			s.key = key
		}
	}
}

// Open reads the persisted collection. A missing, unreadable, or malformed
// value yields an empty collection; Open never fails.
func Open(ctx context.Context, kv storage.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		key:   StorageKey,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.items = s.readAll(ctx)
	return s
}

func (s *Store) readAll(ctx context.Context) []model.Snapshot {
	if s.kv == nil {
		return nil
	}
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn().Err(err).Str("key", s.key).Msg("read saved lists failed, starting empty")
		}
		return nil
	}
	items, dropped, err := decode(raw)
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("saved lists are corrupt, starting empty")
		return nil
	}
	if dropped > 0 {
		log.Warn().Int("dropped", dropped).Msg("skipped invalid saved list entries")
	}
	log.Info().Int("count", len(items)).Msg("saved lists loaded")
	return items
}

func (s *Store) List() []Info {
	out := make([]Info, 0, len(s.items))
	for i, item := range s.items {
		out = append(out, Info{
			Index:     i,
			ID:        item.ID,
			Name:      item.Name,
			TaskCount: len(item.Tasks),
			SavedAt:   item.SavedAt,
		})
	}
	return out
}

// Save appends a copy of tasks under name and rewrites the collection. When
// the write fails the entry is kept in memory and an ErrPersist-wrapped error
// is returned alongside it.
func (s *Store) Save(ctx context.Context, name string, tasks []model.Task) (model.Snapshot, error) {
	snap := model.Snapshot{
		ID:      s.newID(),
		Name:    name,
		Tasks:   model.CloneTasks(tasks),
		SavedAt: s.now().UTC(),
	}
	if err := snap.Validate(); err != nil {
		return model.Snapshot{}, err
	}
	s.items = append(s.items, snap)
	if err := s.flush(ctx); err != nil {
		return cloneSnapshot(snap), err
	}
	log.Info().Str("name", snap.Name).Int("tasks", len(snap.Tasks)).Msg("list saved")
	return cloneSnapshot(snap), nil
}

// Load returns an independent copy of the snapshot at index.
func (s *Store) Load(index int) (model.Snapshot, error) {
	if index < 0 || index >= len(s.items) {
		return model.Snapshot{}, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(s.items))
	}
	return cloneSnapshot(s.items[index]), nil
}

func (s *Store) flush(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}
	payload, err := encode(s.items)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := s.kv.Put(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func cloneSnapshot(in model.Snapshot) model.Snapshot {
	in.Tasks = model.CloneTasks(in.Tasks)
	return in
}
