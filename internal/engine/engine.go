// Package engine is the single entry point the UI drives. Every operation
// runs to completion on the caller's goroutine and returns the full
// observable state; the engine itself does no locking.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/sandeepkv93/angrytodo/internal/config"
	"github.com/sandeepkv93/angrytodo/internal/feedback"
	"github.com/sandeepkv93/angrytodo/internal/log"
	"github.com/sandeepkv93/angrytodo/internal/model"
	"github.com/sandeepkv93/angrytodo/internal/mood"
	"github.com/sandeepkv93/angrytodo/internal/snapshot"
	"github.com/sandeepkv93/angrytodo/internal/storage"
)

type State struct {
	Tasks            []model.Task
	Mood             int
	Message          string
	MessageExpiresAt time.Time
	Progress         float64
	Snapshots        []snapshot.Info
}

// Result is the state after an operation. Changed is false when the
// operation was declined (blank input, bad index) and nothing moved.
type Result struct {
	State
	Kind    model.MutationKind
	SoundID string
	Changed bool
}

type Engine struct {
	list         *model.TaskList
	tracker      *mood.Tracker
	catalog      *feedback.Catalog
	snapshots    *snapshot.Store
	player       feedback.Player
	now          func() time.Time
	banner       feedback.Banner
	ttl          time.Duration
	completeMode config.CompleteMode
}

type settings struct {
	rng          feedback.RandomSource
	now          func() time.Time
	player       feedback.Player
	poolMode     feedback.PoolMode
	completeMode config.CompleteMode
	deltas       mood.Deltas
	ttl          time.Duration
	snapshotOpts []snapshot.Option
}

type Option func(*settings)

func WithRandomSource(rng feedback.RandomSource) Option {
	return func(s *settings) { s.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

func WithPlayer(p feedback.Player) Option {
	return func(s *settings) { s.player = p }
}

func WithPoolMode(mode feedback.PoolMode) Option {
	return func(s *settings) { s.poolMode = mode }
}

func WithCompleteMode(mode config.CompleteMode) Option {
	return func(s *settings) {
		if mode.IsValid() {
			s.completeMode = mode
		}
	}
}

func WithCompleteDelta(delta int) Option {
	return func(s *settings) { s.deltas = s.deltas.WithCompleteDelta(delta) }
}

func WithMessageTTL(ttl time.Duration) Option {
	return func(s *settings) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithSnapshotOptions(opts ...snapshot.Option) Option {
	return func(s *settings) { s.snapshotOpts = append(s.snapshotOpts, opts...) }
}

// WithConfig applies the behavioral settings of a RuntimeConfig.
func WithConfig(cfg config.RuntimeConfig) Option {
	return func(s *settings) {
		WithPoolMode(cfg.SoundPools)(s)
		WithCompleteMode(cfg.CompleteMode)(s)
		WithCompleteDelta(cfg.CompleteDelta)(s)
		WithMessageTTL(cfg.MessageTTL)(s)
	}
}

// New starts a session: empty list, mood 0, saved lists read from kv.
func New(ctx context.Context, kv storage.KeyValueStore, opts ...Option) *Engine {
	s := settings{
		rng:          feedback.DefaultSource(),
		now:          time.Now,
		player:       feedback.NoopPlayer{},
		poolMode:     feedback.PoolModePerKind,
		completeMode: config.CompleteToggle,
		deltas:       mood.DefaultDeltas(),
		ttl:          feedback.DefaultMessageTTL,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.player == nil {
		s.player = feedback.NoopPlayer{}
	}
	snapOpts := append([]snapshot.Option{snapshot.WithClock(s.now)}, s.snapshotOpts...)
	return &Engine{
		list:         model.NewTaskList(nil),
		tracker:      mood.NewTracker(s.deltas),
		catalog:      feedback.NewCatalog(s.rng, s.poolMode),
		snapshots:    snapshot.Open(ctx, kv, snapOpts...),
		player:       s.player,
		now:          s.now,
		ttl:          s.ttl,
		completeMode: s.completeMode,
	}
}

func (e *Engine) Add(text string) Result {
	kind, err := e.list.Add(text)
	if err != nil {
		return e.declined("add", err)
	}
	return e.react(kind, text)
}

// Toggle completes the task at index. Depending on the complete mode the
// task is flipped in place or removed; either way it counts as Complete.
func (e *Engine) Toggle(index int) Result {
	task, ok := e.list.At(index)
	if !ok {
		return e.declined("toggle", model.ErrIndexOutOfRange)
	}
	var err error
	if e.completeMode == config.CompleteRemove {
		_, err = e.list.Remove(index)
	} else {
		_, err = e.list.Toggle(index)
	}
	if err != nil {
		return e.declined("toggle", err)
	}
	return e.react(model.MutationComplete, task.Text)
}

func (e *Engine) Remove(index int) Result {
	task, ok := e.list.At(index)
	if !ok {
		return e.declined("remove", model.ErrIndexOutOfRange)
	}
	kind, err := e.list.Remove(index)
	if err != nil {
		return e.declined("remove", err)
	}
	return e.react(kind, task.Text)
}

// Save stores a copy of the live list under name. A failed write is logged
// and the entry stays available for this session.
func (e *Engine) Save(ctx context.Context, name string) Result {
	name = strings.TrimSpace(name)
	snap, err := e.snapshots.Save(ctx, name, e.list.Tasks())
	if snap.Name == "" {
		return e.declined("save", err)
	}
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("saved list kept in memory only")
	}
	e.setMessage(e.catalog.SavedMessage(snap.Name))
	return Result{State: e.State(), Changed: true}
}

// Load replaces the live list with a copy of the saved list at index and
// calms the mood back to zero.
func (e *Engine) Load(index int) Result {
	snap, err := e.snapshots.Load(index)
	if err != nil {
		return e.declined("load", err)
	}
	e.list.ReplaceAll(snap.Tasks)
	e.tracker.Reset()
	e.setMessage(e.catalog.LoadedMessage(snap.Name))
	log.Info().Str("name", snap.Name).Int("index", index).Msg("list loaded")
	return Result{State: e.State(), Changed: true}
}

func (e *Engine) ListAll() []snapshot.Info {
	return e.snapshots.List()
}

func (e *Engine) Progress() float64 {
	return e.list.Progress()
}

func (e *Engine) Mood() int {
	return e.tracker.Score()
}

// State is the observable state at the engine's current time; an expired
// message reads as "".
func (e *Engine) State() State {
	now := e.now()
	st := State{
		Tasks:     e.list.Tasks(),
		Mood:      e.tracker.Score(),
		Message:   e.banner.Visible(now),
		Progress:  e.list.Progress(),
		Snapshots: e.snapshots.List(),
	}
	if st.Message != "" {
		st.MessageExpiresAt = e.banner.ExpiresAt
	}
	return st
}

func (e *Engine) react(kind model.MutationKind, subject string) Result {
	e.tracker.Apply(kind)
	pick := e.catalog.Pick(kind, subject)
	e.setMessage(pick.Message)
	e.player.Play(pick.SoundID)
	log.Debug().Str("kind", string(kind)).Int("mood", e.tracker.Score()).Str("sound", pick.SoundID).Msg("list mutated")
	return Result{State: e.State(), Kind: kind, SoundID: pick.SoundID, Changed: true}
}

func (e *Engine) setMessage(text string) {
	e.banner = feedback.NewBanner(text, e.now(), e.ttl)
}

func (e *Engine) declined(op string, err error) Result {
	log.Debug().Err(err).Str("op", op).Msg("operation declined")
	return Result{State: e.State()}
}
