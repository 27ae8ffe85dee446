// Package feedback picks the scolding message and sound clip shown after each
// list mutation.
package feedback

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sandeepkv93/angrytodo/internal/model"
)

var ErrInvalidPoolMode = errors.New("feedback: invalid sound pool mode")

// RandomSource is satisfied by *rand.Rand from math/rand/v2.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the runtime's shared generator.
func DefaultSource() RandomSource {
	return globalSource{}
}

type PoolMode string

const (
	PoolModePerKind PoolMode = "per-kind"
	PoolModeFlat    PoolMode = "flat"
)

func (m PoolMode) IsValid() bool {
	switch m {
	case PoolModePerKind, PoolModeFlat:
		return true
	default:
		return false
	}
}

func ParsePoolMode(raw string) (PoolMode, error) {
	m := PoolMode(strings.ToLower(strings.TrimSpace(raw)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPoolMode, raw)
	}
	return m, nil
}

// Placeholders substituted into message templates.
const (
	TaskPlaceholder = "{task}"
	NamePlaceholder = "{name}"
)

type Pool struct {
	Messages []string
	Sounds   []string
}

type Result struct {
	Message string
	SoundID string
}

type Catalog struct {
	pools      map[model.MutationKind]Pool
	flatSounds []string
	saved      []string
	loaded     []string
	mode       PoolMode
	rng        RandomSource
}

func NewCatalog(rng RandomSource, mode PoolMode) *Catalog {
	if rng == nil {
		rng = DefaultSource()
	}
	if !mode.IsValid() {
		mode = PoolModePerKind
	}
	return &Catalog{
		pools:      defaultPools(),
		flatSounds: defaultFlatSounds(),
		saved:      []string{"リスト「{name}」を保存したわよ！"},
		loaded:     []string{"リスト「{name}」を読み込んだわ！"},
		mode:       mode,
		rng:        rng,
	}
}

// Pool returns the message and sound candidates Pick draws from for kind.
func (c *Catalog) Pool(kind model.MutationKind) Pool {
	p := c.pools[kind]
	sounds := p.Sounds
	if c.mode == PoolModeFlat {
		sounds = c.flatSounds
	}
	return Pool{
		Messages: append([]string(nil), p.Messages...),
		Sounds:   append([]string(nil), sounds...),
	}
}

// Pick draws a message and an independent sound for kind. subject fills the
// {task} placeholder.
func (c *Catalog) Pick(kind model.MutationKind, subject string) Result {
	p := c.Pool(kind)
	return Result{
		Message: strings.ReplaceAll(c.choose(p.Messages), TaskPlaceholder, subject),
		SoundID: c.choose(p.Sounds),
	}
}

func (c *Catalog) SavedMessage(name string) string {
	return strings.ReplaceAll(c.choose(c.saved), NamePlaceholder, name)
}

func (c *Catalog) LoadedMessage(name string) string {
	return strings.ReplaceAll(c.choose(c.loaded), NamePlaceholder, name)
}

func (c *Catalog) choose(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[c.rng.IntN(len(items))]
}

func defaultPools() map[model.MutationKind]Pool {
	return map[model.MutationKind]Pool{
		model.MutationAdd: {
			Messages: []string{
				"何やってるの！もっと頑張りなさい！",
				"また追加かよ！",
				"ちゃんとやれ！",
				"サボるな！",
				"はやく終わらせろ！",
				"何回言わせるんだ！",
			},
			Sounds: []string{
				"add/「はい」.mp3",
				"add/「はいは～い♪」.mp3",
				"add/「はいはいは～い！」.mp3",
			},
		},
		model.MutationDelete: {
			Messages: []string{
				"まだ終わってないのに消さないでよ！",
				"まだ終わってないぞ！",
			},
			Sounds: []string{
				"delete/「こら！」.mp3",
				"delete/「なんだザコかあ」.mp3",
			},
		},
		model.MutationComplete: {
			Messages: []string{
				"「{task}」は完了？まあ、頑張ったわね！",
				"頑張ったね。でもまだあるでしょ！",
				"すごいすごい。次もはやく終わらせろ！",
			},
			Sounds: []string{
				"complete/「頑張ったね」.mp3",
				"complete/「すごいすごい」.mp3",
			},
		},
	}
}

func defaultFlatSounds() []string {
	out := make([]string, 0, 7)
	for _, kind := range []model.MutationKind{model.MutationAdd, model.MutationDelete, model.MutationComplete} {
		out = append(out, defaultPools()[kind].Sounds...)
	}
	return out
}
