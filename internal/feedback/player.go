package feedback

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sandeepkv93/angrytodo/internal/log"
)

var ErrNoPlayerCommand = errors.New("feedback: no player command configured")

// Player starts a clip and returns immediately. Implementations never report
// failure to the caller.
type Player interface {
	Play(clip string)
}

type NoopPlayer struct{}

func (NoopPlayer) Play(string) {}

// ExecPlayer shells out to a command-line audio player, one process per clip.
type ExecPlayer struct {
	Dir     string
	Command []string
	// Run replaces exec.Command(...).Run in tests.
	Run func(name string, args ...string) error
}

func NewExecPlayer(dir, command string) ExecPlayer {
	return ExecPlayer{Dir: dir, Command: strings.Fields(command)}
}

// DefaultPlayerCommand picks a player that ships with the OS or is commonly
// installed.
func DefaultPlayerCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "afplay"
	case "linux":
		return "mpg123 -q"
	default:
		return ""
	}
}

func (p ExecPlayer) Play(clip string) {
	if strings.TrimSpace(clip) == "" {
		return
	}
	go p.play(clip)
}

func (p ExecPlayer) play(clip string) {
	if err := p.playSync(clip); err != nil {
		log.Warn().Err(err).Str("clip", clip).Msg("failed to play sound")
	}
}

func (p ExecPlayer) playSync(clip string) error {
	if len(p.Command) == 0 {
		return ErrNoPlayerCommand
	}
	path := filepath.Join(p.Dir, filepath.FromSlash(clip))
	args := append(append([]string(nil), p.Command[1:]...), path)
	if p.Run == nil {
		if _, err := os.Stat(path); err != nil {
			return err
		}
		return exec.Command(p.Command[0], args...).Run()
	}
	return p.Run(p.Command[0], args...)
}
