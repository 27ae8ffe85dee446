package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyText       = errors.New("model: task text is required")
	ErrIndexOutOfRange = errors.New("model: task index out of range")
	ErrInvalidKind     = errors.New("model: invalid mutation kind")
	ErrEmptyName       = errors.New("model: snapshot name is required")
)

type MutationKind string

const (
	MutationAdd      MutationKind = "Add"
	MutationDelete   MutationKind = "Delete"
	MutationComplete MutationKind = "Complete"
)

func (k MutationKind) IsValid() bool {
	switch k {
	case MutationAdd, MutationDelete, MutationComplete:
		return true
	default:
		return false
	}
}

type Task struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// CloneTasks returns a copy that shares no backing array with in.
func CloneTasks(in []Task) []Task {
	out := make([]Task, len(in))
	copy(out, in)
	return out
}

type Snapshot struct {
	ID      string
	Name    string
	Tasks   []Task
	SavedAt time.Time
}

func (s Snapshot) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	for i, task := range s.Tasks {
		if err := task.Validate(); err != nil {
			return fmt.Errorf("snapshot %q task %d: %w", s.Name, i, err)
		}
	}
	return nil
}
