package snapshot

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/sandeepkv93/angrytodo/internal/model"
)

type wireSnapshot struct {
	ID      string       `json:"id,omitempty"`
	Name    string       `json:"name"`
	Tasks   []model.Task `json:"tasks"`
	SavedAt *time.Time   `json:"savedAt,omitempty"`
	// Older builds stored plain strings under "todos".
	Todos []string `json:"todos,omitempty"`
}

func encode(items []model.Snapshot) ([]byte, error) {
	out := make([]wireSnapshot, 0, len(items))
	for _, item := range items {
		w := wireSnapshot{
			ID:    item.ID,
			Name:  item.Name,
			Tasks: model.CloneTasks(item.Tasks),
		}
		if !item.SavedAt.IsZero() {
			at := item.SavedAt.UTC()
			w.SavedAt = &at
		}
		out = append(out, w)
	}
	return json.Marshal(out)
}

// decode parses the stored collection, returning how many entries were
// skipped for having no usable name.
func decode(raw string) ([]model.Snapshot, int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, 0, nil
	}
	var wire []wireSnapshot
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, 0, err
	}
	out := make([]model.Snapshot, 0, len(wire))
	dropped := 0
	for _, w := range wire {
		if strings.TrimSpace(w.Name) == "" {
			dropped++
			continue
		}
		snap := model.Snapshot{ID: w.ID, Name: w.Name, Tasks: make([]model.Task, 0, len(w.Tasks))}
		if w.SavedAt != nil {
			snap.SavedAt = *w.SavedAt
		}
		tasks := w.Tasks
		if tasks == nil && w.Todos != nil {
			for _, text := range w.Todos {
				tasks = append(tasks, model.Task{Text: text})
			}
		}
		for _, task := range tasks {
			if task.Validate() != nil {
				continue
			}
			snap.Tasks = append(snap.Tasks, task)
		}
		out = append(out, snap)
	}
	return out, dropped, nil
}
