package model

import (
	"fmt"
	"strings"
)

// TaskList is the ordered live list. A task's identity is its index.
type TaskList struct {
	tasks []Task
}

func NewTaskList(tasks []Task) *TaskList {
	return &TaskList{tasks: CloneTasks(tasks)}
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}

func (l *TaskList) Tasks() []Task {
	return CloneTasks(l.tasks)
}

func (l *TaskList) At(index int) (Task, bool) {
	if index < 0 || index >= len(l.tasks) {
		return Task{}, false
	}
	return l.tasks[index], true
}

func (l *TaskList) Add(text string) (MutationKind, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	l.tasks = append(l.tasks, Task{Text: text})
	return MutationAdd, nil
}

func (l *TaskList) Toggle(index int) (MutationKind, error) {
	if err := l.checkIndex(index); err != nil {
		return "", err
	}
	l.tasks[index].Done = !l.tasks[index].Done
	return MutationComplete, nil
}

func (l *TaskList) Remove(index int) (MutationKind, error) {
	if err := l.checkIndex(index); err != nil {
		return "", err
	}
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return MutationDelete, nil
}

func (l *TaskList) ReplaceAll(tasks []Task) {
	l.tasks = CloneTasks(tasks)
}

// Progress is the done fraction in [0,1]; an empty list reports 0.
func (l *TaskList) Progress() float64 {
	if len(l.tasks) == 0 {
		return 0
	}
	done := 0
	for _, task := range l.tasks {
		if task.Done {
			done++
		}
	}
	return float64(done) / float64(len(l.tasks))
}

func (l *TaskList) checkIndex(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(l.tasks))
	}
	return nil
}
