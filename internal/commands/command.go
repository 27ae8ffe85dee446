package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd  Type = "add"
	TypeDone Type = "done"
	TypeRm   Type = "rm"
	TypeSave Type = "save"
	TypeLoad Type = "load"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

// IndexArgs carries a zero-based index; the palette accepts 1-based numbers.
type IndexArgs struct {
	Index int
}

type SaveArgs struct {
	Name string
}

type Command struct {
	Type  Type
	Raw   string
	Add   *AddArgs
	Index *IndexArgs
	Save  *SaveArgs
}

var aliases = map[string]Type{
	"complete": TypeDone,
	"toggle":   TypeDone,
	"delete":   TypeRm,
	"del":      TypeRm,
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)
	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}

	switch typ {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeDone, TypeRm, TypeLoad:
		return parseIndex(input, typ, rest)
	case TypeSave:
		return parseSave(input, rest)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: rest}}, nil
}

func parseIndex(raw string, typ Type, rest string) (Command, error) {
	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a single item number", typ)}
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s: %q is not an item number", typ, fields[0])}
	}
	return Command{Type: typ, Raw: raw, Index: &IndexArgs{Index: n - 1}}, nil
}

func parseSave(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "save requires a list name"}
	}
	return Command{Type: TypeSave, Raw: raw, Save: &SaveArgs{Name: rest}}, nil
}
