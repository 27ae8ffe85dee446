package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add  func(AddArgs) (Result, error)
	Done func(IndexArgs) (Result, error)
	Rm   func(IndexArgs) (Result, error)
	Save func(SaveArgs) (Result, error)
	Load func(IndexArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Index)
	case TypeRm:
		if handlers.Rm == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "rm handler not configured"}
		}
		return handlers.Rm(*cmd.Index)
	case TypeSave:
		if handlers.Save == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "save handler not configured"}
		}
		return handlers.Save(*cmd.Save)
	case TypeLoad:
		if handlers.Load == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "load handler not configured"}
		}
		return handlers.Load(*cmd.Index)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
