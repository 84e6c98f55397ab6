package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nusclubs/clubconnect/internal/domain/command"
	"github.com/nusclubs/clubconnect/internal/domain/parser"
)

// Logic is the single entry point for executing a command line: parse,
// preprocess, execute, record. Every error from any stage becomes an error
// result; a failed command leaves no history side effect.
type Logic struct {
	model   command.Model
	history *command.UndoRedoStack
	log     *zap.SugaredLogger
}

func NewLogic(model command.Model, log *zap.SugaredLogger) *Logic {
	return &Logic{
		model:   model,
		history: command.NewUndoRedoStack(),
		log:     log,
	}
}

// History exposes the undo/redo stack, mainly for tests.
func (l *Logic) History() *command.UndoRedoStack { return l.history }

func (l *Logic) Execute(line string) command.Result {
	invocation := uuid.NewString()
	l.log.Infow("executing command", "invocation", invocation, "line", line)

	cmd, err := parser.Parse(line)
	if err != nil {
		l.log.Infow("parse failed", "invocation", invocation, "error", err)
		return command.Result{Feedback: err.Error(), Err: true}
	}

	if aware, ok := cmd.(command.HistoryAware); ok {
		aware.SetHistory(l.history)
	}

	if undoable, ok := cmd.(command.Undoable); ok {
		return l.executeUndoable(invocation, undoable)
	}

	result, err := cmd.Execute(l.model)
	if err != nil {
		l.log.Infow("command failed", "invocation", invocation, "error", err)
		return command.Result{Feedback: err.Error(), Err: true}
	}
	return result
}

func (l *Logic) executeUndoable(invocation string, cmd command.Undoable) command.Result {
	if err := cmd.Preprocess(l.model); err != nil {
		l.log.Infow("preprocess failed", "invocation", invocation, "error", err)
		return command.Result{Feedback: err.Error(), Err: true}
	}
	cmd.SaveSnapshot(l.model)
	result, err := cmd.Execute(l.model)
	if err != nil {
		l.log.Infow("command failed", "invocation", invocation, "error", err)
		return command.Result{Feedback: err.Error(), Err: true}
	}
	l.history.Record(cmd)
	return result
}
