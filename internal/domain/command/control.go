package command

import (
	"errors"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
)

// UndoCommand reverts the most recent undoable command.
type UndoCommand struct {
	history *UndoRedoStack
}

func NewUndoCommand() *UndoCommand { return &UndoCommand{} }

func (c *UndoCommand) SetHistory(stack *UndoRedoStack) { c.history = stack }

func (c *UndoCommand) Execute(m Model) (Result, error) {
	if err := c.history.Undo(m); err != nil {
		if errors.Is(err, errorz.ErrNoUndoable) {
			return Result{}, errors.New("No more commands to undo!")
		}
		return Result{}, err
	}
	return Result{Feedback: "Undo success!"}, nil
}

// RedoCommand re-applies the most recently undone command.
type RedoCommand struct {
	history *UndoRedoStack
}

func NewRedoCommand() *RedoCommand { return &RedoCommand{} }

func (c *RedoCommand) SetHistory(stack *UndoRedoStack) { c.history = stack }

func (c *RedoCommand) Execute(m Model) (Result, error) {
	if err := c.history.Redo(m); err != nil {
		if errors.Is(err, errorz.ErrNoRedoable) {
			return Result{}, errors.New("No more commands to redo!")
		}
		return Result{}, err
	}
	return Result{Feedback: "Redo success!"}, nil
}

// ClearCommand empties the club book and drops the undo/redo history with it.
type ClearCommand struct {
	history *UndoRedoStack
}

func NewClearCommand() *ClearCommand { return &ClearCommand{} }

func (c *ClearCommand) SetHistory(stack *UndoRedoStack) { c.history = stack }

func (c *ClearCommand) Execute(m Model) (Result, error) {
	m.ResetData(entity.NewClubBook())
	m.ShowAll()
	m.LogOut()
	c.history.Clear()
	return Result{Feedback: "Club book has been cleared!"}, nil
}

// HelpCommand lists the available commands.
type HelpCommand struct{}

func NewHelpCommand() *HelpCommand { return &HelpCommand{} }

func (c *HelpCommand) Execute(Model) (Result, error) {
	return Result{Feedback: "Available commands: add, edit, delete, find, list, signup, login, logout, " +
		"undo, redo, clear, import, export, addpoll, deletepoll, vote, addtask, deletetask, " +
		"removegroup, deletetag, email, changepic, help, exit"}, nil
}

// ExitCommand terminates the application.
type ExitCommand struct{}

func NewExitCommand() *ExitCommand { return &ExitCommand{} }

func (c *ExitCommand) Execute(Model) (Result, error) {
	return Result{Feedback: "Exiting Club Connect as requested ...", Exit: true}, nil
}
