package command

import (
	"fmt"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
)

// UndoRedoStack keeps the executed and undone undoable commands. It is not
// persisted across restarts.
type UndoRedoStack struct {
	done   []Undoable
	undone []Undoable
}

func NewUndoRedoStack() *UndoRedoStack {
	return &UndoRedoStack{}
}

// Record pushes a successfully executed command and clears the redo stack.
func (s *UndoRedoStack) Record(c Undoable) {
	s.done = append(s.done, c)
	s.undone = nil
}

// Undo reverts the most recent mutation and resets filters to show-all.
func (s *UndoRedoStack) Undo(m Model) error {
	if len(s.done) == 0 {
		return errorz.ErrNoUndoable
	}
	c := s.done[len(s.done)-1]
	s.done = s.done[:len(s.done)-1]
	if err := c.Undo(m); err != nil {
		return err
	}
	s.undone = append(s.undone, c)
	return nil
}

// Redo re-applies the most recently undone mutation. Re-executing a command
// that already succeeded on this exact state cannot fail; if it does, the
// stack surfaces the invariant violation instead of crashing.
func (s *UndoRedoStack) Redo(m Model) error {
	if len(s.undone) == 0 {
		return errorz.ErrNoRedoable
	}
	c := s.undone[len(s.undone)-1]
	s.undone = s.undone[:len(s.undone)-1]
	c.SaveSnapshot(m)
	if _, err := c.Execute(m); err != nil {
		return fmt.Errorf("%w: redo failed: %v", errorz.ErrInternal, err)
	}
	m.ShowAll()
	s.done = append(s.done, c)
	return nil
}

func (s *UndoRedoStack) CanUndo() bool { return len(s.done) > 0 }
func (s *UndoRedoStack) CanRedo() bool { return len(s.undone) > 0 }

// Clear drops both stacks.
func (s *UndoRedoStack) Clear() {
	s.done = nil
	s.undone = nil
}
