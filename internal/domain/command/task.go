package command

import (
	"errors"
	"fmt"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// AddTaskCommand schedules a task assigned by the logged-in member to
// themselves.
type AddTaskCommand struct {
	snapshot
	Description valueobject.Description
	Date        valueobject.Date
	Time        valueobject.Time
}

func NewAddTaskCommand(
	description valueobject.Description,
	date valueobject.Date,
	due valueobject.Time,
) *AddTaskCommand {
	return &AddTaskCommand{Description: description, Date: date, Time: due}
}

func (c *AddTaskCommand) Preprocess(m Model) error {
	if _, ok := m.LoggedInMember(); !ok {
		return errors.New(MessageNotLoggedIn)
	}
	return nil
}

func (c *AddTaskCommand) Execute(m Model) (Result, error) {
	task, err := m.AddTask(c.Description, c.Date, c.Time)
	if err != nil {
		if errors.Is(err, errorz.ErrDuplicateTask) {
			return Result{}, errors.New("This task already exists in the club book")
		}
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("New task added: %s", task)}, nil
}

// DeleteTaskCommand deletes the task at a 1-based index of the filtered list.
// Only the member who is both assignor and assignee may delete it.
type DeleteTaskCommand struct {
	snapshot
	Index int

	target entity.Task
}

func NewDeleteTaskCommand(index int) *DeleteTaskCommand {
	return &DeleteTaskCommand{Index: index}
}

func (c *DeleteTaskCommand) Preprocess(m Model) error {
	if _, ok := m.LoggedInMember(); !ok {
		return errors.New(MessageNotLoggedIn)
	}
	shown := m.FilteredTasks()
	if c.Index < 1 || c.Index > len(shown) {
		return errors.New(MessageInvalidTaskIndex)
	}
	c.target = shown[c.Index-1]
	return nil
}

func (c *DeleteTaskCommand) Execute(m Model) (Result, error) {
	if err := m.DeleteTask(c.target); err != nil {
		switch {
		case errors.Is(err, errorz.ErrTaskCannotBeDeleted):
			return Result{}, errors.New("This task cannot be deleted as you are neither its assignor nor its assignee")
		case errors.Is(err, errorz.ErrTaskNotFound):
			return Result{}, fmt.Errorf("%w: the target task cannot be missing", errorz.ErrInternal)
		default:
			return Result{}, err
		}
	}
	return Result{Feedback: fmt.Sprintf("Deleted task: %s", c.target)}, nil
}
