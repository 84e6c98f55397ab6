package command

import (
	"errors"
	"fmt"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// RemoveGroupCommand moves every member of a group into the mandatory group.
type RemoveGroupCommand struct {
	snapshot
	Group valueobject.Group
}

func NewRemoveGroupCommand(group valueobject.Group) *RemoveGroupCommand {
	return &RemoveGroupCommand{Group: group}
}

func (c *RemoveGroupCommand) Execute(m Model) (Result, error) {
	if err := m.RemoveGroup(c.Group); err != nil {
		switch {
		case errors.Is(err, errorz.ErrGroupCannotBeRemoved):
			return Result{}, fmt.Errorf("The mandatory group '%s' cannot be removed", valueobject.MandatoryGroup)
		case errors.Is(err, errorz.ErrGroupNotFound):
			return Result{}, fmt.Errorf("Group '%s' does not exist in the club book", c.Group)
		default:
			return Result{}, err
		}
	}
	return Result{Feedback: fmt.Sprintf("Removed group: %s", c.Group)}, nil
}

// DeleteTagCommand removes a tag from every member carrying it.
type DeleteTagCommand struct {
	snapshot
	Tag valueobject.Tag
}

func NewDeleteTagCommand(tag valueobject.Tag) *DeleteTagCommand {
	return &DeleteTagCommand{Tag: tag}
}

func (c *DeleteTagCommand) Execute(m Model) (Result, error) {
	if err := m.DeleteTag(c.Tag); err != nil {
		if errors.Is(err, errorz.ErrTagNotFound) {
			return Result{}, fmt.Errorf("Tag '%s' does not exist in the club book", c.Tag)
		}
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Deleted tag: %s", c.Tag)}, nil
}
