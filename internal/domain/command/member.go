package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// AddCommand adds a member to the club book.
type AddCommand struct {
	snapshot
	ToAdd entity.Member
}

func NewAddCommand(toAdd entity.Member) *AddCommand {
	return &AddCommand{ToAdd: toAdd}
}

func (c *AddCommand) Execute(m Model) (Result, error) {
	if err := m.AddMember(c.ToAdd); err != nil {
		if errors.Is(err, errorz.ErrDuplicateMember) {
			return Result{}, errors.New("This person already exists in the club book")
		}
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("New member added: %s", c.ToAdd)}, nil
}

// EditMemberDescriptor carries the subset of fields an edit replaces. Nil
// fields keep the target's value.
type EditMemberDescriptor struct {
	Name   *valueobject.Name
	Phone  *valueobject.Phone
	Email  *valueobject.Email
	Matric *valueobject.MatricNumber
	Group  *valueobject.Group
	Tags   []valueobject.Tag
}

// Any reports whether the descriptor edits at least one field.
func (d EditMemberDescriptor) Any() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil ||
		d.Matric != nil || d.Group != nil || d.Tags != nil
}

func (d EditMemberDescriptor) apply(target entity.Member) entity.Member {
	edited := target.Copy()
	if d.Name != nil {
		edited.Name = *d.Name
	}
	if d.Phone != nil {
		edited.Phone = *d.Phone
	}
	if d.Email != nil {
		edited.Email = *d.Email
	}
	if d.Matric != nil {
		edited.Matric = *d.Matric
	}
	if d.Group != nil {
		edited.Group = *d.Group
	}
	if d.Tags != nil {
		edited.Tags = append([]valueobject.Tag(nil), d.Tags...)
	}
	return edited
}

// EditCommand edits the member at a 1-based index of the filtered list.
type EditCommand struct {
	snapshot
	Index      int
	Descriptor EditMemberDescriptor

	target entity.Member
	edited entity.Member
}

func NewEditCommand(index int, descriptor EditMemberDescriptor) *EditCommand {
	return &EditCommand{Index: index, Descriptor: descriptor}
}

func (c *EditCommand) Preprocess(m Model) error {
	shown := m.FilteredMembers()
	if c.Index < 1 || c.Index > len(shown) {
		return errors.New(MessageInvalidMemberIndex)
	}
	c.target = shown[c.Index-1]
	c.edited = c.Descriptor.apply(c.target)
	return nil
}

func (c *EditCommand) Execute(m Model) (Result, error) {
	if err := m.UpdateMember(c.target, c.edited); err != nil {
		if errors.Is(err, errorz.ErrDuplicateMember) {
			return Result{}, errors.New("This person already exists in the club book")
		}
		return Result{}, err
	}
	m.UpdateFilteredMembers(nil)
	return Result{Feedback: fmt.Sprintf("Edited member: %s", c.edited)}, nil
}

// DeleteCommand removes the member at a 1-based index of the filtered list.
type DeleteCommand struct {
	snapshot
	Index int

	target entity.Member
}

func NewDeleteCommand(index int) *DeleteCommand {
	return &DeleteCommand{Index: index}
}

func (c *DeleteCommand) Preprocess(m Model) error {
	shown := m.FilteredMembers()
	if c.Index < 1 || c.Index > len(shown) {
		return errors.New(MessageInvalidMemberIndex)
	}
	c.target = shown[c.Index-1]
	return nil
}

func (c *DeleteCommand) Execute(m Model) (Result, error) {
	if err := m.DeleteMember(c.target); err != nil {
		if errors.Is(err, errorz.ErrMemberNotFound) {
			return Result{}, fmt.Errorf("%w: the target member cannot be missing", errorz.ErrInternal)
		}
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Deleted member: %s", c.target)}, nil
}

// FindCommand filters the member list by case-insensitive substring match on
// the name.
type FindCommand struct {
	Keywords []string
}

func NewFindCommand(keywords []string) *FindCommand {
	return &FindCommand{Keywords: keywords}
}

func (c *FindCommand) Execute(m Model) (Result, error) {
	keywords := c.Keywords
	m.UpdateFilteredMembers(func(member entity.Member) bool {
		name := strings.ToLower(member.Name.String())
		for _, kw := range keywords {
			if strings.Contains(name, strings.ToLower(kw)) {
				return true
			}
		}
		return false
	})
	return Result{Feedback: fmt.Sprintf(MessageMembersListed, len(m.FilteredMembers()))}, nil
}

// ListCommand clears the member filter.
type ListCommand struct{}

func NewListCommand() *ListCommand { return &ListCommand{} }

func (c *ListCommand) Execute(m Model) (Result, error) {
	m.UpdateFilteredMembers(nil)
	return Result{Feedback: "Listed all members"}, nil
}
