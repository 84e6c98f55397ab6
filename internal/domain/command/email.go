package command

import (
	"errors"
	"fmt"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// EmailCommand sends an email to every member of a group or of a tag. Exactly
// one of Group and Tag is set.
type EmailCommand struct {
	Group   *valueobject.Group
	Tag     *valueobject.Tag
	Subject valueobject.Subject
	Body    valueobject.Body
}

func NewEmailCommand(
	group *valueobject.Group,
	tag *valueobject.Tag,
	subject valueobject.Subject,
	body valueobject.Body,
) *EmailCommand {
	return &EmailCommand{Group: group, Tag: tag, Subject: subject, Body: body}
}

func (c *EmailCommand) Execute(m Model) (Result, error) {
	recipients, err := m.EmailRecipients(c.Group, c.Tag)
	if err != nil {
		switch {
		case errors.Is(err, errorz.ErrGroupNotFound):
			return Result{}, fmt.Errorf("Group '%s' does not exist in the club book", *c.Group)
		case errors.Is(err, errorz.ErrTagNotFound):
			return Result{}, fmt.Errorf("Tag '%s' does not exist in the club book", *c.Tag)
		default:
			return Result{}, err
		}
	}
	if err := m.SendEmail(recipients, c.Subject, c.Body); err != nil {
		return Result{}, fmt.Errorf("Error occurred while sending the email: %v", err)
	}
	return Result{Feedback: fmt.Sprintf("Email sent to: %s", recipients)}, nil
}

// ChangePicCommand replaces the logged-in member's profile photo.
type ChangePicCommand struct {
	snapshot
	Path string
}

func NewChangePicCommand(path string) *ChangePicCommand {
	return &ChangePicCommand{Path: path}
}

func (c *ChangePicCommand) Preprocess(m Model) error {
	if _, ok := m.LoggedInMember(); !ok {
		return errors.New(MessageNotLoggedIn)
	}
	return nil
}

func (c *ChangePicCommand) Execute(m Model) (Result, error) {
	member, err := m.ChangeProfilePhoto(c.Path)
	if err != nil {
		return Result{}, fmt.Errorf("Error occurred while changing the profile photo: %v", err)
	}
	return Result{Feedback: fmt.Sprintf("Profile photo changed for: %s", member.Name)}, nil
}
