package command

import (
	"errors"
	"fmt"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// AddPollCommand adds a poll to the club book.
type AddPollCommand struct {
	snapshot
	ToAdd entity.Poll
}

func NewAddPollCommand(toAdd entity.Poll) *AddPollCommand {
	return &AddPollCommand{ToAdd: toAdd}
}

func (c *AddPollCommand) Execute(m Model) (Result, error) {
	if err := m.AddPoll(c.ToAdd); err != nil {
		if errors.Is(err, errorz.ErrDuplicatePoll) {
			return Result{}, errors.New("This poll already exists in the club book")
		}
		return Result{}, err
	}
	m.UpdateFilteredPolls(nil)
	return Result{Feedback: fmt.Sprintf("New poll added: %s", c.ToAdd)}, nil
}

// DeletePollCommand removes the poll at a 1-based index of the filtered list.
type DeletePollCommand struct {
	snapshot
	Index int

	target entity.Poll
}

func NewDeletePollCommand(index int) *DeletePollCommand {
	return &DeletePollCommand{Index: index}
}

func (c *DeletePollCommand) Preprocess(m Model) error {
	shown := m.FilteredPolls()
	if c.Index < 1 || c.Index > len(shown) {
		return errors.New(MessageInvalidPollIndex)
	}
	c.target = shown[c.Index-1]
	return nil
}

func (c *DeletePollCommand) Execute(m Model) (Result, error) {
	if err := m.DeletePoll(c.target); err != nil {
		if errors.Is(err, errorz.ErrPollNotFound) {
			return Result{}, fmt.Errorf("%w: the target poll cannot be missing", errorz.ErrInternal)
		}
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Deleted poll: %s", c.target)}, nil
}

// VoteCommand votes in a poll on behalf of the logged-in member.
type VoteCommand struct {
	snapshot
	PollIndex   int
	AnswerIndex int

	target entity.Poll
	voter  valueobject.MatricNumber
}

func NewVoteCommand(pollIndex, answerIndex int) *VoteCommand {
	return &VoteCommand{PollIndex: pollIndex, AnswerIndex: answerIndex}
}

func (c *VoteCommand) Preprocess(m Model) error {
	voter, ok := m.LoggedInMember()
	if !ok {
		return errors.New(MessageNotLoggedIn)
	}
	shown := m.FilteredPolls()
	if c.PollIndex < 1 || c.PollIndex > len(shown) {
		return errors.New(MessageInvalidPollIndex)
	}
	c.target = shown[c.PollIndex-1]
	if c.AnswerIndex < 1 || c.AnswerIndex > len(c.target.Answers) {
		return errors.New(MessageInvalidAnswerIndex)
	}
	c.voter = voter.Matric
	return nil
}

func (c *VoteCommand) Execute(m Model) (Result, error) {
	if err := m.VoteInPoll(c.target, c.AnswerIndex-1, c.voter); err != nil {
		switch {
		case errors.Is(err, errorz.ErrUserAlreadyVoted):
			return Result{}, errors.New("You have already voted in this poll")
		case errors.Is(err, errorz.ErrPollNotFound):
			return Result{}, fmt.Errorf("%w: the target poll cannot be missing", errorz.ErrInternal)
		case errors.Is(err, errorz.ErrAnswerNotFound):
			return Result{}, fmt.Errorf("%w: the target answer cannot be missing", errorz.ErrInternal)
		default:
			return Result{}, err
		}
	}
	m.UpdateFilteredPolls(nil)
	return Result{Feedback: "Your vote has been received"}, nil
}
