// Package errorz holds the sentinel errors shared across the domain layer.
package errorz

import "errors"

var (
	// ErrDuplicateMember indicates a member with the same matric number already exists.
	ErrDuplicateMember = errors.New("member already exists in the club book")
	// ErrMemberNotFound indicates the targeted member is not in the club book.
	ErrMemberNotFound = errors.New("member not found in the club book")
	// ErrDuplicatePoll indicates a poll with the same question and answers already exists.
	ErrDuplicatePoll = errors.New("poll already exists in the club book")
	// ErrPollNotFound indicates the targeted poll is not in the club book.
	ErrPollNotFound = errors.New("poll not found in the club book")
	// ErrAnswerNotFound indicates the answer index does not resolve to an answer.
	ErrAnswerNotFound = errors.New("answer not found in the poll")
	// ErrUserAlreadyVoted indicates the voter's matric number is already in the pollee set.
	ErrUserAlreadyVoted = errors.New("user has already voted in the poll")
	// ErrDuplicateTask indicates a task with the same identity already exists.
	ErrDuplicateTask = errors.New("task already exists in the club book")
	// ErrTaskNotFound indicates the targeted task is not in the club book.
	ErrTaskNotFound = errors.New("task not found in the club book")
	// ErrTaskCannotBeDeleted indicates the caller is not both assignor and assignee of the task.
	ErrTaskCannotBeDeleted = errors.New("task cannot be deleted by this member")
	// ErrTagNotFound indicates the tag is not in the club book.
	ErrTagNotFound = errors.New("tag not found in the club book")
	// ErrGroupNotFound indicates no member belongs to the group.
	ErrGroupNotFound = errors.New("group not found in the club book")
	// ErrGroupCannotBeRemoved indicates an attempt to remove the mandatory group.
	ErrGroupCannotBeRemoved = errors.New("group cannot be removed")
	// ErrNoUndoable indicates the done stack is empty.
	ErrNoUndoable = errors.New("no command to undo")
	// ErrNoRedoable indicates the undone stack is empty.
	ErrNoRedoable = errors.New("no command to redo")
	// ErrNotLoggedIn indicates an identity-requiring command ran without a login.
	ErrNotLoggedIn = errors.New("no member is logged in")
	// ErrDataConversion indicates a file's contents could not be converted into
	// domain values.
	ErrDataConversion = errors.New("data conversion error")

	// ErrInternal marks an invariant violation the code believes unreachable. It is
	// surfaced as an error result instead of crashing the process so tests can detect it.
	ErrInternal = errors.New("internal invariant violation")
)
