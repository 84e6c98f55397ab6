// Package command defines the typed commands the parser produces, the
// undo/redo history they are recorded in, and the model contract they run
// against.
package command

import (
	"fmt"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// Model is the mutation and query surface commands need from the model
// facade. The facade in the service package implements it.
type Model interface {
	ClubBook() *entity.ClubBook
	ResetData(book *entity.ClubBook)

	AddMember(member entity.Member) error
	UpdateMember(target, edited entity.Member) error
	DeleteMember(target entity.Member) error

	AddPoll(poll entity.Poll) error
	DeletePoll(target entity.Poll) error
	VoteInPoll(target entity.Poll, answerIndex int, voter valueobject.MatricNumber) error

	AddTask(description valueobject.Description, date valueobject.Date, due valueobject.Time) (entity.Task, error)
	DeleteTask(target entity.Task) error

	RemoveGroup(group valueobject.Group) error
	DeleteTag(tag valueobject.Tag) error

	LogIn(username, password string) (entity.Member, bool)
	LogOut()
	LoggedInMember() (entity.Member, bool)

	FilteredMembers() []entity.Member
	FilteredPolls() []entity.Poll
	FilteredTasks() []entity.Task
	UpdateFilteredMembers(pred func(entity.Member) bool)
	UpdateFilteredPolls(pred func(entity.Poll) bool)
	UpdateFilteredTasks(pred func(entity.Task) bool)
	ShowAll()

	ImportMembers(path string) (int, error)
	ExportMembers(path string) error
	EmailRecipients(group *valueobject.Group, tag *valueobject.Tag) (string, error)
	SendEmail(recipients string, subject valueobject.Subject, body valueobject.Body) error
	ChangeProfilePhoto(sourcePath string) (entity.Member, error)
}

// Result is what a command hands back to the user.
type Result struct {
	Feedback string
	Exit     bool
	Err      bool
}

// Command is a single unit of work produced by the parser.
type Command interface {
	Execute(m Model) (Result, error)
}

// Undoable is a mutating command that can restore the prior club book state.
// The lifecycle is Preprocess (resolve preconditions), SaveSnapshot, Execute;
// redo re-runs Execute on the restored state.
type Undoable interface {
	Command
	Preprocess(m Model) error
	SaveSnapshot(m Model)
	Undo(m Model) error
}

// HistoryAware commands receive the undo/redo stack before execution.
type HistoryAware interface {
	SetHistory(stack *UndoRedoStack)
}

// snapshot is the undo strategy shared by all undoable commands: keep a deep
// copy of the club book taken just before the mutation, restore it on undo
// and reset every filter to show-all.
type snapshot struct {
	saved *entity.ClubBook
}

func (s *snapshot) Preprocess(Model) error { return nil }

func (s *snapshot) SaveSnapshot(m Model) {
	s.saved = m.ClubBook().Copy()
}

func (s *snapshot) Undo(m Model) error {
	if s.saved == nil {
		return fmt.Errorf("%w: undo without a saved snapshot", errorz.ErrInternal)
	}
	m.ResetData(s.saved)
	m.ShowAll()
	return nil
}
