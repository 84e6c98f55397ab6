// Package service implements the use-case layer: the model facade guarding
// the club book, the logic facade executing command lines, and the backup
// scheduler.
package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
	"github.com/nusclubs/clubconnect/internal/ports/secondary"
)

// Model is the single gate through which commands read and mutate the club
// book. It keeps the filter predicates, the logged-in member and the change
// observers; observers run synchronously, in subscription order, after each
// mutation commits.
type Model struct {
	book *entity.ClubBook

	memberPred func(entity.Member) bool
	pollPred   func(entity.Poll) bool
	taskPred   func(entity.Task) bool
	tagPred    func(valueobject.Tag) bool

	loggedIn *valueobject.MatricNumber

	observers []func(*entity.ClubBook)

	exchange secondary.MemberExchange
	email    secondary.EmailClient
	photos   secondary.PhotoStorage
	log      *zap.SugaredLogger
}

func NewModel(
	initial *entity.ClubBook,
	exchange secondary.MemberExchange,
	email secondary.EmailClient,
	photos secondary.PhotoStorage,
	log *zap.SugaredLogger,
) *Model {
	if initial == nil {
		initial = entity.NewClubBook()
	}
	return &Model{
		book:     initial,
		exchange: exchange,
		email:    email,
		photos:   photos,
		log:      log,
	}
}

// Subscribe registers a change observer. Observers are notified after every
// mutation, before the triggering command returns.
func (m *Model) Subscribe(observer func(*entity.ClubBook)) {
	m.observers = append(m.observers, observer)
}

func (m *Model) notify() {
	for _, observer := range m.observers {
		observer(m.book)
	}
}

func (m *Model) ClubBook() *entity.ClubBook { return m.book }

func (m *Model) ResetData(book *entity.ClubBook) {
	m.book.ResetData(book)
	m.notify()
}

func (m *Model) AddMember(member entity.Member) error {
	if err := m.book.AddMember(member); err != nil {
		return err
	}
	m.memberPred = nil
	m.notify()
	return nil
}

func (m *Model) UpdateMember(target, edited entity.Member) error {
	if err := m.book.UpdateMember(target, edited); err != nil {
		return err
	}
	m.notify()
	return nil
}

func (m *Model) DeleteMember(target entity.Member) error {
	if err := m.book.RemoveMember(target); err != nil {
		return err
	}
	m.notify()
	return nil
}

func (m *Model) AddPoll(poll entity.Poll) error {
	if err := m.book.AddPoll(poll); err != nil {
		return err
	}
	m.pollPred = nil
	m.notify()
	return nil
}

func (m *Model) DeletePoll(target entity.Poll) error {
	if err := m.book.RemovePoll(target); err != nil {
		return err
	}
	m.notify()
	return nil
}

func (m *Model) VoteInPoll(target entity.Poll, answerIndex int, voter valueobject.MatricNumber) error {
	if err := m.book.VoteInPoll(target, answerIndex, voter); err != nil {
		return err
	}
	m.notify()
	return nil
}

// AddTask schedules a task the logged-in member assigns to themselves.
func (m *Model) AddTask(
	description valueobject.Description,
	date valueobject.Date,
	due valueobject.Time,
) (entity.Task, error) {
	member, ok := m.LoggedInMember()
	if !ok {
		return entity.Task{}, errorz.ErrNotLoggedIn
	}
	task := entity.NewTask(description, date, due, member.Name, member.Name)
	if err := m.book.AddTask(task); err != nil {
		return entity.Task{}, err
	}
	m.notify()
	return task, nil
}

// DeleteTask removes target if the logged-in member is both its assignor and
// its assignee.
func (m *Model) DeleteTask(target entity.Task) error {
	member, ok := m.LoggedInMember()
	if !ok {
		return errorz.ErrNotLoggedIn
	}
	if !member.Name.EqualFold(target.Assignor) || !member.Name.EqualFold(target.Assignee) {
		return errorz.ErrTaskCannotBeDeleted
	}
	if err := m.book.RemoveTask(target); err != nil {
		return err
	}
	m.notify()
	return nil
}

func (m *Model) RemoveGroup(group valueobject.Group) error {
	if err := m.book.RemoveGroup(group); err != nil {
		return err
	}
	m.notify()
	return nil
}

func (m *Model) DeleteTag(tag valueobject.Tag) error {
	if err := m.book.DeleteTag(tag); err != nil {
		return err
	}
	m.memberPred = nil
	m.notify()
	return nil
}

func (m *Model) LogIn(username, password string) (entity.Member, bool) {
	member, ok := m.book.LogIn(username, password)
	if !ok {
		return entity.Member{}, false
	}
	matric := member.Matric
	m.loggedIn = &matric
	return member, true
}

func (m *Model) LogOut() {
	m.loggedIn = nil
}

// LoggedInMember resolves the logged-in member against the current member
// list, so an edit made after login is reflected and a deleted member is no
// longer considered logged in.
func (m *Model) LoggedInMember() (entity.Member, bool) {
	if m.loggedIn == nil {
		return entity.Member{}, false
	}
	for _, member := range m.book.Members() {
		if member.Matric == *m.loggedIn {
			return member, true
		}
	}
	return entity.Member{}, false
}

func (m *Model) FilteredMembers() []entity.Member {
	return filter(m.book.Members(), m.memberPred)
}

func (m *Model) FilteredPolls() []entity.Poll {
	return filter(m.book.Polls(), m.pollPred)
}

func (m *Model) FilteredTasks() []entity.Task {
	return filter(m.book.Tasks(), m.taskPred)
}

func (m *Model) FilteredTags() []valueobject.Tag {
	return filter(m.book.Tags(), m.tagPred)
}

func (m *Model) UpdateFilteredMembers(pred func(entity.Member) bool) { m.memberPred = pred }
func (m *Model) UpdateFilteredPolls(pred func(entity.Poll) bool)     { m.pollPred = pred }
func (m *Model) UpdateFilteredTasks(pred func(entity.Task) bool)     { m.taskPred = pred }
func (m *Model) UpdateFilteredTags(pred func(valueobject.Tag) bool)  { m.tagPred = pred }

// ShowAll resets every filter to the show-all predicate. Undo and redo call
// this so the displayed lists always match the restored state.
func (m *Model) ShowAll() {
	m.memberPred = nil
	m.pollPred = nil
	m.taskPred = nil
	m.tagPred = nil
}

func filter[T any](items []T, pred func(T) bool) []T {
	if pred == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// ImportMembers stages the file's members on a copy of the club book and
// commits only when every row was added, so a duplicate or malformed row
// leaves no partial state.
func (m *Model) ImportMembers(path string) (int, error) {
	if m.exchange == nil {
		return 0, errors.New("no member exchange configured")
	}
	members, err := m.exchange.ReadMembers(path)
	if err != nil {
		return 0, err
	}
	staged := m.book.Copy()
	for _, member := range members {
		if err := staged.AddMember(member); err != nil {
			return 0, err
		}
	}
	m.book.ResetData(staged)
	m.notify()
	return len(members), nil
}

func (m *Model) ExportMembers(path string) error {
	if m.exchange == nil {
		return errors.New("no member exchange configured")
	}
	return m.exchange.WriteMembers(path, m.book.Members())
}

// EmailRecipients joins the email addresses of every member in the group or
// carrying the tag, comma separated. Exactly one of group and tag is non-nil.
func (m *Model) EmailRecipients(group *valueobject.Group, tag *valueobject.Tag) (string, error) {
	var recipients []string
	for _, member := range m.book.Members() {
		switch {
		case group != nil && member.Group.Equal(*group):
			recipients = append(recipients, member.Email.String())
		case tag != nil && member.HasTag(*tag):
			recipients = append(recipients, member.Email.String())
		}
	}
	if len(recipients) == 0 {
		if group != nil {
			return "", errorz.ErrGroupNotFound
		}
		return "", errorz.ErrTagNotFound
	}
	return strings.Join(recipients, ","), nil
}

func (m *Model) SendEmail(recipients string, subject valueobject.Subject, body valueobject.Body) error {
	if m.email == nil {
		return errors.New("no email client configured")
	}
	return m.email.Send(recipients, subject.String(), body.String())
}

// ChangeProfilePhoto copies the photo at sourcePath into the application's
// photo directory under the logged-in member's matric number and records the
// stored path on the member.
func (m *Model) ChangeProfilePhoto(sourcePath string) (entity.Member, error) {
	member, ok := m.LoggedInMember()
	if !ok {
		return entity.Member{}, errorz.ErrNotLoggedIn
	}
	if m.photos == nil {
		return entity.Member{}, errors.New("no photo storage configured")
	}
	stored, err := m.photos.CopyPhoto(sourcePath, member.Matric.String())
	if err != nil {
		return entity.Member{}, err
	}
	edited := member.Copy()
	edited.ProfilePhotoPath = stored
	if err := m.book.UpdateMember(member, edited); err != nil {
		return entity.Member{}, err
	}
	m.notify()
	return edited, nil
}
