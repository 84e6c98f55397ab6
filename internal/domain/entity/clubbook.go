package entity

import (
	"errors"
	"strings"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// ClubBook is the aggregate root owning all members, polls, tasks and the
// derived tag set. It is only mutated through the model facade, one command
// at a time.
type ClubBook struct {
	members *UniqueList[Member]
	polls   *UniqueList[Poll]
	tasks   *UniqueList[Task]
	tags    []valueobject.Tag
}

func NewClubBook() *ClubBook {
	return &ClubBook{
		members: NewUniqueList[Member](),
		polls:   NewUniqueList[Poll](),
		tasks:   NewUniqueList[Task](),
	}
}

func (b *ClubBook) Members() []Member { return b.members.Slice() }
func (b *ClubBook) Polls() []Poll     { return b.polls.Slice() }
func (b *ClubBook) Tasks() []Task     { return b.tasks.Slice() }

func (b *ClubBook) Tags() []valueobject.Tag {
	out := make([]valueobject.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// AddMember adds member and folds its tags into the tag set.
func (b *ClubBook) AddMember(member Member) error {
	if err := b.members.Add(member); err != nil {
		return errorz.ErrDuplicateMember
	}
	b.addMemberTags(member)
	return nil
}

// UpdateMember replaces target with edited and sweeps tags the edit may have
// orphaned.
func (b *ClubBook) UpdateMember(target, edited Member) error {
	if err := b.members.Set(target, edited); err != nil {
		if errors.Is(err, ErrDuplicateElement) {
			return errorz.ErrDuplicateMember
		}
		return errorz.ErrMemberNotFound
	}
	b.addMemberTags(edited)
	b.sweepTags()
	return nil
}

// RemoveMember removes the member and sweeps tags only it referenced.
func (b *ClubBook) RemoveMember(target Member) error {
	if err := b.members.Remove(target); err != nil {
		return errorz.ErrMemberNotFound
	}
	b.sweepTags()
	return nil
}

func (b *ClubBook) AddPoll(poll Poll) error {
	if err := b.polls.Add(poll.Copy()); err != nil {
		return errorz.ErrDuplicatePoll
	}
	return nil
}

func (b *ClubBook) RemovePoll(target Poll) error {
	if err := b.polls.Remove(target); err != nil {
		return errorz.ErrPollNotFound
	}
	return nil
}

// VoteInPoll records one vote by voter for the answer at answerIndex
// (zero-based) of the poll matching target. The stored poll is replaced only
// after the vote succeeds, so a failed vote leaves no partial state.
func (b *ClubBook) VoteInPoll(target Poll, answerIndex int, voter valueobject.MatricNumber) error {
	i := b.polls.IndexOf(target)
	if i < 0 {
		return errorz.ErrPollNotFound
	}
	updated := b.polls.items[i].Copy()
	if err := updated.Vote(answerIndex, voter); err != nil {
		return err
	}
	b.polls.items[i] = updated
	return nil
}

func (b *ClubBook) AddTask(task Task) error {
	if err := b.tasks.Add(task); err != nil {
		return errorz.ErrDuplicateTask
	}
	return nil
}

func (b *ClubBook) RemoveTask(target Task) error {
	if err := b.tasks.Remove(target); err != nil {
		return errorz.ErrTaskNotFound
	}
	return nil
}

// RemoveGroup moves every member of group into the mandatory group. The
// mandatory group itself cannot be removed, and removing a group no member
// belongs to is an error. The rewrite is all-or-nothing.
func (b *ClubBook) RemoveGroup(group valueobject.Group) error {
	if group.IsMandatory() {
		return errorz.ErrGroupCannotBeRemoved
	}
	var affected []int
	for i, member := range b.members.items {
		if member.Group.Equal(group) {
			affected = append(affected, i)
		}
	}
	if len(affected) == 0 {
		return errorz.ErrGroupNotFound
	}
	for _, i := range affected {
		edited := b.members.items[i].Copy()
		edited.Group = valueobject.MandatoryGroup
		b.members.items[i] = edited
	}
	return nil
}

// DeleteTag strips tag from every member carrying it and drops it from the
// tag set.
func (b *ClubBook) DeleteTag(tag valueobject.Tag) error {
	if !containsTag(b.tags, tag) {
		return errorz.ErrTagNotFound
	}
	for i, member := range b.members.items {
		if !member.HasTag(tag) {
			continue
		}
		edited := member.Copy()
		kept := edited.Tags[:0]
		for _, t := range edited.Tags {
			if t != tag {
				kept = append(kept, t)
			}
		}
		edited.Tags = kept
		b.members.items[i] = edited
	}
	b.sweepTags()
	return nil
}

// LogIn returns the member whose credentials match, if any.
func (b *ClubBook) LogIn(username, password string) (Member, bool) {
	return b.members.Find(func(m Member) bool {
		return strings.EqualFold(m.Username.String(), username) && m.Password.Matches(password)
	})
}

// ResetData replaces all state with a deep copy of other.
func (b *ClubBook) ResetData(other *ClubBook) {
	replacement := other.Copy()
	b.members = replacement.members
	b.polls = replacement.polls
	b.tasks = replacement.tasks
	b.tags = replacement.tags
}

// Copy returns a deep copy of the club book.
func (b *ClubBook) Copy() *ClubBook {
	out := NewClubBook()
	for _, member := range b.members.items {
		out.members.items = append(out.members.items, member.Copy())
	}
	for _, poll := range b.polls.items {
		out.polls.items = append(out.polls.items, poll.Copy())
	}
	out.tasks.items = append(out.tasks.items, b.tasks.items...)
	out.tags = append(out.tags, b.tags...)
	return out
}

// Equal reports structural equality. Tag sets are compared without order
// since the tag list is derived state.
func (b *ClubBook) Equal(other *ClubBook) bool {
	return b.members.Equal(other.members) &&
		b.polls.Equal(other.polls) &&
		b.tasks.Equal(other.tasks) &&
		sameTagSet(b.tags, other.tags)
}

func (b *ClubBook) addMemberTags(member Member) {
	for _, tag := range member.Tags {
		if !containsTag(b.tags, tag) {
			b.tags = append(b.tags, tag)
		}
	}
}

// sweepTags drops every tag no member references. Sweeping a sweep-stable
// book is a no-op.
func (b *ClubBook) sweepTags() {
	kept := b.tags[:0]
	for _, tag := range b.tags {
		referenced := false
		for _, member := range b.members.items {
			if member.HasTag(tag) {
				referenced = true
				break
			}
		}
		if referenced {
			kept = append(kept, tag)
		}
	}
	b.tags = kept
}
