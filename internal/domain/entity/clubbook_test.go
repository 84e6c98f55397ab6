package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

func newTestMember(t *testing.T, name, matric, group string, tags ...string) Member {
	t.Helper()
	n, err := valueobject.NewName(name)
	require.NoError(t, err)
	m, err := valueobject.NewMatricNumber(matric)
	require.NoError(t, err)
	var g valueobject.Group
	if group != "" {
		g, err = valueobject.NewGroup(group)
		require.NoError(t, err)
	}
	var ts []valueobject.Tag
	for _, raw := range tags {
		tag, err := valueobject.NewTag(raw)
		require.NoError(t, err)
		ts = append(ts, tag)
	}
	phone, _ := valueobject.NewPhone("91234567")
	email, _ := valueobject.NewEmail(name + "@x.com")
	return NewMember(n, phone, email, m, g, ts, valueobject.Username(name), valueobject.Password{})
}

func newTestPoll(t *testing.T, question string, answers ...string) Poll {
	t.Helper()
	q, err := valueobject.NewQuestion(question)
	require.NoError(t, err)
	var as []valueobject.Answer
	for _, raw := range answers {
		a, err := valueobject.NewAnswer(raw)
		require.NoError(t, err)
		as = append(as, a)
	}
	return NewPoll(q, as)
}

// tagUnion collects the distinct tags across all members.
func tagUnion(book *ClubBook) map[valueobject.Tag]struct{} {
	union := make(map[valueobject.Tag]struct{})
	for _, m := range book.Members() {
		for _, tag := range m.Tags {
			union[tag] = struct{}{}
		}
	}
	return union
}

func assertTagInvariant(t *testing.T, book *ClubBook) {
	t.Helper()
	union := tagUnion(book)
	tags := book.Tags()
	assert.Len(t, tags, len(union))
	for _, tag := range tags {
		assert.Contains(t, union, tag)
	}
}

func TestAddMemberRejectsDuplicateMatric(t *testing.T) {
	book := NewClubBook()
	require.NoError(t, book.AddMember(newTestMember(t, "Ann", "A0000001X", "")))

	err := book.AddMember(newTestMember(t, "Somebody", "a0000001x", "logistics"))
	assert.ErrorIs(t, err, errorz.ErrDuplicateMember)
	assert.Len(t, book.Members(), 1)
}

func TestTagSetTracksMembership(t *testing.T) {
	book := NewClubBook()
	ann := newTestMember(t, "Ann", "A0000001X", "", "head", "treasurer")
	ben := newTestMember(t, "Ben", "A0000002Y", "", "head")
	require.NoError(t, book.AddMember(ann))
	require.NoError(t, book.AddMember(ben))
	assertTagInvariant(t, book)
	assert.Len(t, book.Tags(), 2)

	// Removing Ann orphans "treasurer" but not "head".
	require.NoError(t, book.RemoveMember(ann))
	assertTagInvariant(t, book)
	assert.Equal(t, []valueobject.Tag{"head"}, book.Tags())

	// Editing Ben's tags away empties the set.
	edited := ben.Copy()
	edited.Tags = nil
	require.NoError(t, book.UpdateMember(ben, edited))
	assertTagInvariant(t, book)
	assert.Empty(t, book.Tags())
}

func TestDeleteTagStripsEveryMember(t *testing.T) {
	book := NewClubBook()
	require.NoError(t, book.AddMember(newTestMember(t, "Ann", "A0000001X", "", "head", "chess")))
	require.NoError(t, book.AddMember(newTestMember(t, "Ben", "A0000002Y", "", "chess")))

	require.NoError(t, book.DeleteTag("chess"))
	for _, m := range book.Members() {
		assert.False(t, m.HasTag("chess"))
	}
	assertTagInvariant(t, book)

	err := book.DeleteTag("chess")
	assert.ErrorIs(t, err, errorz.ErrTagNotFound)
}

func TestRemoveGroup(t *testing.T) {
	book := NewClubBook()
	require.NoError(t, book.AddMember(newTestMember(t, "Ann", "A0000001X", "logistics")))
	require.NoError(t, book.AddMember(newTestMember(t, "Ben", "A0000002Y", "")))

	assert.ErrorIs(t, book.RemoveGroup("Member"), errorz.ErrGroupCannotBeRemoved)
	assert.ErrorIs(t, book.RemoveGroup("publicity"), errorz.ErrGroupNotFound)

	require.NoError(t, book.RemoveGroup("Logistics"))
	for _, m := range book.Members() {
		assert.True(t, m.Group.IsMandatory())
	}
}

func TestVoteInPollSumEqualsPollees(t *testing.T) {
	book := NewClubBook()
	poll := newTestPoll(t, "Pizza or pasta?", "pizza", "pasta")
	require.NoError(t, book.AddPoll(poll))

	require.NoError(t, book.VoteInPoll(poll, 0, "A0000001X"))
	require.NoError(t, book.VoteInPoll(poll, 1, "A0000002Y"))

	err := book.VoteInPoll(poll, 0, "A0000001X")
	assert.ErrorIs(t, err, errorz.ErrUserAlreadyVoted)

	stored := book.Polls()[0]
	assert.Equal(t, len(stored.Pollees), stored.TotalVotes())
	assert.Equal(t, 1, stored.Answers[0].Votes)
	assert.Equal(t, 1, stored.Answers[1].Votes)
}

func TestVoteInPollRejectsBadAnswer(t *testing.T) {
	book := NewClubBook()
	poll := newTestPoll(t, "Pizza or pasta?", "pizza", "pasta")
	require.NoError(t, book.AddPoll(poll))

	err := book.VoteInPoll(poll, 2, "A0000001X")
	assert.ErrorIs(t, err, errorz.ErrAnswerNotFound)

	// The failed vote must not register the voter.
	stored := book.Polls()[0]
	assert.Empty(t, stored.Pollees)
	assert.Equal(t, 0, stored.TotalVotes())
}

func TestAddPollStoresACopy(t *testing.T) {
	book := NewClubBook()
	poll := newTestPoll(t, "Pizza or pasta?", "pizza")
	require.NoError(t, book.AddPoll(poll))

	// Mutating the caller's poll must not reach the stored one.
	poll.Pollees["A0000001X"] = struct{}{}
	assert.Empty(t, book.Polls()[0].Pollees)
}

func TestLogIn(t *testing.T) {
	book := NewClubBook()
	pw, err := valueobject.NewPassword("secret")
	require.NoError(t, err)
	ann := newTestMember(t, "Ann", "A0000001X", "")
	ann.Username = "ann"
	ann.Password = pw
	require.NoError(t, book.AddMember(ann))

	got, ok := book.LogIn("ANN", "secret")
	require.True(t, ok)
	assert.Equal(t, ann.Matric, got.Matric)

	_, ok = book.LogIn("ann", "wrong")
	assert.False(t, ok)
	_, ok = book.LogIn("nobody", "secret")
	assert.False(t, ok)
}

func TestResetDataIsDeepCopy(t *testing.T) {
	original := NewClubBook()
	require.NoError(t, original.AddMember(newTestMember(t, "Ann", "A0000001X", "", "head")))
	require.NoError(t, original.AddPoll(newTestPoll(t, "Pizza or pasta?", "pizza")))

	book := NewClubBook()
	book.ResetData(original)
	require.True(t, book.Equal(original))

	// Mutating the restored book must not leak into the source.
	require.NoError(t, book.AddMember(newTestMember(t, "Ben", "A0000002Y", "")))
	assert.Len(t, original.Members(), 1)
	assert.False(t, book.Equal(original))
}

func TestEqualIgnoresTagOrder(t *testing.T) {
	a := NewClubBook()
	require.NoError(t, a.AddMember(newTestMember(t, "Ann", "A0000001X", "", "head", "chess")))

	b := NewClubBook()
	require.NoError(t, b.AddMember(newTestMember(t, "Ben", "A0000002Y", "", "chess")))
	require.NoError(t, b.AddMember(newTestMember(t, "Ann", "A0000001X", "", "head", "chess")))
	require.NoError(t, b.RemoveMember(newTestMember(t, "Ben", "A0000002Y", "", "chess")))

	// Same members, possibly different tag discovery order.
	assert.True(t, a.Equal(b))
}
