package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nusclubs/clubconnect/internal/domain/command"
	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// stubExchange serves canned members on read and records writes.
type stubExchange struct {
	members []entity.Member
	readErr error

	wrotePath    string
	wroteMembers []entity.Member
}

func (s *stubExchange) ReadMembers(string) ([]entity.Member, error) {
	return s.members, s.readErr
}

func (s *stubExchange) WriteMembers(path string, members []entity.Member) error {
	s.wrotePath = path
	s.wroteMembers = members
	return nil
}

func stubMember(t *testing.T, name, matric string) entity.Member {
	t.Helper()
	n, err := valueobject.NewName(name)
	require.NoError(t, err)
	m, err := valueobject.NewMatricNumber(matric)
	require.NoError(t, err)
	phone, _ := valueobject.NewPhone("91234567")
	email, _ := valueobject.NewEmail(name + "@x.com")
	return entity.NewMember(n, phone, email, m, "", nil, "", valueobject.Password{})
}

func TestImportMembersAllOrNothing(t *testing.T) {
	ann := stubMember(t, "Ann", "A0000001X")
	ben := stubMember(t, "Ben", "A0000002Y")

	ex := &stubExchange{members: []entity.Member{ben, ann}}
	model := NewModel(entity.NewClubBook(), ex, nil, nil, zap.NewNop().Sugar())
	require.NoError(t, model.AddMember(ann))

	// Ben alone would be fine, but the duplicate Ann poisons the whole batch.
	_, err := model.ImportMembers("/tmp/members.csv")
	assert.ErrorIs(t, err, errorz.ErrDuplicateMember)
	assert.Len(t, model.ClubBook().Members(), 1)

	ex.members = []entity.Member{ben}
	n, err := model.ImportMembers("/tmp/members.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, model.ClubBook().Members(), 2)
}

func TestImportCommandFeedbackNamesFile(t *testing.T) {
	ex := &stubExchange{members: []entity.Member{stubMember(t, "Ann", "A0000001X")}}
	model := NewModel(entity.NewClubBook(), ex, nil, nil, zap.NewNop().Sugar())

	result, err := command.NewImportCommand("/tmp/members.csv").Execute(model)
	require.NoError(t, err)
	assert.Equal(t, "Successfully imported members from: /tmp/members.csv", result.Feedback)
}

func TestImportMembersReadFailure(t *testing.T) {
	ex := &stubExchange{readErr: errors.New("boom")}
	model := NewModel(entity.NewClubBook(), ex, nil, nil, zap.NewNop().Sugar())

	_, err := model.ImportMembers("/tmp/members.csv")
	assert.Error(t, err)
	assert.Empty(t, model.ClubBook().Members())
}

func TestExportMembersPassesCurrentList(t *testing.T) {
	ex := &stubExchange{}
	model := NewModel(entity.NewClubBook(), ex, nil, nil, zap.NewNop().Sugar())
	require.NoError(t, model.AddMember(stubMember(t, "Ann", "A0000001X")))

	require.NoError(t, model.ExportMembers("/tmp/out.csv"))
	assert.Equal(t, "/tmp/out.csv", ex.wrotePath)
	require.Len(t, ex.wroteMembers, 1)
	assert.Equal(t, "Ann", ex.wroteMembers[0].Name.String())
}

func TestEmailRecipients(t *testing.T) {
	model := NewModel(entity.NewClubBook(), nil, nil, nil, zap.NewNop().Sugar())

	ann := stubMember(t, "Ann", "A0000001X")
	ann.Group = "logistics"
	tag, _ := valueobject.NewTag("head")
	ann.Tags = []valueobject.Tag{tag}
	require.NoError(t, model.AddMember(ann))
	require.NoError(t, model.AddMember(stubMember(t, "Ben", "A0000002Y")))

	group := valueobject.Group("Logistics")
	got, err := model.EmailRecipients(&group, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ann@x.com", got)

	got, err = model.EmailRecipients(nil, &tag)
	require.NoError(t, err)
	assert.Equal(t, "Ann@x.com", got)

	missing := valueobject.Group("publicity")
	_, err = model.EmailRecipients(&missing, nil)
	assert.ErrorIs(t, err, errorz.ErrGroupNotFound)
}

func TestEmailRecipientsJoinsWithComma(t *testing.T) {
	model := NewModel(entity.NewClubBook(), nil, nil, nil, zap.NewNop().Sugar())
	require.NoError(t, model.AddMember(stubMember(t, "Ann", "A0000001X")))
	require.NoError(t, model.AddMember(stubMember(t, "Ben", "A0000002Y")))

	group := valueobject.MandatoryGroup
	got, err := model.EmailRecipients(&group, nil)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%s,%s", "Ann@x.com", "Ben@x.com"), got)
}

func TestLoggedInMemberTracksBook(t *testing.T) {
	model := NewModel(entity.NewClubBook(), nil, nil, nil, zap.NewNop().Sugar())

	pw, err := valueobject.NewPassword("pw")
	require.NoError(t, err)
	ann := stubMember(t, "Ann", "A0000001X")
	ann.Username = "ann"
	ann.Password = pw
	require.NoError(t, model.AddMember(ann))

	_, ok := model.LogIn("ann", "pw")
	require.True(t, ok)

	// An edit after login is reflected through the session.
	edited := ann.Copy()
	edited.Name = "Anna"
	require.NoError(t, model.UpdateMember(ann, edited))
	got, ok := model.LoggedInMember()
	require.True(t, ok)
	assert.Equal(t, "Anna", got.Name.String())

	// Deleting the member ends the session.
	require.NoError(t, model.DeleteMember(edited))
	_, ok = model.LoggedInMember()
	assert.False(t, ok)
}
