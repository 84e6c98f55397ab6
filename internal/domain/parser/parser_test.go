package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusclubs/clubconnect/internal/domain/command"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

func TestParseUnknownCommand(t *testing.T) {
	for _, line := range []string{"bogus", "", "   ", "ADD n/Ann"} {
		_, err := Parse(line)
		require.Error(t, err, line)
		assert.EqualError(t, err, command.MessageUnknownCommand, line)
	}
}

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("add n/Ann Lee p/91234567 e/a@x.com m/a0000001x g/logistics t/head t/chess u/ann pw/pw")
	require.NoError(t, err)

	add, ok := cmd.(*command.AddCommand)
	require.True(t, ok)
	assert.Equal(t, "Ann Lee", add.ToAdd.Name.String())
	assert.Equal(t, "A0000001X", add.ToAdd.Matric.String())
	assert.Equal(t, "logistics", add.ToAdd.Group.String())
	assert.Equal(t, []valueobject.Tag{"head", "chess"}, add.ToAdd.Tags)
	assert.True(t, add.ToAdd.Password.Matches("pw"))
}

func TestParseAddDefaultsGroup(t *testing.T) {
	cmd, err := Parse("add n/Ann p/91234567 e/a@x.com m/A0000001X u/ann pw/pw")
	require.NoError(t, err)
	add := cmd.(*command.AddCommand)
	assert.Equal(t, valueobject.MandatoryGroup, add.ToAdd.Group)
}

func TestParseAddMissingPrefix(t *testing.T) {
	_, err := Parse("add n/Ann p/91234567 e/a@x.com m/A0000001X u/ann")
	require.Error(t, err)
	assert.EqualError(t, err, fmt.Sprintf(command.MessageInvalidCommandFormat, command.AddUsage))
}

func TestParseAddInvalidValue(t *testing.T) {
	_, err := Parse("add n/Ann p/12 e/a@x.com m/A0000001X u/ann pw/pw")
	assert.ErrorIs(t, err, valueobject.ErrInvalidPhone)
}

func TestParseEdit(t *testing.T) {
	cmd, err := Parse("edit 2 p/98765432 g/publicity")
	require.NoError(t, err)

	edit, ok := cmd.(*command.EditCommand)
	require.True(t, ok)
	assert.Equal(t, 2, edit.Index)
	require.NotNil(t, edit.Descriptor.Phone)
	assert.Equal(t, "98765432", edit.Descriptor.Phone.String())
	require.NotNil(t, edit.Descriptor.Group)
	assert.Nil(t, edit.Descriptor.Name)
}

func TestParseEditEmptyTagClearsTags(t *testing.T) {
	cmd, err := Parse("edit 1 t/")
	require.NoError(t, err)
	edit := cmd.(*command.EditCommand)
	require.NotNil(t, edit.Descriptor.Tags)
	assert.Empty(t, edit.Descriptor.Tags)
}

func TestParseEditNoFields(t *testing.T) {
	_, err := Parse("edit 1")
	require.Error(t, err)
	assert.EqualError(t, err, "At least one field to edit must be provided.")
}

func TestParseEditBadIndex(t *testing.T) {
	for _, line := range []string{"edit 0 n/Ann", "edit -1 n/Ann", "edit x n/Ann", "edit n/Ann"} {
		_, err := Parse(line)
		require.Error(t, err, line)
		assert.EqualError(t, err, fmt.Sprintf(command.MessageInvalidCommandFormat, command.EditUsage), line)
	}
}

func TestParseDelete(t *testing.T) {
	cmd, err := Parse("delete 3")
	require.NoError(t, err)
	del := cmd.(*command.DeleteCommand)
	assert.Equal(t, 3, del.Index)

	_, err = Parse("delete zero")
	assert.EqualError(t, err, fmt.Sprintf(command.MessageInvalidCommandFormat, command.DeleteUsage))
}

func TestParseFind(t *testing.T) {
	cmd, err := Parse("find ann ben")
	require.NoError(t, err)
	find := cmd.(*command.FindCommand)
	assert.Equal(t, []string{"ann", "ben"}, find.Keywords)

	_, err = Parse("find")
	assert.EqualError(t, err, fmt.Sprintf(command.MessageInvalidCommandFormat, command.FindUsage))
}

func TestParseLogIn(t *testing.T) {
	cmd, err := Parse("login u/ann pw/secret")
	require.NoError(t, err)
	login := cmd.(*command.LogInCommand)
	assert.Equal(t, "ann", login.Username)
	assert.Equal(t, "secret", login.Password)

	_, err = Parse("login u/ann")
	assert.EqualError(t, err, fmt.Sprintf(command.MessageInvalidCommandFormat, command.LogInUsage))
}

func TestParseAddPoll(t *testing.T) {
	cmd, err := Parse("addpoll q/Pizza or pasta? ans/pizza ans/pasta")
	require.NoError(t, err)
	addpoll := cmd.(*command.AddPollCommand)
	assert.Equal(t, "Pizza or pasta?", addpoll.ToAdd.Question.String())
	require.Len(t, addpoll.ToAdd.Answers, 2)
	assert.Equal(t, "pizza", addpoll.ToAdd.Answers[0].Value)

	_, err = Parse("addpoll q/Pizza or pasta?")
	assert.EqualError(t, err, fmt.Sprintf(command.MessageInvalidCommandFormat, command.AddPollUsage))
}

func TestParseVote(t *testing.T) {
	cmd, err := Parse("vote 2 1")
	require.NoError(t, err)
	vote := cmd.(*command.VoteCommand)
	assert.Equal(t, 2, vote.PollIndex)
	assert.Equal(t, 1, vote.AnswerIndex)

	for _, line := range []string{"vote", "vote 1", "vote 1 2 3", "vote one two", "vote 0 1"} {
		_, err := Parse(line)
		assert.EqualError(t, err, fmt.Sprintf(command.MessageInvalidCommandFormat, command.VoteUsage), line)
	}
}

func TestParseAddTask(t *testing.T) {
	cmd, err := Parse("addtask d/Buy snacks dt/02/05/2026 ti/19:00")
	require.NoError(t, err)
	addtask := cmd.(*command.AddTaskCommand)
	assert.Equal(t, "Buy snacks", addtask.Description.String())
	assert.Equal(t, "02/05/2026", addtask.Date.String())
	assert.Equal(t, "19:00", addtask.Time.String())

	_, err = Parse("addtask d/Buy snacks ti/19:00")
	assert.EqualError(t, err, fmt.Sprintf(command.MessageInvalidCommandFormat, command.AddTaskUsage))
}

func TestParseEmailRequiresExactlyOneScope(t *testing.T) {
	cmd, err := Parse("email g/logistics s/Meeting b/See you at 7")
	require.NoError(t, err)
	email := cmd.(*command.EmailCommand)
	require.NotNil(t, email.Group)
	assert.Nil(t, email.Tag)
	assert.Equal(t, "Meeting", email.Subject.String())

	for _, line := range []string{"email s/Hi b/there", "email g/logistics t/head s/Hi b/there"} {
		_, err := Parse(line)
		assert.EqualError(t, err, fmt.Sprintf(command.MessageInvalidCommandFormat, command.EmailUsage), line)
	}
}

func TestParsePathCommandsRequireAbsolutePath(t *testing.T) {
	cmd, err := Parse("import /tmp/members.csv")
	require.NoError(t, err)
	assert.IsType(t, &command.ImportCommand{}, cmd)

	for _, line := range []string{"import", "import members.csv", "export ./out.csv"} {
		_, err := Parse(line)
		require.Error(t, err, line)
	}
}

func TestParseChangePic(t *testing.T) {
	cmd, err := Parse("changepic pic//home/ann/photo.png")
	require.NoError(t, err)
	assert.IsType(t, &command.ChangePicCommand{}, cmd)

	_, err = Parse("changepic pic/photo.png")
	assert.EqualError(t, err, fmt.Sprintf(command.MessageInvalidCommandFormat, command.ChangePicUsage))
}

func TestParseBareCommands(t *testing.T) {
	tests := []struct {
		line string
		want command.Command
	}{
		{"list", &command.ListCommand{}},
		{"help", &command.HelpCommand{}},
		{"logout", &command.LogOutCommand{}},
		{"undo", &command.UndoCommand{}},
		{"redo", &command.RedoCommand{}},
		{"clear", &command.ClearCommand{}},
		{"exit", &command.ExitCommand{}},
	}
	for _, tt := range tests {
		cmd, err := Parse(tt.line)
		require.NoError(t, err, tt.line)
		assert.IsType(t, tt.want, cmd, tt.line)
	}
}
