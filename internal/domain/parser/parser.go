package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/nusclubs/clubconnect/internal/domain/command"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// ErrInvalidIndex indicates a preamble that should have been a 1-based index.
var ErrInvalidIndex = errors.New("Index is not a non-zero unsigned integer.")

var basicCommandRegexp = regexp.MustCompile(`(?s)^(\S+)(.*)$`)

// Parse turns one input line into a typed command.
func Parse(line string) (command.Command, error) {
	match := basicCommandRegexp.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return nil, errors.New(command.MessageUnknownCommand)
	}
	word, args := match[1], match[2]

	switch word {
	case "add":
		return parseAdd(args)
	case "edit":
		return parseEdit(args)
	case "delete":
		return parseDelete(args)
	case "find":
		return parseFind(args)
	case "list":
		return command.NewListCommand(), nil
	case "help":
		return command.NewHelpCommand(), nil
	case "signup":
		return parseSignUp(args)
	case "login":
		return parseLogIn(args)
	case "logout":
		return command.NewLogOutCommand(), nil
	case "undo":
		return command.NewUndoCommand(), nil
	case "redo":
		return command.NewRedoCommand(), nil
	case "clear":
		return command.NewClearCommand(), nil
	case "import":
		return parsePath(args, command.ImportUsage, func(p string) command.Command {
			return command.NewImportCommand(p)
		})
	case "export":
		return parsePath(args, command.ExportUsage, func(p string) command.Command {
			return command.NewExportCommand(p)
		})
	case "addpoll":
		return parseAddPoll(args)
	case "deletepoll":
		return parseIndexCommand(args, command.DeletePollUsage, func(i int) command.Command {
			return command.NewDeletePollCommand(i)
		})
	case "vote":
		return parseVote(args)
	case "addtask":
		return parseAddTask(args)
	case "deletetask":
		return parseIndexCommand(args, command.DeleteTaskUsage, func(i int) command.Command {
			return command.NewDeleteTaskCommand(i)
		})
	case "removegroup":
		return parseRemoveGroup(args)
	case "deletetag":
		return parseDeleteTag(args)
	case "email":
		return parseEmail(args)
	case "changepic":
		return parseChangePic(args)
	case "exit":
		return command.NewExitCommand(), nil
	default:
		return nil, errors.New(command.MessageUnknownCommand)
	}
}

func invalidFormat(usage string) error {
	return fmt.Errorf(command.MessageInvalidCommandFormat, usage)
}

func parseIndex(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	i, err := strconv.Atoi(raw)
	if err != nil || i <= 0 {
		return 0, ErrInvalidIndex
	}
	return i, nil
}

func parseIndexCommand(args, usage string, build func(int) command.Command) (command.Command, error) {
	index, err := parseIndex(args)
	if err != nil {
		return nil, invalidFormat(usage)
	}
	return build(index), nil
}

func parsePath(args, usage string, build func(string) command.Command) (command.Command, error) {
	path := strings.TrimSpace(args)
	if path == "" || !filepath.IsAbs(path) {
		return nil, invalidFormat(usage)
	}
	return build(path), nil
}

// parseMember builds the member shared by add and signup.
func parseMember(args, usage string) (entity.Member, error) {
	mm := Tokenize(args,
		PrefixName, PrefixPhone, PrefixEmail, PrefixMatric,
		PrefixGroup, PrefixTag, PrefixUsername, PrefixPassword)
	if !mm.HasAll(PrefixName, PrefixPhone, PrefixEmail, PrefixMatric, PrefixUsername, PrefixPassword) ||
		mm.Preamble() != "" {
		return entity.Member{}, invalidFormat(usage)
	}

	rawName, _ := mm.Value(PrefixName)
	name, err := valueobject.NewName(rawName)
	if err != nil {
		return entity.Member{}, err
	}
	rawPhone, _ := mm.Value(PrefixPhone)
	phone, err := valueobject.NewPhone(rawPhone)
	if err != nil {
		return entity.Member{}, err
	}
	rawEmail, _ := mm.Value(PrefixEmail)
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return entity.Member{}, err
	}
	rawMatric, _ := mm.Value(PrefixMatric)
	matric, err := valueobject.NewMatricNumber(rawMatric)
	if err != nil {
		return entity.Member{}, err
	}
	var group valueobject.Group
	if rawGroup, ok := mm.Value(PrefixGroup); ok {
		group, err = valueobject.NewGroup(rawGroup)
		if err != nil {
			return entity.Member{}, err
		}
	}
	tags, err := parseTags(mm.AllValues(PrefixTag))
	if err != nil {
		return entity.Member{}, err
	}
	rawUsername, _ := mm.Value(PrefixUsername)
	username, err := valueobject.NewUsername(rawUsername)
	if err != nil {
		return entity.Member{}, err
	}
	rawPassword, _ := mm.Value(PrefixPassword)
	password, err := valueobject.NewPassword(rawPassword)
	if err != nil {
		return entity.Member{}, err
	}

	return entity.NewMember(name, phone, email, matric, group, tags, username, password), nil
}

func parseTags(raw []string) ([]valueobject.Tag, error) {
	var tags []valueobject.Tag
	for _, r := range raw {
		tag, err := valueobject.NewTag(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func parseAdd(args string) (command.Command, error) {
	member, err := parseMember(args, command.AddUsage)
	if err != nil {
		return nil, err
	}
	return command.NewAddCommand(member), nil
}

func parseSignUp(args string) (command.Command, error) {
	member, err := parseMember(args, command.SignUpUsage)
	if err != nil {
		return nil, err
	}
	return command.NewSignUpCommand(member), nil
}

func parseEdit(args string) (command.Command, error) {
	mm := Tokenize(args,
		PrefixName, PrefixPhone, PrefixEmail, PrefixMatric, PrefixGroup, PrefixTag)
	index, err := parseIndex(mm.Preamble())
	if err != nil {
		return nil, invalidFormat(command.EditUsage)
	}

	var descriptor command.EditMemberDescriptor
	if raw, ok := mm.Value(PrefixName); ok {
		name, err := valueobject.NewName(raw)
		if err != nil {
			return nil, err
		}
		descriptor.Name = &name
	}
	if raw, ok := mm.Value(PrefixPhone); ok {
		phone, err := valueobject.NewPhone(raw)
		if err != nil {
			return nil, err
		}
		descriptor.Phone = &phone
	}
	if raw, ok := mm.Value(PrefixEmail); ok {
		email, err := valueobject.NewEmail(raw)
		if err != nil {
			return nil, err
		}
		descriptor.Email = &email
	}
	if raw, ok := mm.Value(PrefixMatric); ok {
		matric, err := valueobject.NewMatricNumber(raw)
		if err != nil {
			return nil, err
		}
		descriptor.Matric = &matric
	}
	if raw, ok := mm.Value(PrefixGroup); ok {
		group, err := valueobject.NewGroup(raw)
		if err != nil {
			return nil, err
		}
		descriptor.Group = &group
	}
	if rawTags := mm.AllValues(PrefixTag); rawTags != nil {
		// A single empty t/ clears the member's tags.
		if len(rawTags) == 1 && rawTags[0] == "" {
			descriptor.Tags = []valueobject.Tag{}
		} else {
			tags, err := parseTags(rawTags)
			if err != nil {
				return nil, err
			}
			descriptor.Tags = tags
		}
	}

	if !descriptor.Any() {
		return nil, errors.New("At least one field to edit must be provided.")
	}
	return command.NewEditCommand(index, descriptor), nil
}

func parseDelete(args string) (command.Command, error) {
	return parseIndexCommand(args, command.DeleteUsage, func(i int) command.Command {
		return command.NewDeleteCommand(i)
	})
}

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindUsage)
	}
	return command.NewFindCommand(keywords), nil
}

func parseLogIn(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixUsername, PrefixPassword)
	if !mm.HasAll(PrefixUsername, PrefixPassword) || mm.Preamble() != "" {
		return nil, invalidFormat(command.LogInUsage)
	}
	username, _ := mm.Value(PrefixUsername)
	password, _ := mm.Value(PrefixPassword)
	return command.NewLogInCommand(username, password), nil
}

func parseAddPoll(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixQuestion, PrefixAnswer)
	if !mm.HasAll(PrefixQuestion, PrefixAnswer) || mm.Preamble() != "" {
		return nil, invalidFormat(command.AddPollUsage)
	}
	rawQuestion, _ := mm.Value(PrefixQuestion)
	question, err := valueobject.NewQuestion(rawQuestion)
	if err != nil {
		return nil, err
	}
	var answers []valueobject.Answer
	for _, raw := range mm.AllValues(PrefixAnswer) {
		answer, err := valueobject.NewAnswer(raw)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return command.NewAddPollCommand(entity.NewPoll(question, answers)), nil
}

func parseVote(args string) (command.Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return nil, invalidFormat(command.VoteUsage)
	}
	pollIndex, err := parseIndex(fields[0])
	if err != nil {
		return nil, invalidFormat(command.VoteUsage)
	}
	answerIndex, err := parseIndex(fields[1])
	if err != nil {
		return nil, invalidFormat(command.VoteUsage)
	}
	return command.NewVoteCommand(pollIndex, answerIndex), nil
}

func parseAddTask(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixDesc, PrefixDate, PrefixTime)
	if !mm.HasAll(PrefixDesc, PrefixDate, PrefixTime) || mm.Preamble() != "" {
		return nil, invalidFormat(command.AddTaskUsage)
	}
	rawDescription, _ := mm.Value(PrefixDesc)
	description, err := valueobject.NewDescription(rawDescription)
	if err != nil {
		return nil, err
	}
	rawDate, _ := mm.Value(PrefixDate)
	date, err := valueobject.NewDate(rawDate)
	if err != nil {
		return nil, err
	}
	rawTime, _ := mm.Value(PrefixTime)
	due, err := valueobject.NewTime(rawTime)
	if err != nil {
		return nil, err
	}
	return command.NewAddTaskCommand(description, date, due), nil
}

func parseRemoveGroup(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixGroup)
	if !mm.HasAll(PrefixGroup) || mm.Preamble() != "" {
		return nil, invalidFormat(command.RemoveGroupUsage)
	}
	raw, _ := mm.Value(PrefixGroup)
	group, err := valueobject.NewGroup(raw)
	if err != nil {
		return nil, err
	}
	return command.NewRemoveGroupCommand(group), nil
}

func parseDeleteTag(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixTag)
	if !mm.HasAll(PrefixTag) || mm.Preamble() != "" {
		return nil, invalidFormat(command.DeleteTagUsage)
	}
	raw, _ := mm.Value(PrefixTag)
	tag, err := valueobject.NewTag(raw)
	if err != nil {
		return nil, err
	}
	return command.NewDeleteTagCommand(tag), nil
}

func parseEmail(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixGroup, PrefixTag, PrefixSubject, PrefixBody)
	rawGroup, hasGroup := mm.Value(PrefixGroup)
	rawTag, hasTag := mm.Value(PrefixTag)
	if hasGroup == hasTag || mm.Preamble() != "" {
		return nil, invalidFormat(command.EmailUsage)
	}

	var groupPtr *valueobject.Group
	var tagPtr *valueobject.Tag
	if hasGroup {
		group, err := valueobject.NewGroup(rawGroup)
		if err != nil {
			return nil, err
		}
		groupPtr = &group
	} else {
		tag, err := valueobject.NewTag(rawTag)
		if err != nil {
			return nil, err
		}
		tagPtr = &tag
	}

	rawSubject, _ := mm.Value(PrefixSubject)
	rawBody, _ := mm.Value(PrefixBody)
	return command.NewEmailCommand(groupPtr, tagPtr,
		valueobject.NewSubject(rawSubject), valueobject.NewBody(rawBody)), nil
}

func parseChangePic(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixPic)
	raw, ok := mm.Value(PrefixPic)
	if !ok || mm.Preamble() != "" || !filepath.IsAbs(raw) {
		return nil, invalidFormat(command.ChangePicUsage)
	}
	return command.NewChangePicCommand(raw), nil
}
