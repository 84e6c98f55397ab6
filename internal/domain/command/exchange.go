package command

import (
	"errors"
	"fmt"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
)

// ImportCommand reads members from a CSV file and adds them to the club book.
// The import is all-or-nothing: a malformed row or a duplicate member leaves
// the book untouched.
type ImportCommand struct {
	snapshot
	Path string
}

func NewImportCommand(path string) *ImportCommand {
	return &ImportCommand{Path: path}
}

func (c *ImportCommand) Execute(m Model) (Result, error) {
	if _, err := m.ImportMembers(c.Path); err != nil {
		switch {
		case errors.Is(err, errorz.ErrDuplicateMember):
			return Result{}, errors.New("A member already exists in the club book")
		case errors.Is(err, errorz.ErrDataConversion):
			return Result{}, fmt.Errorf("Data is not in the correct format in the file: %s", c.Path)
		default:
			return Result{}, fmt.Errorf("Error occurred while importing from the file: %s", c.Path)
		}
	}
	return Result{Feedback: fmt.Sprintf("Successfully imported members from: %s", c.Path)}, nil
}

// ExportCommand writes the current members to a file; the extension picks the
// format. It does not mutate the club book.
type ExportCommand struct {
	Path string
}

func NewExportCommand(path string) *ExportCommand {
	return &ExportCommand{Path: path}
}

func (c *ExportCommand) Execute(m Model) (Result, error) {
	if err := m.ExportMembers(c.Path); err != nil {
		return Result{}, fmt.Errorf("Error occurred while exporting to the file: %s", c.Path)
	}
	return Result{Feedback: fmt.Sprintf("Successfully exported members' information to the file: %s", c.Path)}, nil
}
