// Package exchange reads and writes member rows in user-visible file
// formats. CSV is the interchange format; export can also produce an Excel
// workbook when the target path ends in .xlsx.
package exchange

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/nusclubs/clubconnect/internal/domain/entity"
)

// columnHeaders is the first row of every exported file and the row every
// imported file must start with.
var columnHeaders = []string{"Name", "Phone", "Email", "MatricNumber", "Group", "Tags"}

type Exchange struct {
	log *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Exchange {
	return &Exchange{log: log}
}

// ReadMembers imports member rows from a CSV file.
func (e *Exchange) ReadMembers(path string) ([]entity.Member, error) {
	members, err := readCSV(path)
	if err != nil {
		e.log.Warnw("import failed", "path", path, "error", err)
		return nil, err
	}
	e.log.Infow("members imported", "path", path, "count", len(members))
	return members, nil
}

// WriteMembers exports members to path, choosing the format by extension.
func (e *Exchange) WriteMembers(path string, members []entity.Member) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		err = writeXLSX(path, members)
	default:
		err = writeCSV(path, members)
	}
	if err != nil {
		e.log.Warnw("export failed", "path", path, "error", err)
		return err
	}
	e.log.Infow("members exported", "path", path, "count", len(members))
	return nil
}

func memberRow(m entity.Member) []string {
	labels := make([]string, len(m.Tags))
	for i, t := range m.Tags {
		labels[i] = t.String()
	}
	return []string{
		m.Name.String(),
		m.Phone.String(),
		m.Email.String(),
		m.Matric.String(),
		m.Group.String(),
		strings.Join(labels, " "),
	}
}

func headerMismatch(row []string) error {
	if len(row) != len(columnHeaders) {
		return fmt.Errorf("expected %d columns, got %d", len(columnHeaders), len(row))
	}
	for i, want := range columnHeaders {
		if !strings.EqualFold(strings.TrimSpace(row[i]), want) {
			return fmt.Errorf("expected column %q, got %q", want, row[i])
		}
	}
	return nil
}
