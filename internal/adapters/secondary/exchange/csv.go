package exchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

func readCSV(path string) ([]entity.Member, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(columnHeaders)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", errorz.ErrDataConversion)
		}
		return nil, fmt.Errorf("%w: %v", errorz.ErrDataConversion, err)
	}
	if err := headerMismatch(header); err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.ErrDataConversion, err)
	}

	var members []entity.Member
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errorz.ErrDataConversion, err)
		}
		member, err := rowToMember(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errorz.ErrDataConversion, line, err)
		}
		members = append(members, member)
	}
	return members, nil
}

func writeCSV(path string, members []entity.Member) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(columnHeaders); err != nil {
		return err
	}
	for _, m := range members {
		if err := writer.Write(memberRow(m)); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return f.Close()
}

// rowToMember validates a CSV row into a member. Credentials are never part
// of the interchange format, so imported members cannot log in until edited.
func rowToMember(row []string) (entity.Member, error) {
	name, err := valueobject.NewName(row[0])
	if err != nil {
		return entity.Member{}, err
	}
	phone, err := valueobject.NewPhone(row[1])
	if err != nil {
		return entity.Member{}, err
	}
	email, err := valueobject.NewEmail(row[2])
	if err != nil {
		return entity.Member{}, err
	}
	matric, err := valueobject.NewMatricNumber(row[3])
	if err != nil {
		return entity.Member{}, err
	}
	group, err := valueobject.NewGroup(row[4])
	if err != nil {
		return entity.Member{}, err
	}
	tags, err := parseTagField(row[5])
	if err != nil {
		return entity.Member{}, err
	}
	return entity.NewMember(name, phone, email, matric, group, tags, "", valueobject.Password{}), nil
}

func parseTagField(field string) ([]valueobject.Tag, error) {
	var tags []valueobject.Tag
	for _, label := range strings.Fields(field) {
		tag, err := valueobject.NewTag(label)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
