package valueobject

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidGroup = errors.New("Group names should be alphanumeric")
	ErrInvalidTag   = errors.New("Tag names should be alphanumeric")
)

var labelRegexp = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// MandatoryGroup is the group every member falls back to. It cannot be removed.
const MandatoryGroup Group = "member"

// Group is a single validated group label. Equality folds case.
type Group string

func NewGroup(raw string) (Group, error) {
	raw = strings.TrimSpace(raw)
	if !labelRegexp.MatchString(raw) {
		return "", ErrInvalidGroup
	}
	return Group(raw), nil
}

func (g Group) String() string { return string(g) }

func (g Group) Equal(other Group) bool {
	return strings.EqualFold(string(g), string(other))
}

// IsMandatory reports whether this is the distinguished mandatory group.
func (g Group) IsMandatory() bool { return g.Equal(MandatoryGroup) }

// Tag is a single validated label a member can be tagged with.
type Tag string

func NewTag(raw string) (Tag, error) {
	raw = strings.TrimSpace(raw)
	if !labelRegexp.MatchString(raw) {
		return "", ErrInvalidTag
	}
	return Tag(raw), nil
}

func (t Tag) String() string { return string(t) }
