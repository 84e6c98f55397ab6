package entity

import (
	"fmt"
	"strings"

	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// Member is a club member. Identity is the matric number; everything else can
// be edited without changing who the member is.
type Member struct {
	Name             valueobject.Name
	Phone            valueobject.Phone
	Email            valueobject.Email
	Matric           valueobject.MatricNumber
	Group            valueobject.Group
	Tags             []valueobject.Tag
	Username         valueobject.Username
	Password         valueobject.Password
	ProfilePhotoPath string
}

// NewMember assembles a member, deduplicating tags while preserving their
// order and defaulting an empty group to the mandatory group.
func NewMember(
	name valueobject.Name,
	phone valueobject.Phone,
	email valueobject.Email,
	matric valueobject.MatricNumber,
	group valueobject.Group,
	tags []valueobject.Tag,
	username valueobject.Username,
	password valueobject.Password,
) Member {
	if group == "" {
		group = valueobject.MandatoryGroup
	}
	return Member{
		Name:     name,
		Phone:    phone,
		Email:    email,
		Matric:   matric,
		Group:    group,
		Tags:     dedupeTags(tags),
		Username: username,
		Password: password,
	}
}

func dedupeTags(tags []valueobject.Tag) []valueobject.Tag {
	var out []valueobject.Tag
	for _, tag := range tags {
		if !containsTag(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}

func containsTag(tags []valueobject.Tag, tag valueobject.Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SameAs reports identity equality: matching matric numbers.
func (m Member) SameAs(other Member) bool {
	return m.Matric == other.Matric
}

// Equal reports structural equality. Tag order within a member is not
// significant.
func (m Member) Equal(other Member) bool {
	return m.Name == other.Name &&
		m.Phone == other.Phone &&
		m.Email.Equal(other.Email) &&
		m.Matric == other.Matric &&
		m.Group.Equal(other.Group) &&
		sameTagSet(m.Tags, other.Tags) &&
		m.Username == other.Username &&
		m.Password.Equal(other.Password) &&
		m.ProfilePhotoPath == other.ProfilePhotoPath
}

func sameTagSet(a, b []valueobject.Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for _, tag := range a {
		if !containsTag(b, tag) {
			return false
		}
	}
	return true
}

// HasTag reports whether the member carries tag.
func (m Member) HasTag(tag valueobject.Tag) bool {
	return containsTag(m.Tags, tag)
}

// Copy returns a deep copy of the member.
func (m Member) Copy() Member {
	out := m
	out.Tags = make([]valueobject.Tag, len(m.Tags))
	copy(out.Tags, m.Tags)
	return out
}

func (m Member) String() string {
	var tags []string
	for _, t := range m.Tags {
		tags = append(tags, "["+t.String()+"]")
	}
	return fmt.Sprintf("%s Phone: %s Email: %s Matric Number: %s Group: %s Tags: %s",
		m.Name, m.Phone, m.Email, m.Matric, m.Group, strings.Join(tags, ""))
}
