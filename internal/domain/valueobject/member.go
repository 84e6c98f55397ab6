// Package valueobject defines the validated immutable primitives of the club book domain.
package valueobject

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidName = errors.New(
		"Names should only contain alphanumeric characters and spaces, and it should not be blank")
	ErrInvalidPhone = errors.New(
		"Phone numbers can only contain numbers, and should be at least 3 digits long")
	ErrInvalidEmail = errors.New(
		"Member emails should be 2 alphanumeric/period strings separated by '@'")
	ErrInvalidMatricNumber = errors.New(
		"Matric numbers must be non-empty, begin with a letter, have 7 digits in the middle, and end with a letter")
	ErrInvalidUsername = errors.New("Usernames should not be blank")
	ErrInvalidPassword = errors.New("Passwords should not be blank")
)

var (
	nameRegexp   = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ]*$`)
	phoneRegexp  = regexp.MustCompile(`^\d{3,}$`)
	emailRegexp  = regexp.MustCompile(`^[\w.]+@[\w.]+$`)
	matricRegexp = regexp.MustCompile(`^[A-Za-z]\d{7}[A-Za-z]$`)
)

// Name is a member's display name.
type Name string

func NewName(raw string) (Name, error) {
	raw = strings.TrimSpace(raw)
	if !nameRegexp.MatchString(raw) {
		return "", ErrInvalidName
	}
	return Name(raw), nil
}

func (n Name) String() string { return string(n) }

// EqualFold reports whether two names match ignoring case. Task authorization
// compares assignor and assignee names this way.
func (n Name) EqualFold(other Name) bool {
	return strings.EqualFold(string(n), string(other))
}

// Phone is a member's phone number.
type Phone string

func NewPhone(raw string) (Phone, error) {
	raw = strings.TrimSpace(raw)
	if !phoneRegexp.MatchString(raw) {
		return "", ErrInvalidPhone
	}
	return Phone(raw), nil
}

func (p Phone) String() string { return string(p) }

// Email is a member's email address. Equality folds case.
type Email string

func NewEmail(raw string) (Email, error) {
	raw = strings.TrimSpace(raw)
	if !emailRegexp.MatchString(raw) {
		return "", ErrInvalidEmail
	}
	return Email(raw), nil
}

func (e Email) String() string { return string(e) }

func (e Email) Equal(other Email) bool {
	return strings.EqualFold(string(e), string(other))
}

// MatricNumber identifies a member. The canonical form is uppercase, so
// identity comparison is case-insensitive by construction.
type MatricNumber string

func NewMatricNumber(raw string) (MatricNumber, error) {
	raw = strings.TrimSpace(raw)
	if !matricRegexp.MatchString(raw) {
		return "", ErrInvalidMatricNumber
	}
	return MatricNumber(strings.ToUpper(raw)), nil
}

func (m MatricNumber) String() string { return string(m) }

// Username is a member's login name.
type Username string

func NewUsername(raw string) (Username, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidUsername
	}
	return Username(raw), nil
}

func (u Username) String() string { return string(u) }

// Password holds a bcrypt hash of a member's password. The plaintext is never
// stored; Matches answers the yes/no login predicate.
type Password struct {
	hash string
}

func NewPassword(plain string) (Password, error) {
	if strings.TrimSpace(plain) == "" {
		return Password{}, ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return Password{}, err
	}
	return Password{hash: string(hash)}, nil
}

// PasswordFromHash rebuilds a Password from a persisted hash.
func PasswordFromHash(hash string) Password {
	return Password{hash: hash}
}

func (p Password) Hash() string { return p.hash }

func (p Password) Matches(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}

func (p Password) Equal(other Password) bool { return p.hash == other.hash }
