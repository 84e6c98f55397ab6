package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"simple", "Ann", true},
		{"with spaces", "Ann Lee Mei", true},
		{"alphanumeric", "Ann the 2nd", true},
		{"trimmed", "  Ann  ", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"leading space kept out by trim", " Ann", true},
		{"punctuation", "Ann-Lee", false},
		{"symbols", "Ann*", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewName(tt.raw)
			if !tt.valid {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.String())
		})
	}
}

func TestNewPhone(t *testing.T) {
	for _, raw := range []string{"911", "91234567", "  123456  "} {
		_, err := NewPhone(raw)
		assert.NoError(t, err, raw)
	}
	for _, raw := range []string{"", "12", "phone", "9123 4567", "+6591234567"} {
		_, err := NewPhone(raw)
		assert.ErrorIs(t, err, ErrInvalidPhone, raw)
	}
}

func TestNewEmail(t *testing.T) {
	for _, raw := range []string{"a@x.com", "ann.lee@u.nus.edu", "a1@b2"} {
		_, err := NewEmail(raw)
		assert.NoError(t, err, raw)
	}
	for _, raw := range []string{"", "ann", "@x.com", "a@", "a b@x.com", "a@x@y"} {
		_, err := NewEmail(raw)
		assert.ErrorIs(t, err, ErrInvalidEmail, raw)
	}
}

func TestEmailEqualFoldsCase(t *testing.T) {
	a, err := NewEmail("Ann@X.com")
	require.NoError(t, err)
	b, err := NewEmail("ann@x.COM")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestNewMatricNumber(t *testing.T) {
	for _, raw := range []string{"A0000001X", "a1234567z"} {
		_, err := NewMatricNumber(raw)
		assert.NoError(t, err, raw)
	}
	for _, raw := range []string{"", "A000001X", "A00000001X", "00000001X", "A0000001", "A000000!X"} {
		_, err := NewMatricNumber(raw)
		assert.ErrorIs(t, err, ErrInvalidMatricNumber, raw)
	}
}

func TestMatricNumberCanonicalUppercase(t *testing.T) {
	lower, err := NewMatricNumber("a0000001x")
	require.NoError(t, err)
	upper, err := NewMatricNumber("A0000001X")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	assert.Equal(t, "A0000001X", lower.String())
}

func TestPasswordMatchesOnlyOriginal(t *testing.T) {
	pw, err := NewPassword("secret")
	require.NoError(t, err)

	assert.True(t, pw.Matches("secret"))
	assert.False(t, pw.Matches("Secret"))
	assert.False(t, pw.Matches(""))
	assert.NotEqual(t, "secret", pw.Hash())
}

func TestPasswordFromHashRoundTrip(t *testing.T) {
	pw, err := NewPassword("secret")
	require.NoError(t, err)

	rebuilt := PasswordFromHash(pw.Hash())
	assert.True(t, rebuilt.Matches("secret"))
	assert.True(t, pw.Equal(rebuilt))
}

func TestNewPasswordRejectsBlank(t *testing.T) {
	_, err := NewPassword("   ")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
