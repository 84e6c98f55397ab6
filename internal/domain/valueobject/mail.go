package valueobject

import "strings"

// Subject is the subject line of an outgoing email. Equality folds case.
type Subject string

// EmptySubject is used when the email command omits s/.
const EmptySubject Subject = ""

func NewSubject(raw string) Subject {
	return Subject(strings.TrimSpace(raw))
}

func (s Subject) String() string { return string(s) }

func (s Subject) Equal(other Subject) bool {
	return strings.EqualFold(string(s), string(other))
}

// Body is the body text of an outgoing email.
type Body string

func NewBody(raw string) Body {
	return Body(strings.TrimSpace(raw))
}

func (b Body) String() string { return string(b) }
