package valueobject

import (
	"errors"
	"strings"
)

var (
	ErrInvalidQuestion = errors.New("Questions should not be blank")
	ErrInvalidAnswer   = errors.New("Answers should not be blank")
)

// Question is the prompt of a poll. Equality folds case.
type Question string

func NewQuestion(raw string) (Question, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidQuestion
	}
	return Question(raw), nil
}

func (q Question) String() string { return string(q) }

func (q Question) Equal(other Question) bool {
	return strings.EqualFold(string(q), string(other))
}

// Answer is one choice of a poll together with its accumulated vote count.
type Answer struct {
	Value string `json:"value"`
	Votes int    `json:"votes"`
}

func NewAnswer(raw string) (Answer, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Answer{}, ErrInvalidAnswer
	}
	return Answer{Value: raw}, nil
}

// Voted returns a copy of the answer with one more vote.
func (a Answer) Voted() Answer {
	return Answer{Value: a.Value, Votes: a.Votes + 1}
}

func (a Answer) Equal(other Answer) bool {
	return a.Value == other.Value && a.Votes == other.Votes
}

func (a Answer) String() string { return a.Value }
