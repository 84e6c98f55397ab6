package valueobject

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDescription = errors.New("Task descriptions should not be blank")
	ErrInvalidDate        = errors.New("Dates must be valid and in the format dd/mm/yyyy")
	ErrInvalidTime        = errors.New("Times must be in the 24-hour format hh:mm")
	ErrInvalidStatus      = errors.New(
		"Task statuses should be one of: not started, in progress, completed")
)

// Description is what a task asks to be done.
type Description string

func NewDescription(raw string) (Description, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidDescription
	}
	return Description(raw), nil
}

func (d Description) String() string { return string(d) }

// Date is a task's due date in dd/mm/yyyy form.
type Date string

func NewDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if _, err := time.Parse("02/01/2006", raw); err != nil {
		return "", ErrInvalidDate
	}
	return Date(raw), nil
}

func (d Date) String() string { return string(d) }

// Time is a task's due time in 24-hour hh:mm form.
type Time string

func NewTime(raw string) (Time, error) {
	raw = strings.TrimSpace(raw)
	if _, err := time.Parse("15:04", raw); err != nil {
		return "", ErrInvalidTime
	}
	return Time(raw), nil
}

func (t Time) String() string { return string(t) }

// Status is the progress state of a task.
type Status string

const (
	StatusNotStarted Status = "not started"
	StatusInProgress Status = "in progress"
	StatusCompleted  Status = "completed"
)

func NewStatus(raw string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusNotStarted:
		return StatusNotStarted, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }
