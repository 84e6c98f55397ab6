package entity

import (
	"fmt"

	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// Task is a piece of work assigned by one member to another.
type Task struct {
	Description valueobject.Description
	Date        valueobject.Date
	Time        valueobject.Time
	Assignor    valueobject.Name
	Assignee    valueobject.Name
	Status      valueobject.Status
}

func NewTask(
	description valueobject.Description,
	date valueobject.Date,
	taskTime valueobject.Time,
	assignor, assignee valueobject.Name,
) Task {
	return Task{
		Description: description,
		Date:        date,
		Time:        taskTime,
		Assignor:    assignor,
		Assignee:    assignee,
		Status:      valueobject.StatusNotStarted,
	}
}

// SameAs reports identity equality: description, date, time and assignee.
func (t Task) SameAs(other Task) bool {
	return t.Description == other.Description &&
		t.Date == other.Date &&
		t.Time == other.Time &&
		t.Assignee.EqualFold(other.Assignee)
}

// Equal reports structural equality.
func (t Task) Equal(other Task) bool {
	return t.SameAs(other) &&
		t.Assignor.EqualFold(other.Assignor) &&
		t.Status == other.Status
}

func (t Task) String() string {
	return fmt.Sprintf("%s Due: %s %s Assignor: %s Assignee: %s Status: %s",
		t.Description, t.Date, t.Time, t.Assignor, t.Assignee, t.Status)
}
