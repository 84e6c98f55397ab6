// Package gormstore persists club book snapshots through gorm.
package gormstore

// Record IDs are autoincrementing, so insertion order survives a round trip;
// the unique lists rely on that.

type memberRecord struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"not null"`
	Phone            string
	Email            string
	Matric           string `gorm:"not null;uniqueIndex"`
	GroupName        string `gorm:"column:group_name"`
	Tags             string // space-joined tag labels
	Username         string
	PasswordHash     string
	ProfilePhotoPath string
}

func (memberRecord) TableName() string { return "members" }

type pollRecord struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Question string `gorm:"not null"`
	Answers  string // JSON array of {value, votes}
	Pollees  string // JSON array of matric numbers
}

func (pollRecord) TableName() string { return "polls" }

type taskRecord struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"not null"`
	Date        string
	Time        string
	Assignor    string
	Assignee    string
	Status      string
}

func (taskRecord) TableName() string { return "tasks" }

// Migrations lists every record type for AutoMigrate.
var Migrations = []any{
	&memberRecord{},
	&pollRecord{},
	&taskRecord{},
}
