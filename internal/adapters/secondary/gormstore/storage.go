package gormstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	postgresDriver "gorm.io/driver/postgres"
	sqliteDriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nusclubs/clubconnect/internal/domain/common/errorz"
	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

// Open connects to the configured database and runs migrations.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqliteDriver.Open(dsn)
	case "postgres":
		dialector = postgresDriver.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(Migrations...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

// Storage saves and loads club book snapshots. It is the saver/loader
// collaborator the model's change observer drives.
type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// Save replaces the persisted snapshot with book, all in one transaction.
func (s *Storage) Save(ctx context.Context, book *entity.ClubBook) error {
	memberRecords := membersToRecords(book.Members())
	pollRecords, err := pollsToRecords(book.Polls())
	if err != nil {
		return err
	}
	taskRecords := tasksToRecords(book.Tasks())

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range Migrations {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		if len(memberRecords) > 0 {
			if err := tx.Create(&memberRecords).Error; err != nil {
				return err
			}
		}
		if len(pollRecords) > 0 {
			if err := tx.Create(&pollRecords).Error; err != nil {
				return err
			}
		}
		if len(taskRecords) > 0 {
			if err := tx.Create(&taskRecords).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Load rebuilds the club book from the persisted snapshot, in insertion
// order.
func (s *Storage) Load(ctx context.Context) (*entity.ClubBook, error) {
	book := entity.NewClubBook()

	var memberRecords []memberRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&memberRecords).Error; err != nil {
		return nil, err
	}
	for _, rec := range memberRecords {
		member, err := recordToMember(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: member %s: %v", errorz.ErrDataConversion, rec.Matric, err)
		}
		if err := book.AddMember(member); err != nil {
			return nil, fmt.Errorf("%w: member %s: %v", errorz.ErrDataConversion, rec.Matric, err)
		}
	}

	var pollRecords []pollRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&pollRecords).Error; err != nil {
		return nil, err
	}
	for _, rec := range pollRecords {
		poll, err := recordToPoll(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: poll %q: %v", errorz.ErrDataConversion, rec.Question, err)
		}
		if err := book.AddPoll(poll); err != nil {
			return nil, fmt.Errorf("%w: poll %q: %v", errorz.ErrDataConversion, rec.Question, err)
		}
	}

	var taskRecords []taskRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&taskRecords).Error; err != nil {
		return nil, err
	}
	for _, rec := range taskRecords {
		task, err := recordToTask(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: task %q: %v", errorz.ErrDataConversion, rec.Description, err)
		}
		if err := book.AddTask(task); err != nil {
			return nil, fmt.Errorf("%w: task %q: %v", errorz.ErrDataConversion, rec.Description, err)
		}
	}

	return book, nil
}

func membersToRecords(members []entity.Member) []memberRecord {
	records := make([]memberRecord, 0, len(members))
	for _, m := range members {
		labels := make([]string, len(m.Tags))
		for i, t := range m.Tags {
			labels[i] = t.String()
		}
		records = append(records, memberRecord{
			Name:             m.Name.String(),
			Phone:            m.Phone.String(),
			Email:            m.Email.String(),
			Matric:           m.Matric.String(),
			GroupName:        m.Group.String(),
			Tags:             strings.Join(labels, " "),
			Username:         m.Username.String(),
			PasswordHash:     m.Password.Hash(),
			ProfilePhotoPath: m.ProfilePhotoPath,
		})
	}
	return records
}

func recordToMember(rec memberRecord) (entity.Member, error) {
	name, err := valueobject.NewName(rec.Name)
	if err != nil {
		return entity.Member{}, err
	}
	phone, err := valueobject.NewPhone(rec.Phone)
	if err != nil {
		return entity.Member{}, err
	}
	email, err := valueobject.NewEmail(rec.Email)
	if err != nil {
		return entity.Member{}, err
	}
	matric, err := valueobject.NewMatricNumber(rec.Matric)
	if err != nil {
		return entity.Member{}, err
	}
	group, err := valueobject.NewGroup(rec.GroupName)
	if err != nil {
		return entity.Member{}, err
	}
	var tags []valueobject.Tag
	for _, label := range strings.Fields(rec.Tags) {
		tag, err := valueobject.NewTag(label)
		if err != nil {
			return entity.Member{}, err
		}
		tags = append(tags, tag)
	}

	member := entity.NewMember(
		name, phone, email, matric, group, tags,
		valueobject.Username(rec.Username),
		valueobject.PasswordFromHash(rec.PasswordHash),
	)
	member.ProfilePhotoPath = rec.ProfilePhotoPath
	return member, nil
}

func pollsToRecords(polls []entity.Poll) ([]pollRecord, error) {
	records := make([]pollRecord, 0, len(polls))
	for _, p := range polls {
		answers, err := json.Marshal(p.Answers)
		if err != nil {
			return nil, err
		}
		pollees := make([]string, 0, len(p.Pollees))
		for matric := range p.Pollees {
			pollees = append(pollees, matric.String())
		}
		polleesJSON, err := json.Marshal(pollees)
		if err != nil {
			return nil, err
		}
		records = append(records, pollRecord{
			Question: p.Question.String(),
			Answers:  string(answers),
			Pollees:  string(polleesJSON),
		})
	}
	return records, nil
}

func recordToPoll(rec pollRecord) (entity.Poll, error) {
	question, err := valueobject.NewQuestion(rec.Question)
	if err != nil {
		return entity.Poll{}, err
	}
	var answers []valueobject.Answer
	if err := json.Unmarshal([]byte(rec.Answers), &answers); err != nil {
		return entity.Poll{}, err
	}
	var pollees []string
	if err := json.Unmarshal([]byte(rec.Pollees), &pollees); err != nil {
		return entity.Poll{}, err
	}

	poll := entity.NewPoll(question, answers)
	for _, raw := range pollees {
		matric, err := valueobject.NewMatricNumber(raw)
		if err != nil {
			return entity.Poll{}, err
		}
		poll.Pollees[matric] = struct{}{}
	}
	return poll, nil
}

func tasksToRecords(tasks []entity.Task) []taskRecord {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			Description: t.Description.String(),
			Date:        t.Date.String(),
			Time:        t.Time.String(),
			Assignor:    t.Assignor.String(),
			Assignee:    t.Assignee.String(),
			Status:      t.Status.String(),
		})
	}
	return records
}

func recordToTask(rec taskRecord) (entity.Task, error) {
	description, err := valueobject.NewDescription(rec.Description)
	if err != nil {
		return entity.Task{}, err
	}
	date, err := valueobject.NewDate(rec.Date)
	if err != nil {
		return entity.Task{}, err
	}
	due, err := valueobject.NewTime(rec.Time)
	if err != nil {
		return entity.Task{}, err
	}
	assignor, err := valueobject.NewName(rec.Assignor)
	if err != nil {
		return entity.Task{}, err
	}
	assignee, err := valueobject.NewName(rec.Assignee)
	if err != nil {
		return entity.Task{}, err
	}
	status, err := valueobject.NewStatus(rec.Status)
	if err != nil {
		return entity.Task{}, err
	}

	task := entity.NewTask(description, date, due, assignor, assignee)
	task.Status = status
	return task, nil
}
