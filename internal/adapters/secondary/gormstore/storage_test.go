package gormstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/domain/valueobject"
)

type StorageTestSuite struct {
	suite.Suite
	storage *Storage
}

// SetupTest runs before each test
func (suite *StorageTestSuite) SetupTest() {
	db, err := Open("sqlite", ":memory:")
	suite.Require().NoError(err)
	suite.storage = New(db)
}

func (suite *StorageTestSuite) TearDownTest() {
	sqlDB, err := suite.storage.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *StorageTestSuite) member(name, matric string, tags ...string) entity.Member {
	n, err := valueobject.NewName(name)
	suite.Require().NoError(err)
	m, err := valueobject.NewMatricNumber(matric)
	suite.Require().NoError(err)
	var ts []valueobject.Tag
	for _, raw := range tags {
		tag, err := valueobject.NewTag(raw)
		suite.Require().NoError(err)
		ts = append(ts, tag)
	}
	phone, _ := valueobject.NewPhone("91234567")
	email, _ := valueobject.NewEmail(name + "@x.com")
	pw, err := valueobject.NewPassword("pw")
	suite.Require().NoError(err)
	return entity.NewMember(n, phone, email, m, "", ts, valueobject.Username(name), pw)
}

func (suite *StorageTestSuite) TestLoadEmptyDatabase() {
	book, err := suite.storage.Load(context.Background())
	suite.Require().NoError(err)
	suite.Empty(book.Members())
	suite.Empty(book.Polls())
	suite.Empty(book.Tasks())
}

func (suite *StorageTestSuite) TestSaveLoadRoundTrip() {
	book := entity.NewClubBook()
	suite.Require().NoError(book.AddMember(suite.member("Ann", "A0000001X", "head", "chess")))
	suite.Require().NoError(book.AddMember(suite.member("Ben", "A0000002Y")))

	question, err := valueobject.NewQuestion("Pizza or pasta?")
	suite.Require().NoError(err)
	pizza, _ := valueobject.NewAnswer("pizza")
	pasta, _ := valueobject.NewAnswer("pasta")
	poll := entity.NewPoll(question, []valueobject.Answer{pizza, pasta})
	suite.Require().NoError(book.AddPoll(poll))
	suite.Require().NoError(book.VoteInPoll(poll, 0, "A0000001X"))

	description, _ := valueobject.NewDescription("Buy snacks")
	date, _ := valueobject.NewDate("02/05/2026")
	due, _ := valueobject.NewTime("19:00")
	assignor, _ := valueobject.NewName("Ann")
	suite.Require().NoError(book.AddTask(entity.NewTask(description, date, due, assignor, assignor)))

	suite.Require().NoError(suite.storage.Save(context.Background(), book))

	loaded, err := suite.storage.Load(context.Background())
	suite.Require().NoError(err)
	suite.True(loaded.Equal(book))

	// Credentials survive the round trip.
	got, ok := loaded.LogIn("ann", "pw")
	suite.Require().True(ok)
	suite.Equal("Ann", got.Name.String())

	// Vote bookkeeping survives too.
	suite.Require().Len(loaded.Polls(), 1)
	suite.Equal(1, loaded.Polls()[0].TotalVotes())
	suite.Contains(loaded.Polls()[0].Pollees, valueobject.MatricNumber("A0000001X"))
}

func (suite *StorageTestSuite) TestSaveReplacesPreviousSnapshot() {
	first := entity.NewClubBook()
	suite.Require().NoError(first.AddMember(suite.member("Ann", "A0000001X")))
	suite.Require().NoError(suite.storage.Save(context.Background(), first))

	second := entity.NewClubBook()
	suite.Require().NoError(second.AddMember(suite.member("Ben", "A0000002Y")))
	suite.Require().NoError(suite.storage.Save(context.Background(), second))

	loaded, err := suite.storage.Load(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Members(), 1)
	suite.Equal("Ben", loaded.Members()[0].Name.String())
}

func (suite *StorageTestSuite) TestLoadPreservesInsertionOrder() {
	book := entity.NewClubBook()
	names := []string{"Cid", "Ann", "Ben"}
	matrics := []string{"A0000003Z", "A0000001X", "A0000002Y"}
	for i := range names {
		suite.Require().NoError(book.AddMember(suite.member(names[i], matrics[i])))
	}
	suite.Require().NoError(suite.storage.Save(context.Background(), book))

	loaded, err := suite.storage.Load(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Members(), len(names))
	for i, m := range loaded.Members() {
		suite.Equal(names[i], m.Name.String())
	}
}

func TestStorageTestSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "dsn")
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
