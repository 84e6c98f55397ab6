// Package secondary declares the interfaces the domain expects its outbound
// collaborators to satisfy.
package secondary

import (
	"context"

	"github.com/nusclubs/clubconnect/internal/domain/entity"
)

// ClubBookStorage loads the initial club book snapshot and saves the current
// one after every change notification.
type ClubBookStorage interface {
	Load(ctx context.Context) (*entity.ClubBook, error)
	Save(ctx context.Context, book *entity.ClubBook) error
}

// MemberExchange reads and writes member rows in user-visible file formats.
type MemberExchange interface {
	ReadMembers(path string) ([]entity.Member, error)
	WriteMembers(path string, members []entity.Member) error
}

// EmailClient delivers an email request on behalf of the email command.
type EmailClient interface {
	Send(recipients string, subject string, body string) error
}

// PhotoStorage copies a member's chosen profile photo into the application's
// photo directory and returns the stored path.
type PhotoStorage interface {
	CopyPhoto(sourcePath string, name string) (string, error)
}
