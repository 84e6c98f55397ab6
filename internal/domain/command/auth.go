package command

import (
	"fmt"

	"github.com/nusclubs/clubconnect/internal/domain/entity"
)

// SignUpCommand adds the first member of a fresh club book. It is the only
// mutating command that is deliberately not undoable: it bootstraps the book.
type SignUpCommand struct {
	ToSignUp entity.Member
}

func NewSignUpCommand(toSignUp entity.Member) *SignUpCommand {
	return &SignUpCommand{ToSignUp: toSignUp}
}

func (c *SignUpCommand) Execute(m Model) (Result, error) {
	if len(m.ClubBook().Members()) > 0 {
		return Result{Feedback: "There are already members in the clubbook. Log In to continue", Err: true}, nil
	}
	if err := m.AddMember(c.ToSignUp); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "sign up successful! Please log in again"}, nil
}

// LogInCommand authenticates a member and records them as logged in.
type LogInCommand struct {
	Username string
	Password string
}

func NewLogInCommand(username, password string) *LogInCommand {
	return &LogInCommand{Username: username, Password: password}
}

func (c *LogInCommand) Execute(m Model) (Result, error) {
	member, ok := m.LogIn(c.Username, c.Password)
	if !ok {
		return Result{Feedback: "login unsuccessful! Username or Password is incorrect", Err: true}, nil
	}
	return Result{Feedback: fmt.Sprintf("login successful! Welcome back, %s", member.Name)}, nil
}

// LogOutCommand clears the logged-in member.
type LogOutCommand struct{}

func NewLogOutCommand() *LogOutCommand { return &LogOutCommand{} }

func (c *LogOutCommand) Execute(m Model) (Result, error) {
	m.LogOut()
	return Result{Feedback: "logout successful!"}, nil
}
