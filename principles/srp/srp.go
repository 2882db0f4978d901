// Package srp demonstrates the Single Responsibility Principle: every type
// below has exactly one reason to change. User is shaped by what a user is,
// UserRepository by how users are stored, EmailSender by how mail goes out,
// and Registration only coordinates the others.
package srp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUser is returned when a user is missing the fields registration
// requires.
var ErrInvalidUser = errors.New("user needs a name and an email")

// User is sign-up data and nothing more. Persistence and notification live
// elsewhere, so a storage or mail change never touches this type.
type User struct {
	ID    string
	Name  string
	Email string
}

// UserRepository persists users. Implementations change when the storage
// engine changes, not when registration policy does.
type UserRepository interface {
	Save(u User) error
}

// EmailSender delivers mail. Implementations change when the mail provider
// changes, not when registration policy does.
type EmailSender interface {
	Send(to, subject, body string) error
}

// Registration coordinates sign-up. It owns no persistence or delivery code,
// only the order in which its collaborators run.
type Registration struct {
	repo   UserRepository
	sender EmailSender
}

func NewRegistration(repo UserRepository, sender EmailSender) *Registration {
	return &Registration{repo: repo, sender: sender}
}

// Register validates the user, stores it, then sends the welcome mail. A
// failed save means no mail: the user would have nothing to be welcomed to.
func (r *Registration) Register(u User) error {
	if strings.TrimSpace(u.Name) == "" || strings.TrimSpace(u.Email) == "" {
		return ErrInvalidUser
	}
	if err := r.repo.Save(u); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if err := r.sender.Send(u.Email, "Welcome!", "Hello "+u.Name+", your account is ready."); err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}
	return nil
}
