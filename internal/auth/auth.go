// Package auth is a local sign-in stub. Users live only in memory for the
// lifetime of the process; nothing is sent anywhere or written to disk.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at sign up.
const MinPasswordLength = 6

// How long a sign-in appears to take.
const (
	SimulatedDelay = 2 * time.Second
	SocialDelay    = 1500 * time.Millisecond
)

// MemberSince is the membership year given to new users.
const MemberSince = "2025"

// Validation errors, worded for display.
//
//nolint:staticcheck // messages are shown to the user verbatim
var (
	ErrMissingRequired  = errors.New("Please fill in all required fields")
	ErrMissingName      = errors.New("Please enter your full name")
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrPasswordTooShort = fmt.Errorf("Password must be at least %d characters", MinPasswordLength)
)

// Providers lists the social sign-in options.
var Providers = []string{"Google", "Apple", "Facebook"}

// User is the signed-in member.
type User struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	MemberSince string
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Initials returns the upper-case initials, e.g. "JD".
func (u User) Initials() string {
	var b strings.Builder
	for _, part := range []string{u.FirstName, u.LastName} {
		if r, _ := utf8.DecodeRuneInString(strings.TrimSpace(part)); r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// Form is the sign-in / sign-up form input.
type Form struct {
	SignUp          bool
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Phone           string
}

// Validate checks the form, returning the first problem found.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Email) == "" || f.Password == "" {
		return ErrMissingRequired
	}
	if !f.SignUp {
		return nil
	}
	if strings.TrimSpace(f.FirstName) == "" || strings.TrimSpace(f.LastName) == "" {
		return ErrMissingName
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if utf8.RuneCountInString(f.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// UserFromForm builds the member record for a validated form. Sign-in
// without a name falls back to a placeholder member.
func UserFromForm(f Form, memberSince string) User {
	first := strings.TrimSpace(f.FirstName)
	if first == "" {
		first = "John"
	}
	last := strings.TrimSpace(f.LastName)
	if last == "" {
		last = "Doe"
	}
	return User{
		ID:          "1",
		FirstName:   first,
		LastName:    last,
		Email:       strings.TrimSpace(f.Email),
		Phone:       strings.TrimSpace(f.Phone),
		MemberSince: memberSince,
	}
}

// UserFromProvider builds the member record for a social sign-in.
func UserFromProvider(provider, memberSince string) User {
	return User{
		ID:          "1",
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@" + strings.ToLower(provider) + ".com",
		MemberSince: memberSince,
	}
}

// Session holds the current user. It is safe for concurrent use.
type Session struct {
	mu   sync.RWMutex
	user *User
}

// NewSession returns a signed-out session.
func NewSession() *Session {
	return &Session{}
}

// Login signs u in, replacing any previous user.
func (s *Session) Login(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// Logout clears the current user.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// User returns the current user, or false when signed out.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether someone is signed in.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}
