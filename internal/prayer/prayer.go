// Package prayer holds prayer request input and its validation.
package prayer

import (
	"errors"
	"strings"
	"time"
)

// Categories are the prayer request kinds, General first.
var Categories = []string{
	"General",
	"Health",
	"Family",
	"Financial",
	"Spiritual",
	"Work/Career",
	"Relationships",
}

// Confirmation shown after a request is saved.
const (
	SubmittedTitle = "Prayer Request Submitted"
	Submitted      = "Thank you for sharing your prayer request. Our prayer team will be praying for you."
)

//nolint:staticcheck // messages are shown to the user verbatim
var (
	ErrEmptyRequest = errors.New("Please enter your prayer request")
	ErrMissingName  = errors.New("Please enter your name or select anonymous")
)

// Request is a prayer request as typed into the form.
type Request struct {
	Anonymous bool
	Name      string
	Email     string
	Category  string
	Text      string
	Urgent    bool
}

// NewRequest returns an empty General request.
func NewRequest() Request {
	return Request{Category: Categories[0]}
}

// Validate returns the first problem with the request.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyRequest
	}
	if !r.Anonymous && strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	return nil
}

// Normalized trims the fields, blanks the name and email of anonymous
// requests and defaults the category.
func (r Request) Normalized() Request {
	out := Request{
		Anonymous: r.Anonymous,
		Name:      strings.TrimSpace(r.Name),
		Email:     strings.TrimSpace(r.Email),
		Category:  r.Category,
		Text:      strings.TrimSpace(r.Text),
		Urgent:    r.Urgent,
	}
	if out.Anonymous {
		out.Name = ""
		out.Email = ""
	}
	if !IsCategory(out.Category) {
		out.Category = Categories[0]
	}
	return out
}

// DisplayName is the requester's name, or "Anonymous".
func (r Request) DisplayName() string {
	if r.Anonymous || strings.TrimSpace(r.Name) == "" {
		return "Anonymous"
	}
	return strings.TrimSpace(r.Name)
}

// IsCategory reports whether c is a known category.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NextCategory cycles through Categories by delta, wrapping around.
func NextCategory(current string, delta int) string {
	idx := 0
	for i, c := range Categories {
		if c == current {
			idx = i
			break
		}
	}
	n := len(Categories)
	return Categories[((idx+delta)%n+n)%n]
}

// Entry is a saved request.
type Entry struct {
	ID          string
	Request     Request
	SubmittedAt time.Time
}
