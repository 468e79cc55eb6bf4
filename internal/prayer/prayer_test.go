package prayer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"empty", NewRequest(), ErrEmptyRequest},
		{"whitespace text", Request{Name: "Ann", Text: "  \n"}, ErrEmptyRequest},
		{"no name", Request{Text: "healing"}, ErrMissingName},
		{"anonymous without name", Request{Anonymous: true, Text: "healing"}, nil},
		{"named", Request{Name: "Ann", Text: "healing"}, nil},
		{"text checked before name", Request{}, ErrEmptyRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Please enter your prayer request", ErrEmptyRequest.Error())
	assert.Equal(t, "Please enter your name or select anonymous", ErrMissingName.Error())
}

func TestNormalized(t *testing.T) {
	r := Request{Anonymous: true, Name: "Ann", Email: "a@b.c", Category: "Nope", Text: "  pray  "}
	got := r.Normalized()
	assert.Empty(t, got.Name)
	assert.Empty(t, got.Email)
	assert.Equal(t, "General", got.Category)
	assert.Equal(t, "pray", got.Text)

	named := Request{Name: " Ann ", Category: "Health", Text: "x", Urgent: true}.Normalized()
	assert.Equal(t, "Ann", named.Name)
	assert.Equal(t, "Health", named.Category)
	assert.True(t, named.Urgent)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Anonymous", Request{Anonymous: true, Name: "Ann"}.DisplayName())
	assert.Equal(t, "Anonymous", Request{}.DisplayName())
	assert.Equal(t, "Ann", Request{Name: "Ann"}.DisplayName())
}

func TestNextCategory(t *testing.T) {
	assert.Equal(t, "Health", NextCategory("General", 1))
	assert.Equal(t, "Relationships", NextCategory("General", -1))
	assert.Equal(t, "General", NextCategory("Relationships", 1))
	assert.Equal(t, "Health", NextCategory("unknown", 1))
}
