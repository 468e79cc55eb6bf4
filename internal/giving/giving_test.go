package giving

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_QuickAndCustomAreExclusive(t *testing.T) {
	s := NewSelection()
	assert.Equal(t, "General", s.Fund)

	s.SetCustom("75")
	assert.Equal(t, "75", s.Amount())

	s.ChooseQuick("100")
	assert.Equal(t, "100", s.Amount())
	assert.Empty(t, s.Custom)

	s.SetCustom("12.50")
	assert.Empty(t, s.Quick)
	assert.Equal(t, "12.50", s.Amount())
}

func TestSelection_ClearingCustomKeepsQuick(t *testing.T) {
	s := NewSelection()
	s.ChooseQuick("50")
	s.SetCustom("")
	assert.Equal(t, "50", s.Amount())
}

func TestResolve(t *testing.T) {
	s := NewSelection()
	_, err := s.Resolve()
	assert.True(t, errors.Is(err, ErrNoAmount))
	assert.Equal(t, "Please select or enter an amount", err.Error())

	s.Fund = "Missions"
	s.ChooseQuick("250")
	gift, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, Gift{Fund: "Missions", Cents: 25000}, gift)
}

func TestResolve_DefaultsFund(t *testing.T) {
	s := Selection{Quick: "25"}
	gift, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "General", gift.Fund)
}

func TestParseCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"50", 5000, false},
		{"12.5", 1250, false},
		{"12.05", 1205, false},
		{"$1,000.25", 100025, false},
		{".75", 75, false},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5", 0, true},
		{"12.", 0, true},
		{"12.345", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"1.-1", 0, true},
		{"1.+5", 0, true},
		{"+5", 0, true},
		{"5. 1", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseCents(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestGiftFormat(t *testing.T) {
	assert.Equal(t, "$50", Gift{Cents: 5000}.FormatAmount())
	assert.Equal(t, "$1,250", Gift{Cents: 125000}.FormatAmount())
	assert.Equal(t, "$12.50", Gift{Cents: 1250}.FormatAmount())
	assert.Equal(t,
		"You are about to give $100 to Building Fund. Continue to payment?",
		Gift{Fund: "Building Fund", Cents: 10000}.ConfirmMessage())
}

func TestAcceptAmountRune(t *testing.T) {
	assert.True(t, AcceptAmountRune("", '5'))
	assert.True(t, AcceptAmountRune("12", '.'))
	assert.False(t, AcceptAmountRune("12.5", '.'))
	assert.False(t, AcceptAmountRune("12", 'a'))
	assert.False(t, AcceptAmountRune("12", '-'))
}

func TestButtonLabel(t *testing.T) {
	s := NewSelection()
	assert.Equal(t, "Give $0.00 to General", s.ButtonLabel())
	s.Fund = "Missions"
	s.ChooseQuick("50")
	assert.Equal(t, "Give $50 to Missions", s.ButtonLabel())
	s.SetCustom("12.5")
	assert.Equal(t, "Give $12.5 to Missions", s.ButtonLabel())
}

func TestOtherWays(t *testing.T) {
	ways := OtherWays("GCCMA", "123 Church Street")
	require.Len(t, ways, 2)
	assert.Equal(t, "GCCMA, 123 Church Street", ways[1].Text)
	assert.Equal(t, "Bank Transfer\nAccount: 12345678 | Routing: 987654321\n\nMail a Check\nGCCMA, 123 Church Street", Join(ways))
}
