// Package giving models an online gift before it is handed to a payment
// provider. No payment is processed here.
package giving

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Funds lists the designations a gift can go to.
var Funds = []string{"General", "Missions", "Building Fund", "Youth Ministry", "Benevolence"}

// ThankYou is shown once the gift is confirmed.
const ThankYou = "Thank you for your generous gift!"

// QuickAmounts are the preset gift buttons, in dollars.
var QuickAmounts = []string{"25", "50", "100", "250"}

//nolint:staticcheck // message is shown to the user verbatim
var (
	ErrNoAmount      = errors.New("Please select or enter an amount")
	ErrInvalidAmount = errors.New("Please enter a valid amount")
)

// Selection is the state of the amount picker. At most one of Quick and
// Custom is set; choosing one clears the other.
type Selection struct {
	Fund   string
	Quick  string
	Custom string
}

// NewSelection returns a selection for the General fund with no amount.
func NewSelection() Selection {
	return Selection{Fund: Funds[0]}
}

// ChooseQuick selects a preset amount and clears the custom amount.
func (s *Selection) ChooseQuick(amount string) {
	s.Quick = amount
	s.Custom = ""
}

// SetCustom sets the custom amount and clears the preset.
func (s *Selection) SetCustom(amount string) {
	s.Custom = amount
	if amount != "" {
		s.Quick = ""
	}
}

// Amount returns the chosen amount text: the preset if any, else custom.
func (s Selection) Amount() string {
	if s.Quick != "" {
		return s.Quick
	}
	return strings.TrimSpace(s.Custom)
}

// Gift is a validated gift.
type Gift struct {
	Fund  string
	Cents int64
}

// Resolve validates the selection and returns the gift.
func (s Selection) Resolve() (Gift, error) {
	raw := s.Amount()
	if raw == "" {
		return Gift{}, ErrNoAmount
	}
	cents, err := ParseCents(raw)
	if err != nil {
		return Gift{}, err
	}
	fund := s.Fund
	if fund == "" {
		fund = Funds[0]
	}
	return Gift{Fund: fund, Cents: cents}, nil
}

// ParseCents parses a dollar amount like "50", "12.5" or "1,000.25" into
// cents. Amounts must be positive with at most two decimal places.
func ParseCents(raw string) (int64, error) {
	s := strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(raw), "$"), ",", "")
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, ErrInvalidAmount
	}
	if !digits(whole) || !digits(frac) {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 {
		return 0, ErrInvalidAmount
	}
	c, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents := dollars*100 + c
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatAmount renders the gift amount as "$1,250" or "$12.50".
func (g Gift) FormatAmount() string {
	dollars := g.Cents / 100
	cents := g.Cents % 100
	if cents == 0 {
		return "$" + humanize.Comma(dollars)
	}
	return fmt.Sprintf("$%s.%02d", humanize.Comma(dollars), cents)
}

// ConfirmMessage is the prompt shown before handing off to payment.
func (g Gift) ConfirmMessage() string {
	return fmt.Sprintf("You are about to give %s to %s. Continue to payment?", g.FormatAmount(), g.Fund)
}

// AcceptAmountRune reports whether r may be typed into the custom amount
// field given its current text: digits, and a single decimal point.
func AcceptAmountRune(current string, r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return r == '.' && !strings.Contains(current, ".")
}
