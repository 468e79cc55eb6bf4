// Package givingform is the online giving form. It confirms the gift and
// stops there; no payment is taken.
package givingform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/giving"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/confirm"
	"github.com/gccma/gccma/internal/ui/form"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

const source = "giving"

// Field keys.
const (
	keyFund   = "fund"
	keyQuick  = "quick"
	keyCustom = "custom"
	keyGive   = "give"
	keyImpact = "impact"
	keyOther  = "other"
)

const maxFormWidth = 70

// giftRequest tags the confirm dialog for gift.
type giftRequest struct {
	gift giving.Gift
}

// Model is the giving screen.
type Model struct {
	deps   screens.Deps
	layout layout.Layout
	width  int
	height int
	form   form.Model
	sel    giving.Selection
}

// New creates the giving form for the General fund with no amount.
func New(deps screens.Deps) *Model {
	sel := giving.NewSelection()
	quick := make([]string, len(giving.QuickAmounts))
	for i, a := range giving.QuickAmounts {
		quick[i] = "$" + a
	}
	custom := form.Text(keyCustom, "Or enter custom amount", "0.00")
	custom.Accept = giving.AcceptAmountRune

	m := &Model{
		deps: deps,
		sel:  sel,
		form: form.New(
			form.Choice(keyFund, "Where would you like to give?", giving.Funds, sel.Fund),
			form.Choice(keyQuick, "Select Amount", quick, ""),
			custom,
			form.Button(keyGive, sel.ButtonLabel()),
			form.Button(keyImpact, "Your Impact"),
			form.Button(keyOther, "Other Ways to Give"),
		),
	}
	return m
}

// Selection returns the fund and amount as chosen.
func (m *Model) Selection() giving.Selection { return m.sel }

// Error returns the validation message shown under the form.
func (m *Model) Error() string { return m.form.Error() }

// Init implements screens.Screen.
func (m *Model) Init() tea.Cmd { return m.form.Init() }

// Update implements screens.Screen.
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	if am, ok := msg.(action.Msg); ok {
		if res, ok := am.Action.(confirm.Result); ok && res.Confirmed {
			if req, mine := res.Context.(giftRequest); mine {
				return m, m.given(req.gift)
			}
		}
		return m, nil
	}

	res, cmd := m.form.Update(msg)
	switch res.Event {
	case form.Submitted:
		return m, tea.Batch(cmd, m.give())
	case form.Pressed:
		return m, tea.Batch(cmd, m.press(res.Key))
	case form.Changed:
		m.changed(res.Key)
	}
	return m, cmd
}

// changed keeps the quick and custom amounts exclusive.
func (m *Model) changed(key string) {
	m.form.SetError(nil)
	switch key {
	case keyFund:
		m.sel.Fund = m.form.Value(keyFund)
	case keyQuick:
		m.sel.ChooseQuick(strings.TrimPrefix(m.form.Value(keyQuick), "$"))
		m.form.Field(keyCustom).SetValue("")
	case keyCustom:
		m.sel.SetCustom(m.form.Value(keyCustom))
		if m.sel.Custom != "" {
			m.form.Field(keyQuick).SetChoice("")
		}
	}
	m.form.Field(keyGive).Label = m.sel.ButtonLabel()
}

func (m *Model) press(key string) tea.Cmd {
	switch key {
	case keyGive:
		return m.give()
	case keyImpact:
		return action.Cmd(source, action.ShowDetail{Title: "Your Impact", Body: giving.Join(giving.Impact)})
	case keyOther:
		ways := giving.OtherWays(m.deps.Church.ShortName, m.deps.Church.Address)
		return action.Cmd(source, action.ShowDetail{Title: "Other Ways to Give", Body: giving.Join(ways)})
	}
	return nil
}

func (m *Model) give() tea.Cmd {
	gift, err := m.sel.Resolve()
	if err != nil {
		m.form.SetError(err)
		return nil
	}
	return action.Cmd(source, action.AskConfirm{
		Title:   "Confirm Giving",
		Message: gift.ConfirmMessage(),
		Context: giftRequest{gift: gift},
	})
}

func (m *Model) given(g giving.Gift) tea.Cmd {
	m.deps.Logger().Info("gift confirmed", "fund", g.Fund, "cents", g.Cents)
	return action.Cmd(source, action.ShowDetail{Title: "Success", Body: giving.ThankYou})
}

// SetLayout implements screens.Screen.
func (m *Model) SetLayout(l layout.Layout, width, height int) {
	m.layout = l
	m.width = width
	m.height = height
	m.form.SetSize(m.formWidth(), max(height-len(m.header())-len(m.footer()), 3))
}

func (m *Model) formWidth() int {
	return min(m.layout.ContentWidth(), maxFormWidth)
}

// Capturing implements screens.Screen.
func (m *Model) Capturing() bool { return m.form.Capturing() }

// HelpContexts implements screens.Screen.
func (m *Model) HelpContexts() []string { return []string{"global", "form"} }

// Hints implements screens.Screen.
func (m *Model) Hints() string { return "tab next · ←/→ choose · ctrl+s give · esc back" }

func (m *Model) header() []string {
	t := styles.T()
	lines := []string{
		screens.Title(m.layout, "Give Online"),
		t.S().Muted.Render("Support God's work through " + m.deps.Church.ShortName),
	}
	if !m.layout.Compact() {
		lines = append(lines, "")
		lines = append(lines, screens.Verse(content.GivingVerse, m.formWidth())...)
	}
	return append(lines, "")
}

func (m *Model) footer() []string {
	if m.layout.Compact() {
		return nil
	}
	t := styles.T()
	w := m.formWidth()
	lines := []string{"", t.S().Success.Render("Secure & Safe")}
	lines = append(lines, strings.Split(t.S().Muted.Render(render.Wrap(giving.Security, w)), "\n")...)
	return append(lines, t.S().Subtle.Render(render.Fit(giving.Disclaimer, w)))
}

// View implements screens.Screen.
func (m *Model) View() string {
	lines := m.header()
	lines = append(lines, m.form.View())
	lines = append(lines, m.footer()...)
	return render.Indent(strings.Join(lines, "\n"), m.layout.Padding())
}
