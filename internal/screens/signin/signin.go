// Package signin is the sign-in / sign-up screen.
package signin

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/auth"
	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/ui/action"
	"github.com/gccma/gccma/internal/ui/form"
	"github.com/gccma/gccma/internal/ui/layout"
	"github.com/gccma/gccma/internal/ui/render"
	"github.com/gccma/gccma/internal/ui/styles"
)

const source = "auth"

// Field keys.
const (
	keyFirst    = "first"
	keyLast     = "last"
	keyPhone    = "phone"
	keyEmail    = "email"
	keyPassword = "password"
	keyConfirm  = "confirm"
	keySubmit   = "submit"
	keyForgot   = "forgot"
	keySwitch   = "switch"
	providerKey = "provider:"
)

// signedInMsg arrives when the simulated sign-in finishes.
type signedInMsg struct {
	user auth.User
}

// Model is the auth screen.
type Model struct {
	deps    screens.Deps
	layout  layout.Layout
	width   int
	height  int
	form    form.Model
	signUp  bool
	loading bool
	spinner spinner.Model
}

// New creates the auth screen in sign-in mode.
func New(deps screens.Deps) *Model {
	fields := []*form.Field{
		form.Text(keyFirst, "First Name", "John"),
		form.Text(keyLast, "Last Name", "Doe"),
		form.Text(keyPhone, "Phone Number", "+1 (555) 123-4567"),
		form.Text(keyEmail, "Email Address", "john@example.com"),
		form.Password(keyPassword, "Password", "Enter your password"),
		form.Password(keyConfirm, "Confirm Password", "Confirm your password"),
		form.Button(keyForgot, "Forgot Password?"),
		form.Button(keySubmit, "Sign In"),
	}
	for _, p := range auth.Providers {
		fields = append(fields, form.Button(providerKey+p, "Continue with "+p))
	}
	fields = append(fields, form.Button(keySwitch, ""))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Heading

	m := &Model{deps: deps, form: form.New(fields...), spinner: sp}
	m.setMode(false)
	return m
}

// setMode switches between sign in and sign up.
func (m *Model) setMode(signUp bool) {
	m.signUp = signUp
	for _, k := range []string{keyFirst, keyLast, keyPhone, keyConfirm} {
		m.form.SetHidden(k, !signUp)
	}
	m.form.SetHidden(keyForgot, signUp)
	if signUp {
		m.form.Field(keySubmit).Label = "Create Account"
		m.form.Field(keySwitch).Label = "Already have an account? Sign In"
		m.form.FocusKey(keyFirst)
	} else {
		m.form.Field(keySubmit).Label = "Sign In"
		m.form.Field(keySwitch).Label = "Don't have an account? Sign Up"
		m.form.FocusKey(keyEmail)
	}
	m.form.SetError(nil)
}

// SignUp reports whether the screen is in sign-up mode.
func (m *Model) SignUp() bool { return m.signUp }

// Loading reports whether a sign-in is in progress.
func (m *Model) Loading() bool { return m.loading }

// Init implements screens.Screen.
func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements screens.Screen.
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signedInMsg:
		m.loading = false
		if m.deps.Session != nil {
			m.deps.Session.Login(msg.user)
		}
		m.deps.Logger().Info("signed in", "email", msg.user.Email)
		return m, tea.Batch(
			action.Cmd(source, action.Navigate{To: content.RouteHome}),
			action.Cmd(source, action.Notify{Text: "Welcome, " + msg.user.FirstName + "!"}),
		)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
	}

	res, cmd := m.form.Update(msg)
	switch res.Event {
	case form.Submitted:
		return m, tea.Batch(cmd, m.submit())
	case form.Pressed:
		return m, tea.Batch(cmd, m.press(res.Key))
	case form.Changed:
		m.form.SetError(nil)
	}
	return m, cmd
}

func (m *Model) press(key string) tea.Cmd {
	switch {
	case key == keySubmit:
		return m.submit()
	case key == keySwitch:
		m.setMode(!m.signUp)
		return nil
	case key == keyForgot:
		return action.Cmd(source, action.Notify{Text: "Password reset is not available yet"})
	case strings.HasPrefix(key, providerKey):
		provider := strings.TrimPrefix(key, providerKey)
		return m.start(auth.SocialDelay, auth.UserFromProvider(provider, auth.MemberSince))
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	f := auth.Form{
		SignUp:          m.signUp,
		Email:           m.form.Value(keyEmail),
		Password:        m.form.Value(keyPassword),
		ConfirmPassword: m.form.Value(keyConfirm),
		FirstName:       m.form.Value(keyFirst),
		LastName:        m.form.Value(keyLast),
		Phone:           m.form.Value(keyPhone),
	}
	if !f.SignUp {
		f.FirstName, f.LastName, f.Phone = "", "", ""
	}
	if err := f.Validate(); err != nil {
		m.form.SetError(err)
		return nil
	}
	return m.start(auth.SimulatedDelay, auth.UserFromForm(f, auth.MemberSince))
}

// start shows the spinner and finishes the sign-in after delay.
func (m *Model) start(delay time.Duration, user auth.User) tea.Cmd {
	m.loading = true
	m.form.SetError(nil)
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(delay, func(time.Time) tea.Msg { return signedInMsg{user: user} }),
	)
}

// SetLayout implements screens.Screen.
func (m *Model) SetLayout(l layout.Layout, width, height int) {
	m.layout = l
	m.width = width
	m.height = height
	m.form.SetSize(min(l.ContentWidth(), 60), max(height-5, 3))
}

// Capturing implements screens.Screen.
func (m *Model) Capturing() bool { return m.loading || m.form.Capturing() }

// HelpContexts implements screens.Screen.
func (m *Model) HelpContexts() []string { return []string{"global", "form"} }

// Hints implements screens.Screen.
func (m *Model) Hints() string { return "tab next · enter select · ctrl+s submit · esc back" }

// View implements screens.Screen.
func (m *Model) View() string {
	t := styles.T()
	title, subtitle := "Welcome Back", "Sign in to continue your journey"
	if m.signUp {
		title, subtitle = "Create Account", "Join the "+m.deps.Church.ShortName+" family today"
	}

	formWidth := min(m.layout.ContentWidth(), 60)
	left := max((m.width-formWidth)/2, 0)

	lines := []string{
		render.Center(screens.Title(m.layout, title), m.width),
		render.Center(t.S().Muted.Render(subtitle), m.width),
		"",
	}
	if m.loading {
		status := "Signing In..."
		if m.signUp {
			status = "Creating Account..."
		}
		lines = append(lines, "", render.Center(m.spinner.View()+" "+status, m.width))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, render.Indent(m.form.View(), left))
	return strings.Join(lines, "\n")
}
