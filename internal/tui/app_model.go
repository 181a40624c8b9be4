package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pwdman/pwdman-client/internal/service"
	"github.com/pwdman/pwdman-client/models"
)

type screen int

const (
	screenLogin screen = iota
	screenPass2
	screenPin
	screenMenu
	screenSetPin
	screenConfirm2FA
)

type authStepMsg struct {
	state service.State
	err   error
}

type profileMsg struct {
	profile models.UserProfile
	err     error
}

type passphraseMsg struct {
	copied bool
	err    error
}

type loggedOutMsg struct{}

type settingsMsg struct {
	status string
	err    error
}

type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	currentScreen screen
	login         loginFormModel
	code          codeFormModel
	initCmd       tea.Cmd

	profile *models.UserProfile
	status  string
	err     error
}

func newAppModel(ctx context.Context, services *service.ClientServices, initial service.State) appModel {
	m := appModel{
		ctx:      ctx,
		services: services,
		login:    newLoginFormModel(),
	}
	m.initCmd = m.applyState(initial)
	return m
}

// applyState moves the UI to the screen matching the ceremony state.
// Entering Authenticated is the point where a data-protection passphrase
// must exist, so that transition returns a command bootstrapping one.
func (m *appModel) applyState(st service.State) tea.Cmd {
	switch st {
	case service.StateRequiresPass2:
		m.currentScreen = screenPass2
		m.code = newCodeFormModel("2FA code:", "123456")
	case service.StateRequiresPin:
		m.currentScreen = screenPin
		m.code = newCodeFormModel("PIN:", "pin")
	case service.StateAuthenticated:
		m.currentScreen = screenMenu
		return m.ensureKeyCmd(false)
	default:
		m.currentScreen = screenLogin
		m.login = newLoginFormModel()
	}
	return nil
}

// ensureKeyCmd fetches the profile and makes sure a data-protection
// passphrase exists, generating one on first login. toClipboard also copies
// the passphrase out for the manual menu action.
func (m appModel) ensureKeyCmd(toClipboard bool) tea.Cmd {
	return func() tea.Msg {
		profile, err := m.services.Auth.GetUserProfile(m.ctx, true)
		if err != nil {
			return passphraseMsg{err: err}
		}
		key, err := m.services.Custody.EnsureKey(profile)
		if err != nil {
			return passphraseMsg{err: err}
		}
		copied := toClipboard && clipboard.WriteAll(key) == nil
		return passphraseMsg{copied: copied}
	}
}

func (m appModel) Init() tea.Cmd {
	return m.initCmd
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case authStepMsg:
		m.login.submitting = false
		m.code.submitting = false
		m.err = msg.err
		if msg.err == nil {
			m.status = ""
		}
		// Applied even on error: an implicit logout may have reset the
		// ceremony under us.
		return m, m.applyState(msg.state)

	case profileMsg:
		m.err = msg.err
		if msg.err == nil {
			p := msg.profile
			m.profile = &p
		}
		return m, nil

	case passphraseMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = "data-protection key ready"
			if msg.copied {
				m.status += " (copied to clipboard)"
			}
		}
		return m, nil

	case settingsMsg:
		m.code.submitting = false
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.status
		}
		m.currentScreen = screenMenu
		return m, nil

	case loggedOutMsg:
		m.profile = nil
		m.status = "signed out"
		return m, m.applyState(service.StateUnauthenticated)
	}

	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenPass2, screenPin:
		return m.updateCode(msg)
	case screenSetPin, screenConfirm2FA:
		return m.updateSettingsCode(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.login.nextField()
		return m, nil
	case " ":
		if m.login.onToggle() {
			m.login.staySignedIn = !m.login.staySignedIn
			return m, nil
		}
	case "enter":
		if m.login.submitting {
			return m, nil
		}
		m.login.submitting = true
		username := m.login.inputs[0].Value()
		password := m.login.inputs[1].Value()
		stay := m.login.staySignedIn
		return m, func() tea.Msg {
			state, err := m.services.Auth.SubmitPassword(m.ctx, username, password, stay)
			return authStepMsg{state: state, err: err}
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m appModel) updateCode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if m.code.submitting {
			return m, nil
		}
		m.code.submitting = true
		value := m.code.input.Value()
		isPin := m.currentScreen == screenPin
		return m, func() tea.Msg {
			var state service.State
			var err error
			if isPin {
				state, err = m.services.Auth.SubmitPin(m.ctx, value)
			} else {
				state, err = m.services.Auth.SubmitPass2(m.ctx, value)
			}
			return authStepMsg{state: state, err: err}
		}
	}

	var cmd tea.Cmd
	m.code, cmd = m.code.update(msg)
	return m, cmd
}

func (m appModel) updateSettingsCode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentScreen = screenMenu
		return m, nil
	case "enter":
		if m.code.submitting {
			return m, nil
		}
		m.code.submitting = true
		value := m.code.input.Value()
		isPin := m.currentScreen == screenSetPin
		return m, func() tea.Msg {
			if isPin {
				if err := m.services.Settings.SetPin(m.ctx, value); err != nil {
					return settingsMsg{err: err}
				}
				return settingsMsg{status: "PIN registered"}
			}
			confirmed, err := m.services.Settings.ConfirmTwoFactor(m.ctx, value)
			if err != nil {
				return settingsMsg{err: err}
			}
			if !confirmed {
				return settingsMsg{status: "code not accepted, 2FA unchanged"}
			}
			return settingsMsg{status: "two-factor authentication enabled"}
		}
	}

	var cmd tea.Cmd
	m.code, cmd = m.code.update(msg)
	return m, cmd
}

func (m appModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p":
		return m, func() tea.Msg {
			profile, err := m.services.Auth.GetUserProfile(m.ctx, true)
			return profileMsg{profile: profile, err: err}
		}
	case "g":
		return m, m.ensureKeyCmd(true)
	case "n":
		m.currentScreen = screenSetPin
		m.code = newCodeFormModel("New PIN:", "pin")
		return m, nil
	case "i", "o":
		optIn := msg.String() == "i"
		return m, func() tea.Msg {
			if err := m.services.Settings.SetLongLivedTokenOptIn(m.ctx, optIn); err != nil {
				return settingsMsg{err: err}
			}
			if optIn {
				return settingsMsg{status: "long-lived token enabled"}
			}
			return settingsMsg{status: "long-lived token disabled"}
		}
	case "f":
		return m, func() tea.Msg {
			setup, err := m.services.Settings.StartTwoFactorSetup(m.ctx)
			if err != nil {
				return settingsMsg{err: err}
			}
			return settingsMsg{status: fmt.Sprintf("enrol secret %s (%s), then press c to confirm", setup.SecretKey, setup.Issuer)}
		}
	case "c":
		m.currentScreen = screenConfirm2FA
		m.code = newCodeFormModel("2FA code:", "123456")
		return m, nil
	case "d":
		return m, func() tea.Msg {
			if err := m.services.Settings.DisableTwoFactor(m.ctx); err != nil {
				return settingsMsg{err: err}
			}
			return settingsMsg{status: "two-factor authentication disabled"}
		}
	case "l":
		return m, func() tea.Msg {
			if err := m.services.Auth.Logout(m.ctx); err != nil {
				return authStepMsg{state: m.services.Auth.State(), err: err}
			}
			return loggedOutMsg{}
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) View() string {
	var out string

	switch m.currentScreen {
	case screenLogin:
		out = titleStyle.Render("pwdman — sign in") + "\n" + m.login.View()
	case screenPass2:
		out = titleStyle.Render("pwdman — second factor") + "\n" + m.code.View()
	case screenPin:
		out = titleStyle.Render("pwdman — enter PIN") + "\n" + m.code.View()
	case screenSetPin:
		out = titleStyle.Render("pwdman — register PIN") + "\n" + m.code.View()
	case screenConfirm2FA:
		out = titleStyle.Render("pwdman — confirm second factor") + "\n" + m.code.View()
	default:
		out = titleStyle.Render("pwdman — signed in") + "\n" + m.menuView()
	}

	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status)
	}
	if m.err != nil {
		out += "\n" + errorStyle.Render(fmt.Sprintf("error: %v (%s)", m.err, service.CodeOf(m.err)))
	}
	return out + "\n"
}

func (m appModel) menuView() string {
	out := ""
	if m.profile != nil {
		out += fmt.Sprintf("account: %s <%s>\n\n", m.profile.Name, m.profile.Email)
	}
	out += "p profile   g generate/copy data-protection key   n set pin\n"
	out += "i/o long-lived token on/off   f/c/d 2fa setup/confirm/off\n"
	out += "l sign out   q quit"
	return out
}
