package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginFormModel is the username/password form with the stay-signed-in
// toggle. Focus cycles inputs → toggle with tab.
type loginFormModel struct {
	inputs       []textinput.Model
	focus        int
	staySignedIn bool
	submitting   bool
}

func newLoginFormModel() loginFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "username"
	inputs[1].Placeholder = "password"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[0].Focus()

	return loginFormModel{inputs: inputs}
}

func (m *loginFormModel) nextField() {
	m.focus = (m.focus + 1) % 3
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *loginFormModel) onToggle() bool { return m.focus == 2 }

func (m loginFormModel) update(msg tea.Msg) (loginFormModel, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m loginFormModel) View() string {
	check := "[ ]"
	if m.staySignedIn {
		check = "[x]"
	}
	marker := "  "
	if m.onToggle() {
		marker = "> "
	}

	out := labelStyle.Render("Username:") + m.inputs[0].View() + "\n"
	out += labelStyle.Render("Password:") + m.inputs[1].View() + "\n"
	out += marker + check + " stay signed in\n"
	out += helpStyle.Render("tab next field  space toggle  enter sign in  ctrl+c quit")
	return out
}

// codeFormModel is a single-input prompt, reused for the second-factor code
// and the PIN.
type codeFormModel struct {
	input      textinput.Model
	label      string
	submitting bool
}

func newCodeFormModel(label, placeholder string) codeFormModel {
	input := textinput.New()
	input.Width = 20
	input.Placeholder = placeholder
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return codeFormModel{input: input, label: label}
}

func (m codeFormModel) update(msg tea.Msg) (codeFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m codeFormModel) View() string {
	out := labelStyle.Render(m.label) + m.input.View() + "\n"
	out += helpStyle.Render("enter submit  ctrl+c quit")
	return out
}
