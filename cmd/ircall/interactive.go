package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smartir/irabi/abi"
	"github.com/smartir/irabi/codec"
	"github.com/smartir/irabi/loader"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	methodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	payloadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectMethod modelState = iota
	stateInputArgs
	stateShowPayload
)

type interactiveModel struct {
	err      error
	meta     *abi.Metadata
	abiPath  string
	wasmPath string
	payload  string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type loadedMsg struct {
	err  error
	meta *abi.Metadata
}

type encodedMsg struct {
	err     error
	payload string
}

func runInteractive(abiPath, wasmPath string) error {
	m := &interactiveModel{
		abiPath:  abiPath,
		wasmPath: wasmPath,
		state:    stateSelectMethod,
	}
	_, err := tea.NewProgram(m, tea.WithOutput(os.Stdout)).Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadMetadata
}

func (m *interactiveModel) loadMetadata() tea.Msg {
	if m.abiPath != "" {
		data, err := os.ReadFile(m.abiPath)
		if err != nil {
			return loadedMsg{err: err}
		}
		meta, err := abi.FromJSON(data)
		return loadedMsg{meta: meta, err: err}
	}

	data, err := os.ReadFile(m.wasmPath)
	if err != nil {
		return loadedMsg{err: err}
	}
	meta, err := loader.ExtractMetadata(context.Background(), data)
	return loadedMsg{meta: meta, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			// "q" is a valid character inside an argument field.
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectMethod && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			// Keys can arrive before metadata loads, or after a failed
			// load.
			if m.state == stateSelectMethod && m.meta != nil && m.selected < len(m.meta.Methods)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectMethod:
				if m.meta == nil || len(m.meta.Methods) == 0 {
					return m, nil
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.encode
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.encode

			case stateShowPayload:
				m.state = stateSelectMethod
				m.payload = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectMethod
				m.inputs = nil
			case stateShowPayload:
				m.state = stateSelectMethod
				m.payload = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.meta = msg.meta

	case encodedMsg:
		m.payload = msg.payload
		m.err = msg.err
		m.state = stateShowPayload
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	method := &m.meta.Methods[m.selected]
	m.inputs = make([]textinput.Model, len(method.Inputs))
	for i, in := range method.Inputs {
		ti := textinput.New()
		ti.Placeholder = in.Type
		ti.Prompt = fmt.Sprintf("param[%d]: ", i)
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) encode() tea.Msg {
	method := &m.meta.Methods[m.selected]
	tokens := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		tokens[i] = input.Value()
	}

	payload, err := method.EncodeParams(tokens, codec.New())
	if err != nil {
		return encodedMsg{err: err}
	}
	return encodedMsg{payload: fmt.Sprintf("%x", payload)}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowPayload {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.meta == nil {
		return "Loading metadata..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("IR Call Encoder"))
	b.WriteString(fmt.Sprintf("  abi v%d\n\n", m.meta.ABIVersion))

	switch m.state {
	case stateSelectMethod:
		b.WriteString("Select a method:\n\n")
		for i, method := range m.meta.Methods {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatMethod(&method)))
			} else {
				b.WriteString(cursor + m.formatMethod(&method))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter encode • q quit"))

	case stateInputArgs:
		method := &m.meta.Methods[m.selected]
		b.WriteString(fmt.Sprintf("Encoding %s\n\n", methodStyle.Render(method.Name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(method.Inputs[i].Type))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter encode • esc back"))

	case stateShowPayload:
		method := &m.meta.Methods[m.selected]
		b.WriteString(fmt.Sprintf("Payload for %s:\n\n", methodStyle.Render(method.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(payloadStyle.Render(m.payload))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatMethod(method *abi.MethodMeta) string {
	params := make([]string, len(method.Inputs))
	for i, in := range method.Inputs {
		params[i] = typeStyle.Render(in.Type)
	}
	sig := methodStyle.Render(method.Name) + "(" + strings.Join(params, ", ") + ")"
	if len(method.Outputs) > 0 {
		sig += " -> " + typeStyle.Render(method.Outputs[0].Type)
	}
	return sig
}
