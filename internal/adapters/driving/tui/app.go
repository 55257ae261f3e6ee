// Package tui provides the interactive terminal converter. It binds the
// conversion pipeline to a text input and two base selectors and
// re-converts on every keystroke, showing a placeholder instead of an
// error while the input is incomplete.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/radix-labs/radix-cli/internal/core/convert"
	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// placeholder is shown when there is nothing valid to convert.
const placeholder = "…"

// Base selector bounds. The string alphabet runs out past 61, so the
// interactive surface stays within it; the convert command has no such
// limit on the sequence form.
const (
	minBase = domain.MinBase
	maxBase = 61
)

// selector identifies which base the arrow keys adjust.
type selector int

const (
	selectInput selector = iota
	selectOutput
)

// App is the bubbletea model for the interactive converter.
type App struct {
	styles *Styles
	input  textinput.Model

	inputBase  int
	outputBase int
	focused    selector

	result string
	width  int
	height int
}

// NewApp creates the converter app with the given starting bases.
// Out-of-range bases are clamped to the selector bounds.
func NewApp(inputBase, outputBase int) *App {
	ti := textinput.New()
	ti.Placeholder = "number, e.g. FF0.8"
	ti.Prompt = "> "
	ti.Focus()

	a := &App{
		styles:     DefaultStyles(),
		input:      ti,
		inputBase:  clampBase(inputBase),
		outputBase: clampBase(outputBase),
		focused:    selectOutput,
		result:     placeholder,
		width:      80,
		height:     24,
	}
	return a
}

func clampBase(b int) int {
	if b < minBase {
		return minBase
	}
	if b > maxBase {
		return maxBase
	}
	return b
}

// Init starts the cursor blink.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key and window events and recomputes the result after
// every change.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyTab:
			if a.focused == selectInput {
				a.focused = selectOutput
			} else {
				a.focused = selectInput
			}
			return a, nil
		case tea.KeyUp:
			a.adjustBase(1)
			return a, nil
		case tea.KeyDown:
			a.adjustBase(-1)
			return a, nil
		}
		if msg.String() == "q" && a.input.Value() == "" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.recompute()
	return a, cmd
}

func (a *App) adjustBase(delta int) {
	if a.focused == selectInput {
		a.inputBase = clampBase(a.inputBase + delta)
	} else {
		a.outputBase = clampBase(a.outputBase + delta)
	}
	a.recompute()
}

// recompute converts the current input in exact mode. Any error leaves
// the placeholder; a half-typed number is not an error worth showing.
func (a *App) recompute() {
	value := a.input.Value()
	if value == "" {
		a.result = placeholder
		return
	}

	opts := domain.Options{Exact: true, Recurring: true}
	out, err := convert.String(value, a.inputBase, a.outputBase, opts)
	if err != nil {
		a.result = placeholder
		return
	}
	a.result = out
}

// Result returns the current rendered conversion.
func (a *App) Result() string {
	return a.result
}

// Bases returns the current input and output bases.
func (a *App) Bases() (int, int) {
	return a.inputBase, a.outputBase
}

// View renders the converter.
func (a *App) View() string {
	s := a.styles

	inLabel := fmt.Sprintf("from base %d", a.inputBase)
	outLabel := fmt.Sprintf("to base %d", a.outputBase)
	if a.focused == selectInput {
		inLabel = s.Selected.Render("▸ " + inLabel)
		outLabel = s.Label.Render("  " + outLabel)
	} else {
		inLabel = s.Label.Render("  " + inLabel)
		outLabel = s.Selected.Render("▸ " + outLabel)
	}

	result := s.Result.Render(a.result)
	if a.result == placeholder {
		result = s.Placeholder.Render(a.result)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("radix"),
		"",
		a.input.View(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, inLabel, "   ", outLabel),
		"",
		s.Label.Render("result"),
		result,
		"",
		s.Help.Render("tab: switch base  ↑/↓: adjust  esc: quit"),
	)
	return s.Box.Render(body)
}
