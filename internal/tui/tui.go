// Package tui is the terminal front-end for the authoring wizard.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contentforge/internal/account"
	"contentforge/internal/core"
	"contentforge/internal/llm"
	"contentforge/internal/store"
	"contentforge/internal/wizard"
)

type model struct {
	machine  *wizard.Machine
	store    *store.Store
	user     account.User
	input    string
	status   string
	working  bool
	width    int
	height   int
	quitting bool
}

// stepDoneMsg reports the outcome of processing one input.
type stepDoneMsg struct {
	err error
}

// InitialModel builds the TUI around a wizard for the given type. The
// store may be nil, which disables saving.
func InitialModel(contentType core.ContentType, gateway *llm.Gateway, st *store.Store, user account.User) model {
	return model{
		machine: wizard.NewMachine(contentType, gateway),
		store:   st,
		user:    user,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case stepDoneMsg:
		m.working = false
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = ""
		}

	case tea.KeyMsg:
		if m.working {
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+s":
			m.status = m.save()
		case "enter":
			input := m.input
			m.input = ""
			m.working = true
			m.status = "Working..."
			machine := m.machine
			return m, func() tea.Msg {
				return stepDoneMsg{err: machine.ProcessInput(context.Background(), input)}
			}
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if msg.Type == tea.KeyRunes || msg.String() == " " {
				m.input += msg.String()
			}
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Goodbye.\n"
	}

	session := m.machine.Session()

	titleStyle := lipgloss.NewStyle().Bold(true)
	promptStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(fmt.Sprintf("%s  [%s]", session.ContentType, session.Step)))
	b.WriteString(promptStyle.Render(m.machine.GetPrompt()))
	b.WriteString("\n\n")

	if ctx := m.stepContext(session); ctx != "" {
		b.WriteString(ctx)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(errStyle.Render(m.status))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "> %s█\n", m.input)
	b.WriteString("\n[enter] Submit | [ctrl+s] Save | [esc] Quit")

	return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
}

// stepContext renders the suggestions or draft relevant to the step.
func (m model) stepContext(session core.Session) string {
	var b strings.Builder
	switch session.Step {
	case core.StepTitle:
		for i, title := range session.TitleSuggestions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		}
	case core.StepKeywords, core.StepHashtags, core.StepLSI:
		suggestions := session.Keywords
		if session.Step == core.StepLSI {
			suggestions = session.LSIKeywords
		}
		if len(suggestions) > 0 {
			b.WriteString(strings.Join(suggestions, ", "))
			b.WriteString("\n")
		}
	case core.StepOutline:
		for _, node := range session.Outline {
			switch node.Kind {
			case core.NodeList:
				for _, item := range node.Items {
					fmt.Fprintf(&b, "    - %s\n", item)
				}
			default:
				fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(string(node.Kind)), node.Content)
			}
		}
	case core.StepContent:
		content := session.Content
		if len(content) > 2000 {
			content = content[:2000] + "..."
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String()
}

// save persists the current session, enforcing the plan limit on the
// first save of a piece. Returns a status line for the footer.
func (m model) save() string {
	if m.store == nil {
		return "No store configured; cannot save"
	}
	session := m.machine.Session()
	if session.Content == "" {
		return "Nothing to save yet"
	}

	if session.CurrentID == "" {
		tracker := account.NewUsageTracker(m.store)
		if err := tracker.CheckUsage(m.user, time.Now()); err != nil {
			return err.Error()
		}
	}

	record := m.machine.BuildRecord(m.user.ID, time.Now())
	if err := m.store.SaveRecord(record); err != nil {
		return "Save failed: " + err.Error()
	}
	return "Saved as " + record.ID
}

// StartWizard runs the authoring TUI for one content type.
func StartWizard(contentType core.ContentType, gateway *llm.Gateway, st *store.Store, user account.User) {
	p := tea.NewProgram(InitialModel(contentType, gateway, st, user), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
