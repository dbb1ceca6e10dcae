// internal/chat/tui.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/forge/internal/appconfig"
	"github.com/mwiater/forge/internal/ollama"
	"github.com/mwiater/forge/internal/util"
)

// chatMessage represents a single message exchanged with the model.
type chatMessage struct {
	Role    string
	Content string
}

// responseMsg carries the outcome of one run invocation back into the UI loop.
type responseMsg struct {
	content  string
	timedOut bool
	err      error
}

// tickMsg drives the elapsed-time display while a response is pending.
type tickMsg time.Time

// model is the Bubble Tea model for the session TUI.
type model struct {
	ctx       context.Context
	client    *ollama.Client
	modelName string
	task      string
	timeout   time.Duration

	textArea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	history       []chatMessage
	isLoading     bool
	err           error
	width, height int
	startTime     time.Time
}

// initialModel creates and initializes the session model.
func initialModel(ctx context.Context, client *ollama.Client, cfg appconfig.Config, modelName, task string) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ta := textarea.New()
	ta.Placeholder = "Send a message..."
	ta.Prompt = "Ask Anything: "
	ta.ShowLineNumbers = false
	ta.CharLimit = -1
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)

	return &model{
		ctx:       ctx,
		client:    client,
		modelName: modelName,
		task:      task,
		timeout:   cfg.SessionTimeout(),
		textArea:  ta,
		viewport:  viewport.New(100, 5),
		spinner:   s,
	}
}

// sendCmd runs one prompt against the model in the background and reports the
// outcome. Each send is a fresh invocation; a timeout is surfaced as a notice,
// not an error.
func (m *model) sendCmd(prompt string) tea.Cmd {
	return func() tea.Msg {
		runCtx, cancel := context.WithTimeout(m.ctx, m.timeout)
		defer cancel()
		response, err := m.client.Generate(runCtx, m.modelName, prompt)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return responseMsg{timedOut: true}
			}
			return responseMsg{err: err}
		}
		return responseMsg{content: strings.TrimSpace(response)}
	}
}

// tickCmd sends a tickMsg at a regular interval.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init auto-sends the comprehensive overview prompt so the session opens with
// a full demonstration of the specialist.
func (m *model) Init() tea.Cmd {
	m.isLoading = true
	m.startTime = time.Now()
	m.history = append(m.history, chatMessage{Role: "user", Content: OverviewPrompt(m.task)})
	return tea.Batch(m.spinner.Tick, m.sendCmd(OverviewPrompt(m.task)), tickCmd())
}

// Update is the central update function for the session TUI.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			input := strings.TrimSpace(m.textArea.Value())
			if input == "" || m.isLoading {
				break
			}
			if IsExitCommand(input) {
				return m, tea.Quit
			}
			m.history = append(m.history, chatMessage{Role: "user", Content: input})
			m.textArea.Reset()
			m.isLoading = true
			m.err = nil
			m.startTime = time.Now()
			cmds = append(cmds, m.spinner.Tick, m.sendCmd(input), tickCmd())
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.textArea.SetWidth(msg.Width - 3)
		headerHeight := 3
		footerHeight := 4
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight

	case responseMsg:
		m.isLoading = false
		switch {
		case msg.err != nil:
			m.err = msg.err
		case msg.timedOut:
			m.history = append(m.history, chatMessage{Role: "assistant", Content: "(response timed out, but your model is ready)"})
		default:
			m.history = append(m.history, chatMessage{Role: "assistant", Content: msg.content})
		}
		m.textArea.Focus()
		m.viewport.GotoBottom()
		return m, nil

	case tickMsg:
		if m.isLoading {
			return m, tickCmd()
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.textArea, cmd = m.textArea.Update(msg)
	cmds = append(cmds, cmd)

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the session: a header badge, the conversation viewport, and
// either the spinner or the input area.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var builder strings.Builder

	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	taskBadge := headerStyle.Render(fmt.Sprintf("Task: %s", util.TruncateRunes(m.task, 40)))
	modelBadge := headerStyle.MarginLeft(1).Render(fmt.Sprintf("Model: %s", m.modelName))
	help := lipgloss.NewStyle().Faint(true).Render(" (exit/quit/bye or esc to leave)")
	builder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, taskBadge, modelBadge, help) + "\n\n")

	userStyle := lipgloss.NewStyle().Bold(true)
	assistantStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))

	var historyBuilder strings.Builder
	for _, msg := range m.history {
		role := userStyle.Render("You: ")
		if msg.Role == "assistant" {
			role = assistantStyle.Render("Assistant: ")
		}
		wrapped := lipgloss.NewStyle().Width(m.width - lipgloss.Width(role) - 2).Render(msg.Content)
		historyBuilder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, role, wrapped) + "\n")
	}
	m.viewport.SetContent(historyBuilder.String())
	builder.WriteString(m.viewport.View())

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		builder.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.isLoading {
		timer := fmt.Sprintf("%.1f", time.Since(m.startTime).Seconds())
		builder.WriteString(fmt.Sprintf("\n%s Assistant is thinking... %ss", m.spinner.View(), timer))
	} else {
		builder.WriteString("\n" + m.textArea.View())
	}

	return builder.String()
}

// RunTUI starts the full-screen session. It returns once the user quits with
// an exit keyword, esc, or ctrl+c; all of those are clean terminations.
func RunTUI(ctx context.Context, client *ollama.Client, cfg appconfig.Config, modelName, task string) error {
	m := initialModel(ctx, client, cfg, modelName, task)
	m.textArea.Focus()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("session UI: %w", err)
	}
	return nil
}
