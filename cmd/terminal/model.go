package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/review-generator/internal/app"
	"github.com/sevigo/review-generator/internal/core"
)

const (
	focusSnippet = iota
	focusLength
	focusSubmit
	focusCount
)

type model struct {
	styles  styles
	content *core.FormContent
	app     *app.App
	cleanup func()

	// UI Components
	snippet   textinput.Model
	length    textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	focus     int
	isLoading bool
	width     int

	status string
}

func initialModel(theme ThemeName) *model {
	styles := GetTheme(theme)

	snippet := textinput.New()
	snippet.Placeholder = "The pasta was"
	snippet.CharLimit = core.MaxSnippetRunes
	snippet.Width = 60
	snippet.Prompt = "► "
	snippet.Focus()

	length := textinput.New()
	length.SetValue(strconv.Itoa(core.MinMaxLength))
	length.CharLimit = len(strconv.Itoa(core.MaxMaxLength))
	length.Width = 6
	length.Prompt = "► "
	length.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = styles.success

	return &model{
		styles:    styles,
		content:   core.DefaultFormContent(),
		snippet:   snippet,
		length:    length,
		viewport:  viewport.New(80, 20),
		spinner:   sp,
		isLoading: true,
		width:     80,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(), m.spinner.Tick, textinput.Blink)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		case tea.KeyEnter:
			if m.isLoading || m.app == nil {
				return m, nil
			}
			return m, m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case appInitializedMsg:
		m.isLoading = false
		if msg.err != nil {
			m.status = m.styles.error.Render("Failed to start: " + msg.err.Error())
			return m, nil
		}
		m.app = msg.app
		m.cleanup = msg.cleanup
		m.content = msg.app.Content
		m.status = m.styles.success.Render(fmt.Sprintf("✓ model %s ready (%s)", m.app.Cfg.AI.GeneratorModel, m.app.Cfg.AI.LLMProvider))
		return m, nil

	case reviewsGeneratedMsg:
		m.isLoading = false
		m.status = m.styles.success.Render(fmt.Sprintf("✓ %d reviews generated", len(msg.set.Reviews)))
		m.viewport.SetContent(msg.rendered)
		m.viewport.GotoTop()
		return m, nil

	case errorMsg:
		m.isLoading = false
		m.status = m.styles.error.Render("⚠ " + describeError(msg.err))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width - 4
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-16, 5)
		m.snippet.Width = max(msg.Width-10, 20)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSnippet:
		m.snippet, cmd = m.snippet.Update(msg)
	case focusLength:
		m.length, cmd = m.length.Update(msg)
	}
	return m, cmd
}

func (m *model) setFocus(focus int) {
	m.focus = focus
	m.snippet.Blur()
	m.length.Blur()
	switch focus {
	case focusSnippet:
		m.snippet.Focus()
	case focusLength:
		m.length.Focus()
	}
}

func (m *model) submit() tea.Cmd {
	req, err := parseForm(m.snippet.Value(), m.length.Value())
	if err != nil {
		m.status = m.styles.error.Render("⚠ " + describeError(err))
		return nil
	}

	m.isLoading = true
	m.status = m.styles.inactive.Render("Generating reviews...")
	return tea.Batch(m.spinner.Tick, generateReviewsCmd(m.app, req, m.width))
}

// parseForm turns the raw input values into a request. Range checks are left
// to the review service.
func parseForm(snippet, length string) (core.UserRequest, error) {
	length = strings.TrimSpace(length)
	n, err := strconv.Atoi(length)
	if err != nil {
		return core.UserRequest{}, &core.ValidationError{Field: "max_length", Reason: "must be a whole number"}
	}
	return core.UserRequest{Snippet: snippet, MaxLength: n}, nil
}

func describeError(err error) string {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	return "review generation failed: " + err.Error()
}

func (m *model) View() string {
	if m.app == nil && m.isLoading {
		return fmt.Sprintf("\n  %s loading model...\n\n", m.spinner.View())
	}

	submit := m.styles.blurred.Render("[ " + m.content.SubmitLabel + " ]")
	if m.focus == focusSubmit {
		submit = m.styles.button.Render(m.content.SubmitLabel)
	}

	status := m.status
	if m.isLoading {
		status = m.spinner.View() + " " + status
	}

	return m.styles.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.title.Render(m.content.Title),
			m.styles.inactive.Render(m.content.Description),
			"",
			m.styles.label.Render(m.content.SnippetLabel),
			m.snippet.View(),
			"",
			m.styles.label.Render(m.content.LengthLabel),
			m.length.View(),
			submit,
			"",
			status,
			m.styles.results.Render(m.viewport.View()),
			m.styles.inactive.Render("tab: next field • enter: generate • pgup/pgdn: scroll • esc: quit"),
		),
	)
}
