// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

// Package tui is the terminal front-end: a welcome screen with the agent
// roster, a chat transcript with per-message actions, and an activity
// timeline of agent processing steps. All state mutation happens in the
// single bubbletea update loop; feed goroutines hand their events back
// through a polled bridge channel.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/nexuscommand/nexusdeck/pkg/digest"
	"github.com/nexuscommand/nexusdeck/pkg/export"
	"github.com/nexuscommand/nexusdeck/pkg/feed"
	"github.com/nexuscommand/nexusdeck/pkg/logger"
	"github.com/nexuscommand/nexusdeck/pkg/notes"
	"github.com/nexuscommand/nexusdeck/pkg/roster"
	"github.com/nexuscommand/nexusdeck/pkg/theme"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

const (
	tickInterval       = 200 * time.Millisecond
	thinkingFrameCount = 4
	headerHeight       = 1
	statusBarHeight    = 1
	textareaHeight     = 3
	// chromeHeight accounts for header, status bar, textarea, and separators
	chromeHeight   = headerHeight + statusBarHeight + textareaHeight + 2
	statusLinger   = 4 * time.Second
	minPanelWidth  = 32
	maxPanelWidth  = 56
)

// thinkingFrames are the animation frames for the thinking indicator
var thinkingFrames = [thinkingFrameCount]string{"⠋", "⠙", "⠹", "⠸"}

// tickMsg drives the thinking animation and event polling
type tickMsg time.Time

type viewState int

const (
	welcomeView viewState = iota
	chatView
)

type focusState int

const (
	focusInput focusState = iota
	focusBrowse
)

type panelState int

const (
	panelNone panelState = iota
	panelDigest
	panelSession
	panelSettings
	panelHelp
)

// Options carries the wired dependencies for the console.
type Options struct {
	Feed     feed.Feed
	Roster   *roster.Registry
	Notes    *notes.Store
	Digest   *digest.Digest
	Exporter *export.Exporter
	Theme    theme.Theme

	// FeedLabel names the active feed mode in the header ("scripted demo",
	// "replay: weekly.json").
	FeedLabel string
	// TimelineExpanded is the starting state of the activity timeline.
	TimelineExpanded bool
	// SettingsLines are the resolved config values the settings panel shows.
	SettingsLines []string
}

// Model is the bubbletea model for the NexusDeck console.
type Model struct {
	feed     feed.Feed
	registry *roster.Registry
	notes    *notes.Store
	digest   *digest.Digest
	exporter *export.Exporter
	styles   theme.Styles
	palette  theme.Theme

	transcript *transcript.Transcript
	bridge     *eventBridge
	renderer   *glamour.TermRenderer

	viewport viewport.Model
	textarea textarea.Model
	keys     keyMap

	view         viewState
	focus        focusState
	panel        panelState
	panelTitle   string
	panelBody    string
	cleanView    bool
	timelineOpen bool

	thinking      bool
	thinkFrame    int
	thinkingID    string
	thinkingAgent string

	selected int
	msgLines []int

	feedLabel     string
	settingsLines []string
	status        string
	statusErr     bool
	statusUntil   time.Time

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a console model wired to the given feed and stores.
func New(opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask the Nexus Command team… (Enter to send, Alt+Enter for newline)"
	ta.Prompt = "│ "
	ta.CharLimit = 0 // No limit
	ta.SetHeight(textareaHeight)
	ta.ShowLineNumbers = false

	// Enter sends, Alt+Enter inserts newline
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.Focus()

	bridge := newEventBridge()
	opts.Feed.SetListener(bridge)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0), // will be updated on resize
	)

	return Model{
		feed:          opts.Feed,
		registry:      opts.Roster,
		notes:         opts.Notes,
		digest:        opts.Digest,
		exporter:      opts.Exporter,
		styles:        theme.NewStyles(opts.Theme),
		palette:       opts.Theme,
		transcript:    transcript.New(),
		bridge:        bridge,
		renderer:      renderer,
		textarea:      ta,
		keys:          defaultKeyMap(),
		view:          welcomeView,
		timelineOpen:  opts.TimelineExpanded,
		feedLabel:     opts.FeedLabel,
		settingsLines: opts.SettingsLines,
		selected:      -1,
	}
}

// Init returns the initial command for the TUI
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tickCmd())
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tickMsg:
		return m.handleTick()

	case thinkingMsg:
		m.thinking = true
		m.thinkingID = msg.MessageID
		m.thinkingAgent = msg.AgentID
		m.updateViewport(true)
		return m, nil

	case stepMsg:
		m.transcript.AppendEvent(msg.MessageID, msg.Step)
		m.updateViewport(true)
		return m, nil

	case responseMsg:
		m.transcript.Append(msg.Message)
		m.thinking = false
		m.thinkingID = ""
		m.thinkingAgent = ""
		m.selected = m.transcript.Len() - 1
		m.updateViewport(true)
		return m, nil

	case feedErrorMsg:
		logger.ErrorCF("tui", "Feed error", map[string]any{"error": msg.Err.Error()})
		m.thinking = false
		m.thinkingID = ""
		m.setStatus(fmt.Sprintf("feed: %v", msg.Err), true)
		m.updateViewport(true)
		return m, nil

	case exportDoneMsg:
		if msg.Err != nil {
			logger.ErrorCF("tui", "Export failed", map[string]any{
				"format": msg.Format.String(),
				"error":  msg.Err.Error(),
			})
			m.setStatus(fmt.Sprintf("export %s failed — see log", msg.Format), true)
		} else {
			m.setStatus(fmt.Sprintf("exported %s → %s", msg.Format, msg.Path), false)
		}
		return m, nil

	case copyDoneMsg:
		if msg.Err != nil {
			logger.ErrorCF("tui", "Clipboard write failed", map[string]any{"error": msg.Err.Error()})
			m.setStatus("copy failed — see log", true)
		} else {
			m.setStatus("copied "+msg.Label, false)
		}
		return m, nil
	}

	// Pass remaining messages to textarea
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.CancelTurn) {
		if m.thinking {
			m.feed.Cancel()
			m.thinking = false
			m.thinkingID = ""
			m.setStatus("turn cancelled", false)
			m.updateViewport(true)
		}
		return m, nil
	}

	if m.cleanView {
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.CleanView) {
			m.cleanView = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Timeline) {
		m.timelineOpen = !m.timelineOpen
		m.updateViewport(false)
		return m, nil
	}

	if key.Matches(msg, m.keys.Escape) {
		switch {
		case m.panel != panelNone:
			m.closePanel()
		case m.focus == focusInput && m.view == chatView:
			m.focus = focusBrowse
			m.textarea.Blur()
			if m.selected < 0 && m.transcript.Len() > 0 {
				m.selected = m.transcript.Len() - 1
			}
			m.updateViewport(false)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyEnter:
		if m.focus == focusInput {
			return m.submitInput()
		}
	}

	if m.focus == focusBrowse {
		return m.handleBrowseKey(msg)
	}

	// Pass to textarea for regular typing
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// handleBrowseKey runs the per-message actions against the selected message.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FocusInput):
		m.focus = focusInput
		m.textarea.Focus()
		m.updateViewport(false)
		return m, textarea.Blink

	case key.Matches(msg, m.keys.PrevMessage):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextMessage):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.openHelpPanel()
		return m, nil

	case key.Matches(msg, m.keys.SessionSummary):
		m.openSessionPanel()
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.openSettingsPanel()
		return m, nil
	}

	sel, ok := m.selectedMessage()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.CopyMarkdown):
		return m, copyCmd(sel.Content, "markdown")

	case key.Matches(msg, m.keys.CopyPlain):
		return m, copyPlainCmd(sel.Content)

	case key.Matches(msg, m.keys.ExportHTML):
		return m, m.exportCmd(sel, export.FormatHTML)

	case key.Matches(msg, m.keys.ExportPDF):
		return m, m.exportCmd(sel, export.FormatPDF)

	case key.Matches(msg, m.keys.ExportText):
		return m, m.exportCmd(sel, export.FormatText)

	case key.Matches(msg, m.keys.ExportMD):
		return m, m.exportCmd(sel, export.FormatMarkdown)

	case key.Matches(msg, m.keys.TogglePin):
		pinned := m.notes.TogglePin(sel.ID)
		if pinned {
			m.setStatus("pinned "+sel.ShortID(), false)
		} else {
			m.setStatus("unpinned "+sel.ShortID(), false)
		}
		m.updateViewport(false)
		return m, nil

	case key.Matches(msg, m.keys.TagDecision):
		return m.applyTag(sel.ID, notes.TagDecision)

	case key.Matches(msg, m.keys.TagAction):
		return m.applyTag(sel.ID, notes.TagAction)

	case key.Matches(msg, m.keys.TagIdea):
		return m.applyTag(sel.ID, notes.TagIdea)

	case key.Matches(msg, m.keys.ClearTag):
		m.notes.ClearTag(sel.ID)
		m.setStatus("tag cleared", false)
		m.updateViewport(false)
		return m, nil

	case key.Matches(msg, m.keys.Digest):
		m.openDigestPanel(sel)
		return m, nil

	case key.Matches(msg, m.keys.CleanView):
		m.cleanView = true
		return m, nil
	}

	return m, nil
}

func (m *Model) applyTag(msgID string, tag notes.Tag) (tea.Model, tea.Cmd) {
	m.notes.SetTag(msgID, tag)
	m.setStatus("tagged "+tag.String(), false)
	m.updateViewport(false)
	return *m, nil
}

// submitInput sends the textarea content as a new human turn.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return m, nil
	}
	if m.thinking {
		m.setStatus("a turn is already in flight — ctrl+x to cancel", true)
		return m, nil
	}
	m.textarea.Reset()

	if m.view == welcomeView {
		m.view = chatView
	}

	m.transcript.Append(transcript.Message{
		ID:        uuid.NewString(),
		Role:      transcript.RoleHuman,
		Content:   input,
		Timestamp: time.Now(),
	})
	m.selected = m.transcript.Len() - 1
	m.thinking = true
	m.updateViewport(true)

	return m, m.submitCmd(input)
}

// submitCmd hands the prompt to the feed off the update loop.
func (m Model) submitCmd(input string) tea.Cmd {
	f := m.feed
	return func() tea.Msg {
		if err := f.Submit(context.Background(), input); err != nil {
			return feedErrorMsg{Err: err}
		}
		return nil
	}
}

// handleWindowSize initializes or resizes the viewport and textarea
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	vpHeight := msg.Height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.contentWidth(), vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.contentWidth()
		m.viewport.Height = vpHeight
	}

	m.textarea.SetWidth(msg.Width)

	// Recreate renderer with updated word wrap
	if r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.contentWidth()-4),
	); err == nil {
		m.renderer = r
	}

	m.updateViewport(false)

	return m, nil
}

// handleTick advances the thinking animation, expires the status note, and
// polls feed events
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd()}

	if m.thinking {
		m.thinkFrame = (m.thinkFrame + 1) % thinkingFrameCount
		m.updateViewport(false)
	}

	if m.status != "" && time.Now().After(m.statusUntil) {
		m.status = ""
	}

	eventCmds := m.pollEvents()
	cmds = append(cmds, eventCmds...)

	return m, tea.Batch(cmds...)
}

// pollEvents drains the event bridge channel, returning tea commands
func (m Model) pollEvents() []tea.Cmd {
	var cmds []tea.Cmd

	for {
		select {
		case event := <-m.bridge.events:
			cmd := convertEvent(event)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		default:
			return cmds
		}
	}
}

// convertEvent turns a feed event into a tea.Cmd that returns the matching
// message
func convertEvent(event feed.Event) tea.Cmd {
	switch event.Type {
	case feed.EventThinkingStarted:
		if data, ok := event.Data.(feed.ThinkingData); ok {
			return func() tea.Msg {
				return thinkingMsg{MessageID: data.MessageID, AgentID: data.AgentID}
			}
		}

	case feed.EventStepRecorded:
		if data, ok := event.Data.(feed.StepData); ok {
			return func() tea.Msg {
				return stepMsg{MessageID: data.MessageID, Step: data.Step}
			}
		}

	case feed.EventResponseComplete:
		if data, ok := event.Data.(feed.ResponseData); ok {
			return func() tea.Msg {
				return responseMsg{Message: data.Message}
			}
		}

	case feed.EventError:
		if data, ok := event.Data.(feed.ErrorData); ok {
			return func() tea.Msg { return feedErrorMsg{Err: data.Err} }
		}
	}
	return nil
}

// moveSelection shifts the selected message and keeps it visible.
func (m *Model) moveSelection(delta int) {
	count := m.transcript.Len()
	if count == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next > count-1 {
		next = count - 1
	}
	if next == m.selected {
		return
	}
	m.selected = next
	m.updateViewport(false)
	m.scrollToSelection()
}

// scrollToSelection nudges the viewport so the selected message's label line
// is on screen.
func (m *Model) scrollToSelection() {
	if m.selected < 0 || m.selected >= len(m.msgLines) {
		return
	}
	line := m.msgLines[m.selected]
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1
	if line < top {
		m.viewport.SetYOffset(line)
	} else if line > bottom {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// selectedMessage returns the message actions apply to.
func (m Model) selectedMessage() (transcript.Message, bool) {
	if m.selected < 0 || m.selected >= m.transcript.Len() {
		return transcript.Message{}, false
	}
	return m.transcript.Messages[m.selected], true
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	m.statusUntil = time.Now().Add(statusLinger)
}

// contentWidth is the viewport width, shrunk while a side panel is open.
func (m Model) contentWidth() int {
	w := m.width
	if m.panel != panelNone {
		w -= m.panelWidth() + 1
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) panelWidth() int {
	w := m.width / 2
	if w > maxPanelWidth {
		w = maxPanelWidth
	}
	if w < minPanelWidth {
		w = minPanelWidth
	}
	return w
}

// renderMarkdown renders agent markdown for the terminal, falling back to
// the raw text when the renderer is unavailable.
func (m Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		logger.DebugCF("tui", "Markdown render failed", map[string]any{"error": err.Error()})
		return content
	}
	return strings.TrimSpace(rendered)
}

// updateViewport rebuilds the transcript view. Each message's first line is
// tracked so selection movement can scroll to it.
func (m *Model) updateViewport(goBottom bool) {
	if !m.ready {
		return
	}

	var sb strings.Builder
	m.msgLines = make([]int, m.transcript.Len())
	line := 0

	lastAI := m.lastAIMessageID()

	for i, msg := range m.transcript.Messages {
		block := m.renderMessage(i, msg)
		if i == len(m.transcript.Messages)-1 && msg.ID == lastAI && !m.thinking {
			if tl := m.renderTimeline(msg.ID); tl != "" {
				block += "\n" + tl + "\n"
			}
		}
		m.msgLines[i] = line
		sb.WriteString(block)
		sb.WriteString("\n")
		line += strings.Count(block, "\n") + 2
	}

	if m.thinking {
		block := m.renderThinkingBlock()
		sb.WriteString(block)
		sb.WriteString("\n")
	}

	m.viewport.SetContent(sb.String())
	if goBottom {
		m.viewport.GotoBottom()
	}
}

// lastAIMessageID returns the ID of the newest AI message, or "".
func (m Model) lastAIMessageID() string {
	for i := m.transcript.Len() - 1; i >= 0; i-- {
		if m.transcript.Messages[i].IsAI() {
			return m.transcript.Messages[i].ID
		}
	}
	return ""
}

// tickCmd returns a command that sends a tickMsg after the tick interval
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
