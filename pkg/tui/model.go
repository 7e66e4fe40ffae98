// Package tui is a full-screen terminal front end over a station service.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-stations/pkg/registry"
	"github.com/dd0wney/cluso-stations/pkg/service"
	"github.com/dd0wney/cluso-stations/pkg/validation"
)

type view int

const (
	stationsView view = iota
	connectionsView
	activityView
	viewCount
)

var viewNames = []string{"Stations", "Connections", "Activity"}

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAddStation
	modeConnectFrom
	modeConnectTo
)

const activityLimit = 50

// Model is the bubbletea model.
type Model struct {
	svc         *service.Service
	currentView view
	mode        inputMode
	input       textinput.Model
	stations    table.Model
	connections table.Model
	activity    table.Model
	help        help.Model
	keys        keyMap
	pendingFrom string
	width       int
	height      int
	message     string
	messageKind messageKind
}

type messageKind int

const (
	messageInfo messageKind = iota
	messageSuccess
	messageError
	messageDeleted
)

// New builds the model over svc.
func New(svc *service.Service) Model {
	ti := textinput.New()
	ti.CharLimit = validation.MaxStationNameLength * 2
	ti.Width = 40

	m := Model{
		svc:         svc,
		currentView: stationsView,
		input:       ti,
		stations: newTable(
			table.Column{Title: "#", Width: 4},
			table.Column{Title: "Station", Width: 30},
		),
		connections: newTable(
			table.Column{Title: "#", Width: 4},
			table.Column{Title: "Station", Width: 24},
			table.Column{Title: "Connected to", Width: 24},
		),
		activity: newTable(
			table.Column{Title: "Time", Width: 10},
			table.Column{Title: "Action", Width: 20},
			table.Column{Title: "Slot", Width: 5},
			table.Column{Title: "Subject", Width: 28},
			table.Column{Title: "Result", Width: 30},
		),
		help: help.New(),
		keys: keys,
	}
	m.refresh()
	m.focusCurrent()
	return m
}

func newTable(columns ...table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())
	return t
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.currentView = (m.currentView + 1) % viewCount
			m.focusCurrent()
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.currentView = (m.currentView + viewCount - 1) % viewCount
			m.focusCurrent()
			return m, nil

		case key.Matches(msg, m.keys.Add):
			return m, m.openPrompt(modeAddStation)

		case key.Matches(msg, m.keys.Connect):
			return m, m.openPrompt(modeConnectFrom)

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}
	}

	// Update focused table
	switch m.currentView {
	case stationsView:
		m.stations, cmd = m.stations.Update(msg)
	case connectionsView:
		m.connections, cmd = m.connections.Update(msg)
	case activityView:
		m.activity, cmd = m.activity.Update(msg)
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		m.setMessage(messageInfo, "Cancelled")
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) openPrompt(mode inputMode) tea.Cmd {
	m.mode = mode
	m.pendingFrom = ""
	m.input.Reset()
	m.input.Placeholder = "station name"
	m.message = ""
	return m.input.Focus()
}

func (m *Model) closePrompt() {
	m.mode = modeBrowse
	m.pendingFrom = ""
	m.input.Reset()
	m.input.Blur()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	switch m.mode {
	case modeAddStation:
		res, err := m.svc.AddStation(value)
		m.closePrompt()
		m.report(res, err)

	case modeConnectFrom:
		m.pendingFrom = value
		m.mode = modeConnectTo
		m.input.Reset()
		m.input.Placeholder = "connect to"
		return m, nil

	case modeConnectTo:
		res, err := m.svc.AddConnection(m.pendingFrom, value)
		m.closePrompt()
		m.report(res, err)
	}

	m.refresh()
	return m, nil
}

func (m *Model) deleteSelected() {
	var (
		res registry.Result
		err error
	)

	switch m.currentView {
	case stationsView:
		res, err = m.svc.DeleteStation(m.stations.Cursor())
	case connectionsView:
		res, err = m.svc.DeleteConnection(m.connections.Cursor())
	default:
		m.setMessage(messageInfo, "Nothing to delete here")
		return
	}

	if err != nil {
		m.setMessage(messageError, registry.Describe(err))
	} else {
		msg := res.Message
		if n := len(res.Removed); n > 0 {
			msg += fmt.Sprintf(" (%d connections removed)", n)
		}
		m.setMessage(messageDeleted, msg)
	}
	m.refresh()
}

func (m *Model) report(res registry.Result, err error) {
	if err != nil {
		m.setMessage(messageError, registry.Describe(err))
		return
	}
	m.setMessage(messageSuccess, res.Message)
}

func (m *Model) setMessage(kind messageKind, text string) {
	m.messageKind = kind
	m.message = text
}

func (m *Model) focusCurrent() {
	m.stations.Blur()
	m.connections.Blur()
	m.activity.Blur()

	switch m.currentView {
	case stationsView:
		m.stations.Focus()
	case connectionsView:
		m.connections.Focus()
	case activityView:
		m.activity.Focus()
	}
}

// refresh reloads every table from the service.
func (m *Model) refresh() {
	stationRows := make([]table.Row, 0)
	for _, s := range m.svc.ListStations() {
		name := s.Name
		if !s.Occupied {
			name = "(empty)"
		}
		stationRows = append(stationRows, table.Row{strconv.Itoa(s.Index), name})
	}
	m.stations.SetRows(stationRows)

	connectionRows := make([]table.Row, 0)
	for _, c := range m.svc.ListConnections() {
		from, to := c.From, c.To
		if !c.Occupied {
			from = "(empty)"
		}
		connectionRows = append(connectionRows, table.Row{strconv.Itoa(c.Index), from, to})
	}
	m.connections.SetRows(connectionRows)

	activityRows := make([]table.Row, 0)
	for _, e := range m.svc.RecentActivity(activityLimit) {
		slot := "-"
		if e.Slot >= 0 {
			slot = strconv.Itoa(e.Slot)
		}
		result := string(e.Status)
		if e.Kind != "" {
			result += " (" + e.Kind + ")"
		}
		activityRows = append(activityRows, table.Row{
			e.Timestamp.Format("15:04:05"),
			fmt.Sprintf("%s %s", e.Action, e.ResourceType),
			slot,
			e.Subject,
			result,
		})
	}
	m.activity.SetRows(activityRows)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Station Registry"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case stationsView:
		s.WriteString(m.renderStations())
	case connectionsView:
		s.WriteString(m.renderConnections())
	case activityView:
		s.WriteString(m.renderActivity())
	}

	if m.mode != modeBrowse {
		s.WriteString("\n\n")
		s.WriteString(promptStyle.Render(m.promptLabel() + "\n" + m.input.View()))
	}

	// Message
	if m.message != "" {
		s.WriteString("\n\n")
		s.WriteString(contentStyle.Render(m.renderMessage()))
	}

	// Help
	s.WriteString("\n\n")
	if m.mode != modeBrowse {
		s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.inputHelp())))
	} else {
		s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	}

	return s.String()
}

func (m Model) promptLabel() string {
	switch m.mode {
	case modeAddStation:
		return "Station name:"
	case modeConnectFrom:
		return "Connect which station ?"
	case modeConnectTo:
		return fmt.Sprintf("Connect %s to ...?", m.pendingFrom)
	}
	return ""
}

func (m Model) renderMessage() string {
	switch m.messageKind {
	case messageError:
		return errorStyle.Render("✗ " + m.message)
	case messageSuccess:
		return successStyle.Render("✓ " + m.message)
	case messageDeleted:
		return deletedStyle.Render(m.message)
	}
	return m.message
}

func (m Model) renderTabs() string {
	var renderedTabs []string

	for i, tab := range viewNames {
		if view(i) == m.currentView {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)
}

func (m Model) renderStations() string {
	st := m.svc.Stats()
	var s strings.Builder

	s.WriteString(headerStyle.Render(fmt.Sprintf("Stations %d/%d", st.Stations, st.StationCapacity)))
	s.WriteString("\n\n")
	s.WriteString(m.stations.View())

	return contentStyle.Render(s.String())
}

func (m Model) renderConnections() string {
	st := m.svc.Stats()
	var s strings.Builder

	s.WriteString(headerStyle.Render(fmt.Sprintf("Connections %d/%d", st.Connections, st.ConnectionCapacity)))
	s.WriteString("\n\n")
	s.WriteString(m.connections.View())

	return contentStyle.Render(s.String())
}

func (m Model) renderActivity() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Activity"))
	s.WriteString("\n\n")
	if len(m.activity.Rows()) == 0 {
		s.WriteString(helpStyle.Render("No activity yet"))
	} else {
		s.WriteString(m.activity.View())
	}

	return contentStyle.Render(s.String())
}
