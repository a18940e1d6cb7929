package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vietdv277/stratus/pkg/types"
)

// ErrSelectionCancelled is returned when the picker is closed without a
// choice.
var ErrSelectionCancelled = errors.New("selection cancelled")

const (
	listHeight = 10
	minWidth   = 60
	maxWidth   = 120

	selColWidthID    = 20
	selColWidthState = 15
	selColWidthIP    = 16
	// cursor(3) + ID(20) + sp(2) + State(15) + sp(2) + IP(16) + sp(2) = 60
	selFixedWidth = 3 + selColWidthID + 2 + selColWidthState + 2 + selColWidthIP + 2
)

// selectorModel is the bubbletea model for interactive instance selection.
type selectorModel struct {
	instances []types.Instance
	filtered  []types.Instance
	cursor    int
	offset    int
	search    string
	selected  *types.Instance
	quitting  bool
	cancelled bool
	colored   bool

	termWidth    int
	contentWidth int
	nameWidth    int
}

// SelectInstance runs the interactive picker and returns the chosen
// instance.
func SelectInstance(instances []types.Instance, colored bool) (*types.Instance, error) {
	m := newSelectorModel(instances, colored)

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("selector failed: %w", err)
	}

	fm, ok := final.(selectorModel)
	if !ok || fm.cancelled || fm.selected == nil {
		return nil, ErrSelectionCancelled
	}
	return fm.selected, nil
}

func newSelectorModel(instances []types.Instance, colored bool) selectorModel {
	m := selectorModel{
		instances: instances,
		filtered:  instances,
		colored:   colored,
		termWidth: 80,
	}
	m.calculateWidths()
	return m
}

func (m *selectorModel) calculateWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < minWidth {
		m.contentWidth = minWidth
	}
	if m.contentWidth > maxWidth {
		m.contentWidth = maxWidth
	}

	m.nameWidth = m.contentWidth - selFixedWidth
	if m.nameWidth < 10 {
		m.nameWidth = 10
	}
}

// Init implements tea.Model.
func (m selectorModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				selected := m.filtered[m.cursor]
				m.selected = &selected
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+listHeight {
					m.offset = m.cursor - listHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filter()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filter()
		}
	}

	return m, nil
}

func (m *selectorModel) filter() {
	if m.search == "" {
		m.filtered = m.instances
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, inst := range m.instances {
			if strings.Contains(strings.ToLower(inst.Name), query) ||
				strings.Contains(strings.ToLower(inst.ID), query) ||
				strings.Contains(strings.ToLower(inst.Type), query) ||
				(inst.PrivateIP.IsValid() && strings.Contains(inst.PrivateIP.String(), query)) {
				m.filtered = append(m.filtered, inst)
			}
		}
	}

	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
}

// View implements tea.Model.
func (m selectorModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Search input
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(NameStyle.Render(Pad(" > "+m.search, w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Instance list
	visibleEnd := m.offset + listHeight
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}
	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderLine(i))
	}
	for i := visibleEnd; i < m.offset+listHeight; i++ {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(strings.Repeat(" ", w))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	// Status bar
	sb.WriteString(HintStyle.Render(fmt.Sprintf(
		"  %d/%d instances  ↑/↓ move  type to filter  enter details  esc cancel",
		len(m.filtered), len(m.instances))))
	sb.WriteString("\n")

	return sb.String()
}

func (m selectorModel) renderLine(idx int) string {
	inst := m.filtered[idx]

	var line strings.Builder

	if idx == m.cursor {
		line.WriteString(" > ")
	} else {
		line.WriteString("   ")
	}

	line.WriteString(IDStyle.Render(Pad(inst.ID, selColWidthID)))
	line.WriteString("  ")

	stateText := Pad(StateGlyph(inst.State, m.colored)+" "+string(inst.State), selColWidthState)
	line.WriteString(stateStyle(inst.State).Render(stateText))
	line.WriteString("  ")

	line.WriteString(FormatIP(inst.PrivateIP))
	line.WriteString("  ")

	line.WriteString(NameStyle.Render(FormatName(inst.Name, m.nameWidth)))

	var sb strings.Builder
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(line.String())
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")
	return sb.String()
}

func stateStyle(state types.InstanceState) lipgloss.Style {
	switch state {
	case types.StateRunning:
		return RunningStyle
	case types.StatePending, types.StateStopping, types.StateShuttingDown:
		return PendingStyle
	default:
		return StoppedStyle
	}
}
