// internal/commands/view.go
package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	pagerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62")).Padding(0, 1)
	pagerFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

const (
	pagerHeaderHeight = 2
	pagerFooterHeight = 2
)

// pagerModel scrolls a pre-rendered report in the terminal.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) *pagerModel {
	return &pagerModel{title: title, content: content}
}

// Init implements tea.Model.
func (m *pagerModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		height := msg.Height - pagerHeaderHeight - pagerFooterHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *pagerModel) View() string {
	if !m.ready {
		return "\n  Rapport laden..."
	}
	var b strings.Builder
	b.WriteString(pagerTitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(pagerFooterStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll · g/G begin/eind · q stoppen", m.viewport.ScrollPercent()*100)))
	return b.String()
}

// viewCmd opens the terminal report in an interactive pager.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the report in an interactive terminal pager",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer(GetConfig())
		if err != nil {
			return err
		}
		rep, err := r.Render()
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		var b strings.Builder
		if err := r.WriteTerminal(&b, rep); err != nil {
			return err
		}

		p := tea.NewProgram(newPagerModel(rep.Title, b.String()), tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("pager: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
