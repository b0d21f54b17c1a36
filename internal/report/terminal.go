// internal/report/terminal.go
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	badgeStyle   = lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// WriteTerminal renders the report for a terminal.
func (r *Renderer) WriteTerminal(w io.Writer, rep *Report) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(rep.Title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d beoordelaars, schaal %d-%d\n\n", rep.Survey.Raters, 1, RadialMax)

	labelWidth := 0
	for _, c := range rep.Rubric {
		if cw := runewidth.StringWidth(c.Name); cw > labelWidth {
			labelWidth = cw
		}
	}

	for _, s := range rep.Sections {
		modelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.Chart.Color.Hex))
		b.WriteString(modelStyle.Render(s.Model.Name))
		kind := "offline"
		if s.Model.Cloud {
			kind = "cloud"
		}
		b.WriteString(" ")
		b.WriteString(badgeStyle.Render(kind))
		fmt.Fprintf(&b, "  gemiddeld %s\n", r.FormatAverage(s.Average))

		barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Chart.Color.Hex))
		for i := 0; i < s.Chart.Axes(); i++ {
			score := s.Chart.R[i]
			bar := barStyle.Render(strings.Repeat("█", score*2)) + dimStyle.Render(strings.Repeat("░", (RadialMax-score)*2))
			line := fmt.Sprintf("  %s %s %d", padRight(s.Chart.Theta[i], labelWidth), bar, score)
			if i < len(rep.Rubric) {
				if label := rep.Rubric[i].Label(score); label != "" {
					line += dimStyle.Render("  " + label)
				}
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		if s.Audio != nil {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  audio: %s (%s)", s.Audio.Path, s.Audio.Size())))
			b.WriteString("\n")
		}
		if s.Example != nil {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  voorbeeldcode: %s", s.Example.Path)))
			b.WriteString("\n")
		}
		for _, m := range s.Missing {
			b.WriteString(dimStyle.Render("  - " + m))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Overzicht van Model Scores"))
	b.WriteString("\n")
	b.WriteString(renderScoreTable(rep.Summary))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Rangschikking op gemiddelde score"))
	b.WriteString("\n")
	for _, e := range rep.Ranking {
		fmt.Fprintf(&b, "%d. %s (%s)\n", e.Position, e.Model, r.FormatAverage(e.Average))
	}
	for _, h := range rep.Highlights {
		fmt.Fprintf(&b, "\n%s: %s\n", headingStyle.Render(h.Label), h.Entry.Model)
		if h.Verdict != "" {
			b.WriteString(dimStyle.Render(h.Verdict))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderScoreTable(summary SummaryTable) string {
	rows := make([][]string, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		cells := make([]string, 0, len(row.Scores)+1)
		cells = append(cells, row.Model)
		for _, v := range row.Scores {
			cells = append(cells, strconv.Itoa(v))
		}
		rows = append(rows, cells)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(summary.Header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col > 0 {
				return cellStyle.Align(lipgloss.Center)
			}
			return cellStyle
		})
	return t.Render()
}

// WriteSummaryText writes the summary table as plain, aligned text.
func WriteSummaryText(w io.Writer, summary SummaryTable) error {
	widths := make([]int, len(summary.Header))
	for i, h := range summary.Header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range summary.Rows {
		if cw := runewidth.StringWidth(row.Model); len(widths) > 0 && cw > widths[0] {
			widths[0] = cw
		}
	}

	var b strings.Builder
	cells := make([]string, len(summary.Header))
	for i, h := range summary.Header {
		cells[i] = padRight(h, widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
	b.WriteString("\n")

	for _, row := range summary.Rows {
		cells = cells[:0]
		cells = append(cells, padRight(row.Model, widths[0]))
		for i, v := range row.Scores {
			cells = append(cells, padRight(strconv.Itoa(v), widths[i+1]))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRankingText writes the ranking as a numbered list.
func (r *Renderer) WriteRankingText(w io.Writer, ranking []RankEntry) error {
	var b strings.Builder
	for _, e := range ranking {
		fmt.Fprintf(&b, "%d. %s (%s)\n", e.Position, e.Model, r.FormatAverage(e.Average))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// padRight pads s with spaces so its display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
