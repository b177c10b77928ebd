package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/listedit/internal/format/table"
	"github.com/atomicstack/listedit/internal/theme"
	"github.com/atomicstack/listedit/internal/ui/transition"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	rowIndicator     = "▌"
	rowControls      = "e edit · d delete"
	emptyListMessage = "(no items yet)"
	addButtonLabel   = "[ Add ]"
	minValueWidth    = 8
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI styling; truncate ANSI-aware and skip wrapping
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeEditForm:
		if m.editForm != nil {
			return m.placeModal(m.editForm.View(m.width))
		}
	case ModeConfirmDelete:
		if m.confirm != nil {
			return m.placeModal(m.confirm.View(m.width))
		}
	case ModeAlert:
		if m.alert != nil {
			return m.placeModal(m.alert.View(m.width))
		}
	}
	return m.viewList()
}

func (m *Model) viewList() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.title, style: styles.Title})
	lines = append(lines, styledLine{text: m.inputRow(), raw: true})
	lines = append(lines, styledLine{})
	lines = append(lines, m.itemLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.ShortHelpView(m.keys.ShortHelp(m.inputFocused)), raw: true})
	}
	lines = limitHeight(lines, m.height-1, m.width)

	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	lines = append(lines, status)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) inputRow() string {
	buttonStyle := styles.Button
	if m.inputFocused {
		buttonStyle = styles.ActiveButton
	}
	return m.input.View() + "  " + theme.Render(buttonStyle, addButtonLabel)
}

type itemRow struct {
	cells    []string
	style    *lipgloss.Style
	selected bool
}

// itemLines renders the visible window of the list plus ghost rows for
// recently removed items at their former positions.
func (m *Model) itemLines() []styledLine {
	ghosts := m.transitions.Removed()
	if len(m.list.Items) == 0 && len(ghosts) == 0 {
		return []styledLine{{text: emptyListMessage, style: styles.Info}}
	}
	start, end := m.list.Window(m.maxVisibleItems())
	valueWidth := m.valueWidth(len(m.list.Items))

	rows := make([]itemRow, 0, end-start+len(ghosts))
	next := 0
	addGhosts := func(upTo int) {
		for next < len(ghosts) && ghosts[next].Index <= upTo {
			g := ghosts[next]
			next++
			if g.Index < start || g.Index > end {
				continue
			}
			rows = append(rows, itemRow{
				cells: []string{"", clampValue(g.Value, valueWidth), ""},
				style: styles.Removed,
			})
		}
	}
	for idx := start; idx < end; idx++ {
		addGhosts(idx)
		item := m.list.Items[idx]
		selected := idx == m.list.Cursor
		row := itemRow{
			cells:    []string{fmt.Sprintf("%d.", idx+1), clampValue(item.Value, valueWidth), ""},
			style:    styles.Item,
			selected: selected,
		}
		if selected {
			row.style = styles.SelectedItem
			if !m.inputFocused {
				row.cells[2] = rowControls
			}
		}
		if entry, ok := m.transitions.For(item.ID); ok {
			row.style = transitionStyle(entry.Kind)
		}
		rows = append(rows, row)
	}
	addGhosts(len(m.list.Items))

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = row.cells
	}
	formatted := table.Format(cells, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft})
	out := make([]styledLine, len(rows))
	for i, row := range rows {
		indicator := " "
		var prefix *lipgloss.Style
		if row.selected {
			indicator = rowIndicator
			prefix = styles.SelectedIndicator
		}
		text := indicator + " " + strings.TrimRight(formatted[i], " ")
		if row.selected && m.width > 0 {
			if pad := m.width - lipgloss.Width(text); pad > 0 {
				text += strings.Repeat(" ", pad)
			}
		}
		out[i] = styledLine{
			text:          text,
			style:         row.style,
			prefixStyle:   prefix,
			highlightFrom: 1,
		}
	}
	return out
}

func transitionStyle(kind transition.Kind) *lipgloss.Style {
	switch kind {
	case transition.KindInsert:
		return styles.Inserted
	case transition.KindUpdate:
		return styles.Updated
	default:
		return styles.Removed
	}
}

// valueWidth is the room left for the value column once the indicator,
// index and controls columns are laid out. Zero means unlimited.
func (m *Model) valueWidth(count int) int {
	if m.width <= 0 {
		return 0
	}
	indexWidth := len(fmt.Sprintf("%d.", count))
	used := 2 + indexWidth + 2 + 2 + lipgloss.Width(rowControls)
	w := m.width - used
	if w < minValueWidth {
		w = minValueWidth
	}
	return w
}

func clampValue(value string, width int) string {
	if width <= 0 || lipgloss.Width(value) <= width {
		return value
	}
	return truncate.StringWithTail(value, uint(width-1), "…")
}

func (m *Model) placeModal(box string) string {
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 // title, input row, blank, status line
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	used += len(m.transitions.Removed())
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
