package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn represents a column in the table
type TableColumn struct {
	Header string
	Width  int
	Align  string // "left", "right", "center"
}

// Table represents a data table
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

// NewTable creates a new table with specified columns
func NewTable(columns []TableColumn) *Table {
	return &Table{
		Columns: columns,
		Rows:    [][]string{},
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render renders the table as a string
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := t.columnWidths()
	var b strings.Builder

	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = pad(col.Header, widths[i], "left")
	}
	b.WriteString(styleHeader.Render(strings.Join(headers, "  ")))
	b.WriteString("\n")

	rules := make([]string, len(t.Columns))
	for i := range t.Columns {
		rules[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(styleRule.Render(strings.Join(rules, "  ")))
	b.WriteString("\n")

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i], t.Columns[i].Align)
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}

	return b.String()
}

// columnWidths sizes each column by its widest cell, honoring minimum widths
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = max(col.Width, lipgloss.Width(col.Header))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

// pad pads s to width display cells
func pad(s string, width int, align string) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return s
	}

	switch align {
	case "right":
		return strings.Repeat(" ", n) + s
	case "center":
		left := n / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
	default:
		return s + strings.Repeat(" ", n)
	}
}
