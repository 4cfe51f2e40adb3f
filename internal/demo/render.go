// ============================================================================
// comnum - Complex Number Toolkit
// ============================================================================
//
// Package:     demo
// Description: Plain and lipgloss renderers for scenario lines
// Author:      idmagic
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idmagic/comnum/foundation/core/errors"
	"github.com/idmagic/comnum/internal/tui"
)

// Title heads the demonstration output
const Title = "== Demonstration of operations with complex numbers =="

// Renderer writes scenario lines to w
type Renderer interface {
	Render(w io.Writer, lines []Line) error
}

// PlainRenderer writes one "label = value" line per step
type PlainRenderer struct {
	// Precision rounds values before printing; -1 prints the shortest form
	Precision int
}

// Render implements Renderer
func (r PlainRenderer) Render(w io.Writer, lines []Line) error {
	var sb strings.Builder
	sb.WriteString(Title)
	sb.WriteString("\n\n")

	for _, line := range lines {
		if line.Failed() {
			fmt.Fprintf(&sb, "%s cannot be found: %s", line.Label, errors.Message(line.Err))
		} else {
			fmt.Fprintf(&sb, "%s = %s", line.Label, line.Result.Format(r.Precision))
		}
		if line.Note != "" {
			fmt.Fprintf(&sb, "  [%s]", line.Note)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// StyledRenderer aligns labels and colors values with the shared palette
type StyledRenderer struct {
	Precision int
}

// Render implements Renderer
func (r StyledRenderer) Render(w io.Writer, lines []Line) error {
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line.Label))
	}
	label := tui.LabelStyle.Width(width)

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		var value string
		if line.Failed() {
			value = tui.RenderError(errors.Message(line.Err))
		} else {
			value = tui.ValueStyle.Render(line.Result.Format(r.Precision))
		}
		if line.Note != "" {
			value += " " + tui.NoteStyle.Render("["+line.Note+"]")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(line.Label), "  ", value))
	}

	out := lipgloss.JoinVertical(lipgloss.Left,
		tui.RenderTitle(Title),
		tui.BoxStyle.Render(strings.Join(rows, "\n")),
	)

	_, err := io.WriteString(w, out+"\n")
	return err
}

// NewRenderer picks the styled or plain renderer
func NewRenderer(styled bool, precision int) Renderer {
	if styled {
		return StyledRenderer{Precision: precision}
	}
	return PlainRenderer{Precision: precision}
}

