// Package explorer implements the interactive operation explorer: editable
// operands on top, every registered operation evaluated live below.
package explorer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idmagic/comnum/foundation/core/errors"
	"github.com/idmagic/comnum/foundation/core/log"
	"github.com/idmagic/comnum/foundation/utils/mathx"
	"github.com/idmagic/comnum/internal/calc"
	"github.com/idmagic/comnum/internal/tui"
	"github.com/idmagic/comnum/pkg/core/config"
)

// Field identifies one of the operand inputs
type Field int

const (
	FieldARe Field = iota
	FieldAIm
	FieldBRe
	FieldBIm
	FieldN
	FieldDigits
	fieldCount
)

var fieldLabels = [fieldCount]string{"a.re", "a.im", "b.re", "b.im", "n", "digits"}

// MaxLiveExponent bounds |n| for the operations evaluated on every keystroke.
// Repeated multiplication takes |n| steps, larger exponents are left to calc.
const MaxLiveExponent = 10000

// String returns the label shown next to the input
func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldLabels[f]
}

// Row is the evaluated result of one operation
type Row struct {
	Name    string
	Summary string
	Value   string
	Failed  bool
	Err     error
}

// Options configures a new explorer
type Options struct {
	Registry *calc.Registry
	Operands config.DemoConfig

	// Precision rounds results; -1 shows the shortest form
	Precision int

	Logger *log.Logger
}

// Model is the bubbletea model of the explorer
type Model struct {
	registry  *calc.Registry
	logger    *log.Logger
	precision int

	inputs [fieldCount]textinput.Model
	focus  Field

	rows     []Row
	inputErr error
	width    int
}

// New creates the explorer with inputs filled from the operands
func New(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.NewNop()
	}
	if opts.Registry == nil {
		r, err := calc.NewRegistry(calc.Options{Logger: opts.Logger})
		if err != nil {
			return Model{}, err
		}
		opts.Registry = r
	}

	n := "2"
	if len(opts.Operands.Exponents) > 0 {
		n = strconv.Itoa(opts.Operands.Exponents[0])
	}
	values := [fieldCount]string{
		mathx.FormatFloat(opts.Operands.A.Real),
		mathx.FormatFloat(opts.Operands.A.Imag),
		mathx.FormatFloat(opts.Operands.B.Real),
		mathx.FormatFloat(opts.Operands.B.Imag),
		n,
		strconv.Itoa(opts.Operands.RoundDigits),
	}

	m := Model{
		registry:  opts.Registry,
		logger:    opts.Logger.WithField("component", "explorer"),
		precision: opts.Precision,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.Width = 24
		ti.Placeholder = fieldLabels[i]
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[m.focus].Focus()
	m.recompute()

	return m, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.recompute()
	}
	return m, cmd
}

func (m *Model) setFocus(f Field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[m.focus].Focus()
}

// SetValue replaces the text of an input and recomputes the results
func (m *Model) SetValue(f Field, value string) {
	if f < 0 || f >= fieldCount {
		return
	}
	m.inputs[f].SetValue(value)
	m.recompute()
}

// Value returns the text of an input
func (m Model) Value(f Field) string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return m.inputs[f].Value()
}

// Focused returns the input holding the cursor
func (m Model) Focused() Field {
	return m.focus
}

// Rows returns the current results, one per registered operation
func (m Model) Rows() []Row {
	rows := make([]Row, len(m.rows))
	copy(rows, m.rows)
	return rows
}

// InputError returns the error for the first operand that could not be read
func (m Model) InputError() error {
	return m.inputErr
}

// Row returns the result of the named operation
func (m Model) Row(name string) (Row, bool) {
	for _, row := range m.rows {
		if row.Name == name {
			return row, true
		}
	}
	return Row{}, false
}

func (m *Model) recompute() {
	in, err := m.readInput()
	if err != nil {
		m.inputErr = err
		m.rows = nil
		return
	}
	m.inputErr = nil

	capErr := exponentLimit(in.N)
	ops := m.registry.Operations()
	m.rows = make([]Row, 0, len(ops))
	for _, op := range ops {
		row := Row{Name: op.Name, Summary: op.Summary}
		if op.NeedsExponent && capErr != nil {
			row.Value = "too large for live evaluation"
			row.Failed = true
			row.Err = capErr
			m.rows = append(m.rows, row)
			continue
		}
		result, err := m.registry.Eval(op.Name, in)
		if err != nil {
			row.Value = errors.Message(err)
			row.Failed = true
			row.Err = err
		} else {
			row.Value = result.Format(m.precision)
		}
		m.rows = append(m.rows, row)
	}

	m.logger.Trace("explorer results recomputed", log.Fields{
		"a": in.A.String(),
		"b": in.B.String(),
		"n": in.N,
	})
}

func (m *Model) readInput() (calc.Input, error) {
	var parts [4]float64
	for f := FieldARe; f <= FieldBIm; f++ {
		text := strings.TrimSpace(m.inputs[f].Value())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return calc.Input{}, errors.InvalidInput(errors.ModuleCLI, f.String(), text, "a number")
		}
		parts[f] = v
	}

	digits := 0
	if text := strings.TrimSpace(m.inputs[FieldDigits].Value()); text != "" {
		d, err := strconv.Atoi(text)
		if err != nil {
			return calc.Input{}, errors.InvalidInput(errors.ModuleCLI, FieldDigits.String(), text, "an integer")
		}
		digits = d
	}

	return calc.Input{
		A:      mathx.New(parts[FieldARe], parts[FieldAIm]),
		B:      mathx.New(parts[FieldBRe], parts[FieldBIm]),
		N:      m.inputs[FieldN].Value(),
		Digits: digits,
	}, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(tui.RenderTitle("comnum explorer"))
	b.WriteString("\n")

	for f := Field(0); f < fieldCount; f++ {
		label := tui.InputLabelStyle
		if f == m.focus {
			label = tui.FocusedInputLabelStyle
		}
		b.WriteString(label.Render(f.String()))
		b.WriteString(m.inputs[f].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.inputErr != nil {
		b.WriteString(tui.RenderError(describeInput(m.inputErr)))
		b.WriteString("\n")
	} else {
		b.WriteString(tui.BoxStyle.Render(m.table()))
		b.WriteString("\n")
	}

	b.WriteString(tui.RenderHelp("tab/shift+tab: move focus • esc/ctrl+c: quit"))
	return b.String()
}

func (m Model) table() string {
	nameWidth := 0
	for _, row := range m.rows {
		nameWidth = max(nameWidth, lipgloss.Width(row.Name))
	}
	name := tui.LabelStyle.Width(nameWidth + 2)

	lines := make([]string, 0, len(m.rows))
	for _, row := range m.rows {
		value := tui.ValueStyle.Render(row.Value)
		if row.Failed {
			value = tui.ErrorMessageStyle.Render(row.Value)
		}
		lines = append(lines, name.Render(row.Name)+value+"  "+tui.NoteStyle.Render(row.Summary))
	}
	return strings.Join(lines, "\n")
}

// exponentLimit rejects integer exponents beyond MaxLiveExponent. Anything
// else is left to the operations to accept or reject.
func exponentLimit(text string) error {
	n, err := calc.ParseExponent(text)
	if err != nil || n.IsFloat {
		return nil
	}
	if n.Int < -MaxLiveExponent || n.Int > MaxLiveExponent {
		return errors.OutOfRange(errors.ModuleCLI, FieldN.String(), n.Int, -MaxLiveExponent, MaxLiveExponent)
	}
	return nil
}

// describeInput renders an operand error as `a.im: "two" is not a number`
func describeInput(err error) string {
	details := errors.ExtractDetails(err)
	if details == nil {
		return err.Error()
	}
	return fmt.Sprintf("%s: %q is not %v", errors.ExtractOperation(err), details["input"], details["expected"])
}

// Run starts the explorer in the alternate screen and blocks until it exits
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
