package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cboldwyn/dc-label/internal/adapters/driving/tui/styles"
	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/ports/driving"
)

// Config carries the session inputs the TUI operates on.
type Config struct {
	// PackagesPath and ProductsPath are the export files to merge.
	PackagesPath string
	ProductsPath string

	// Mode is the initial label mode. Toggled with the m key.
	Mode domain.Mode
}

// Messages passed through the Elm update loop.
type (
	recordsLoadedMsg struct {
		records []domain.CanonicalLabelRecord
	}
	batchDoneMsg struct {
		result *driving.GenerateResult
	}
	errMsg struct {
		err error
	}
)

// App is the record browser application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	cfg    Config
	ctx    context.Context
	styles *styles.Styles

	records []domain.CanonicalLabelRecord
	cursor  int
	offset  int

	mode domain.Mode

	// editing is true while the override input is open.
	editing bool
	input   textinput.Model

	loading bool
	spin    spinner.Model

	status string
	err    error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, cfg Config) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if !cfg.Mode.Valid() {
		cfg.Mode = domain.ModePackage
	}

	s := styles.DefaultStyles()

	input := textinput.New()
	input.Placeholder = "label count (empty clears)"
	input.CharLimit = 5
	input.Width = 28

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = s.Muted

	return &App{
		ports:   ports,
		cfg:     cfg,
		ctx:     context.Background(),
		styles:  s,
		mode:    cfg.Mode,
		input:   input,
		spin:    spin,
		loading: true,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("dclabel"),
		a.spin.Tick,
		a.loadRecords(),
	)
}

// loadRecords merges the exports and attaches stored overrides.
func (a *App) loadRecords() tea.Cmd {
	return func() tea.Msg {
		records, err := a.ports.Merge.Process(a.ctx, a.cfg.PackagesPath, a.cfg.ProductsPath)
		if err != nil {
			return errMsg{err}
		}
		records, err = a.ports.Records.ApplyOverrides(a.ctx, records)
		if err != nil {
			return errMsg{err}
		}
		return recordsLoadedMsg{records}
	}
}

// generateBatch runs the generator over the current records and
// delivers the result.
func (a *App) generateBatch() tea.Cmd {
	records := a.records
	mode := a.mode
	return func() tea.Msg {
		result, err := a.ports.Generate.Generate(a.ctx, records, driving.GenerateOptions{Mode: mode})
		if err != nil {
			return errMsg{err}
		}
		if err := a.ports.Sink.Deliver(a.ctx, result.Filename, result.Content); err != nil {
			return errMsg{err}
		}
		return batchDoneMsg{result}
	}
}

// saveOverride persists the override input for the selected record.
func (a *App) saveOverride(label, value string) tea.Cmd {
	return func() tea.Msg {
		if value == "" {
			if err := a.ports.Records.ClearOverride(a.ctx, label); err != nil {
				return errMsg{err}
			}
		} else {
			count, err := strconv.Atoi(value)
			if err != nil {
				return errMsg{fmt.Errorf("invalid count %q", value)}
			}
			if err := a.ports.Records.SetOverride(a.ctx, label, count); err != nil {
				return errMsg{err}
			}
		}
		return nil
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case recordsLoadedMsg:
		a.loading = false
		a.records = msg.records
		if a.cursor >= len(a.records) {
			a.cursor = 0
			a.offset = 0
		}
		a.status = fmt.Sprintf("%d records loaded", len(a.records))
		a.err = nil
		return a, nil

	case batchDoneMsg:
		a.loading = false
		a.status = fmt.Sprintf("wrote %d labels to %s", msg.result.Labels, msg.result.Filename)
		if n := len(msg.result.Skipped); n > 0 {
			a.status += fmt.Sprintf(" (%d skipped)", n)
		}
		a.err = nil
		return a, nil

	case errMsg:
		a.loading = false
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes key presses. The override input captures all keys
// while open.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			a.editing = false
			label := a.records[a.cursor].PackageLabel
			value := strings.TrimSpace(a.input.Value())
			return a, tea.Sequence(a.saveOverride(label, value), a.loadRecords())
		case "esc":
			a.editing = false
			return a, nil
		default:
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(msg)
			return a, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
			if a.cursor < a.offset {
				a.offset = a.cursor
			}
		}
		return a, nil

	case "down", "j":
		if a.cursor < len(a.records)-1 {
			a.cursor++
			if a.cursor >= a.offset+a.visibleRows() {
				a.offset = a.cursor - a.visibleRows() + 1
			}
		}
		return a, nil

	case "m":
		if a.mode == domain.ModePackage {
			a.mode = domain.ModeCase
		} else {
			a.mode = domain.ModePackage
		}
		a.status = fmt.Sprintf("mode: %s", a.mode)
		return a, nil

	case "o":
		if len(a.records) == 0 {
			return a, nil
		}
		a.editing = true
		a.input.SetValue("")
		a.input.Focus()
		return a, textinput.Blink

	case "g":
		if len(a.records) == 0 {
			return a, nil
		}
		a.loading = true
		a.status = "generating..."
		return a, tea.Batch(a.spin.Tick, a.generateBatch())

	case "r":
		a.loading = true
		a.status = "reloading..."
		return a, tea.Batch(a.spin.Tick, a.loadRecords())
	}

	return a, nil
}

// visibleRows is the number of record rows that fit on screen.
func (a *App) visibleRows() int {
	// header, column line, status bar, help line
	rows := a.height - 4
	if a.editing {
		rows -= 3
	}
	if rows < 1 {
		rows = 10
	}
	return rows
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	title := fmt.Sprintf("dclabel — %s mode", a.mode)
	if a.loading {
		title = a.spin.View() + " " + title
	}
	b.WriteString(a.styles.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(a.styles.Muted.Render(
		fmt.Sprintf("%-24s %-36s %8s %8s %6s", "PACKAGE", "PRODUCT", "QTY", "CASE", "PLAN")))
	b.WriteString("\n")

	end := a.offset + a.visibleRows()
	if end > len(a.records) {
		end = len(a.records)
	}
	for i := a.offset; i < end; i++ {
		line := a.recordLine(a.records[i])
		if i == a.cursor {
			line = a.styles.Selected.Render(line)
		} else {
			line = a.styles.Normal.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if a.editing {
		b.WriteString("\n")
		b.WriteString(a.styles.InputField.Render(
			fmt.Sprintf("Override %s: %s", a.records[a.cursor].PackageLabel, a.input.View())))
		b.WriteString("\n")
	}

	if a.err != nil {
		b.WriteString(a.styles.Error.Render("error: " + a.err.Error()))
	} else {
		b.WriteString(a.styles.StatusBar.Render(a.status))
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("j/k move · m mode · o override · g generate · r reload · q quit"))

	return b.String()
}

// recordLine formats one record row.
func (a *App) recordLine(r domain.CanonicalLabelRecord) string {
	name := r.ProductNameClean
	if r.Brand != "" {
		name = r.Brand + " / " + name
	}
	if name == "" {
		name = r.ProductNameRaw
	}
	if len(name) > 36 {
		name = name[:33] + "..."
	}

	caseCol := "-"
	if r.HasCaseData() {
		caseCol = domain.FormatNumeric(r.UnitsPerCase)
	}

	plan := a.planColumn(r)

	return fmt.Sprintf("%-24s %-36s %8s %8s %6s",
		r.PackageLabel, name, domain.FormatNumeric(r.Quantity), caseCol, plan)
}

// planColumn shows how many labels the record contributes in the
// current mode.
func (a *App) planColumn(r domain.CanonicalLabelRecord) string {
	if r.Quantity <= 0 {
		return "skip"
	}
	if r.LabelOverride != nil {
		if *r.LabelOverride == 0 {
			return "off"
		}
		return fmt.Sprintf("=%d", *r.LabelOverride)
	}
	if a.mode == domain.ModePackage {
		return "1"
	}
	if !r.HasCaseData() {
		return "skip"
	}
	return strconv.Itoa(r.CaseLabelsNeeded)
}

// Records returns the loaded record set. Used by tests.
func (a *App) Records() []domain.CanonicalLabelRecord {
	return a.records
}

// Mode returns the current label mode. Used by tests.
func (a *App) Mode() domain.Mode {
	return a.mode
}
