package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "glyphs.dev/pkg/glyphs/internal/model"
	"golang.org/x/term"
)

const (
	progressWidth   = 24
	maxGlyphPreview = 32
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// TUI implements UI with styled terminal output and a Bubble Tea pager for
// long glyph listings.
type TUI struct {
	output io.Writer
	mode   StartMode
	bar    progress.Model
	total  int
	done   int
	width  int
	height int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output: output,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
	}
}

// Start prints the header and captures the terminal size.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mode = newStartConfig(options).mode
	t.total = 0
	t.done = 0

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			t.width = width
			t.height = height
		}
	}

	t.printf("%s\n\n", titleStyle.Render("glyphs · "+t.mode.String()))

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayCollected records the number of files for the progress bar.
func (t *TUI) DisplayCollected(ctx context.Context, root m.Path, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.total = count
	t.printf("  Found %d source file(s) under %s\n", count, pathStyle.Render(string(root)))
}

// DisplayFileScan prints a progress line for the scanned input.
func (t *TUI) DisplayFileScan(ctx context.Context, scan m.FileScan) {
	if err := ctx.Err(); err != nil {
		return
	}

	if scan.File.Kind == m.SourceAuxiliary {
		t.printf("  Extra characters %s (%d)\n", pathStyle.Render(string(scan.File.Path)), scan.CodePoints.Len())
		return
	}

	t.done++

	percent := 1.0
	if t.total > 0 {
		percent = float64(t.done) / float64(t.total)
	}

	if scan.Skipped() {
		t.printf("  %s %s\n", t.bar.ViewAs(percent), warnStyle.Render(fmt.Sprintf("skipped %s: %v", scan.File.Path, scan.Err)))
		return
	}

	t.printf("  %s %s %s\n", t.bar.ViewAs(percent), pathStyle.Render(string(scan.File.Path)),
		faintStyle.Render(fmt.Sprintf("(%d)", scan.CodePoints.Len())))
}

// DisplaySummary prints a boxed summary with a preview of the glyphs found.
func (t *TUI) DisplaySummary(ctx context.Context, inventory m.Inventory, output m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%d distinct code point(s) written to %s\n", inventory.CodePoints.Len(), output)
	fmt.Fprintf(&b, "%d file(s) scanned, %d skipped", len(inventory.Scanned()), len(inventory.Skipped()))

	if preview := glyphPreview(inventory.CodePoints); preview != "" {
		fmt.Fprintf(&b, "\n%s", preview)
	}

	t.printf("\n%s\n", boxStyle.Render(b.String()))
}

// DisplayListing shows every glyph with its name. Lists taller than the
// terminal open in a pager.
func (t *TUI) DisplayListing(ctx context.Context, inventory m.Inventory, format ListFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == ListFormatYAML {
		doc, err := renderListingYAML(inventory)
		if err != nil {
			return err
		}

		t.printf("%s", doc)

		return nil
	}

	model := newGlyphListModel(buildGlyphRows(inventory))
	model.width = t.width
	model.height = t.height

	if !model.needsPagination() {
		t.printf("\n%s", model.View())
		return nil
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayCheck prints whether the output file matches the current inventory.
func (t *TUI) DisplayCheck(ctx context.Context, output m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		t.printf("\n  %s\n", okStyle.Render(fmt.Sprintf("✓ %s is up to date", output)))
		return
	}

	t.printf("\n%s\n  %s\n", diff, warnStyle.Render(fmt.Sprintf("✗ %s is out of date", output)))
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

func glyphPreview(set m.CodePointSet) string {
	points := set.Sorted()

	var b strings.Builder

	for i, c := range points {
		if i == maxGlyphPreview {
			fmt.Fprintf(&b, " … +%d", len(points)-maxGlyphPreview)
			break
		}

		b.WriteRune(rune(c))
	}

	return b.String()
}

// glyphRow is one code point in the listing.
type glyphRow struct {
	code    m.CodePoint
	name    string
	sources int
}

func buildGlyphRows(inventory m.Inventory) []glyphRow {
	points := inventory.CodePoints.Sorted()
	rows := make([]glyphRow, 0, len(points))

	for _, c := range points {
		sources := 0

		for _, scan := range inventory.Scans {
			if scan.CodePoints.Contains(c) {
				sources++
			}
		}

		rows = append(rows, glyphRow{code: c, name: glyphName(c), sources: sources})
	}

	return rows
}

// glyphListModel is the Bubble Tea model for paging through glyphs.
type glyphListModel struct {
	rows     []glyphRow
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newGlyphListModel(rows []glyphRow) glyphListModel {
	return glyphListModel{rows: rows}
}

func (gm glyphListModel) Init() tea.Cmd {
	return nil
}

func (gm glyphListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		gm.height = msg.Height
		gm.width = msg.Width

		return gm, nil

	case tea.KeyMsg:
		return gm.handleKeyPress(msg)
	}

	return gm, nil
}

//nolint:cyclop,exhaustive // Key handling requires multiple cases for UI navigation
func (gm glyphListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		gm.quitting = true
		return gm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		gm.quitting = true
		return gm, tea.Quit

	case "down", "j":
		gm.offset = gm.clampOffset(gm.offset + 1)
	case "up", "k":
		gm.offset = gm.clampOffset(gm.offset - 1)
	case "g", "home":
		gm.offset = 0
	case "G", "end":
		gm.offset = gm.maxOffset()
	case "d", "pgdown":
		gm.offset = gm.clampOffset(gm.offset + gm.itemsPerPage())
	case "u", "pgup":
		gm.offset = gm.clampOffset(gm.offset - gm.itemsPerPage())
	}

	return gm, nil
}

func (gm glyphListModel) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}

	if maxOff := gm.maxOffset(); offset > maxOff {
		return maxOff
	}

	return offset
}

// itemsPerPage calculates how many rows fit on screen.
func (gm glyphListModel) itemsPerPage() int {
	if gm.height == 0 {
		return 10
	}

	// Title, blank, total, blank, page line and help line.
	reserved := 6

	available := gm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (gm glyphListModel) maxOffset() int {
	maxOff := len(gm.rows) - gm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the list is too large to fit on screen.
func (gm glyphListModel) needsPagination() bool {
	if len(gm.rows) == 0 {
		return false
	}

	return len(gm.rows) > gm.itemsPerPage() && gm.height > 0
}

func (gm glyphListModel) View() string {
	var b strings.Builder

	if len(gm.rows) == 0 {
		b.WriteString("  No non-ASCII characters found\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render("Glyphs") + "\n\n")

	rows := gm.rows
	paginate := gm.needsPagination()

	start, end := 0, len(rows)
	if paginate {
		start = gm.clampOffset(gm.offset)

		end = start + gm.itemsPerPage()
		if end > len(rows) {
			end = len(rows)
		}

		rows = rows[start:end]
	}

	for _, row := range rows {
		fmt.Fprintf(&b, "  %-8s %s  %s %s\n",
			row.code.Hex(),
			string(rune(row.code)),
			row.name,
			faintStyle.Render(fmt.Sprintf("(%d input(s))", row.sources)),
		)
	}

	fmt.Fprintf(&b, "\n  Total: %d glyph(s)\n", len(gm.rows))

	if paginate {
		perPage := gm.itemsPerPage()
		currentPage := (start / perPage) + 1
		totalPages := (len(gm.rows) + perPage - 1) / perPage

		fmt.Fprintf(&b, "  Page %d/%d | Showing %d-%d of %d\n", currentPage, totalPages, start+1, end, len(gm.rows))
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}
