package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/hillcipher/matrix"
)

var (
	colorCyan = lipgloss.Color("36")  // headings
	colorRed  = lipgloss.Color("167") // errors
	colorDim  = lipgloss.Color("240") // matrix cells
)

const iconError = "✗"

// printer renders command output on one writer. Styles come from a renderer
// bound to that writer, so colour is dropped automatically when it is not a
// terminal.
type printer struct {
	w        io.Writer
	heading  lipgloss.Style
	cell     lipgloss.Style
	errStyle lipgloss.Style
}

func newPrinter(w io.Writer, noColor bool) *printer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &printer{
		w:        w,
		heading:  r.NewStyle().Bold(true).Foreground(colorCyan),
		cell:     r.NewStyle().Foreground(colorDim),
		errStyle: r.NewStyle().Foreground(colorRed),
	}
}

// printHeading prints a "Title:" line.
func (p *printer) printHeading(title string) {
	fmt.Fprintln(p.w, p.heading.Render(title+":"))
}

// printMatrix prints one line per row, cells joined by tabs.
func (p *printer) printMatrix(m matrix.Matrix) error {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return err
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = p.cell.Render(formatCell(v))
		}
		fmt.Fprintln(p.w, strings.Join(cells, "\t"))
	}
	return nil
}

// printLine prints s followed by a newline.
func (p *printer) printLine(s string) {
	fmt.Fprintln(p.w, s)
}

// printNewline prints an empty line.
func (p *printer) printNewline() {
	fmt.Fprintln(p.w)
}

// printError prints err prefixed with an error icon.
func (p *printer) printError(err error) {
	fmt.Fprintln(p.w, p.errStyle.Render(iconError)+" "+err.Error())
}

// formatCell renders integral values without a decimal point.
func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PrintError writes err to w in the CLI's error style.
func PrintError(w io.Writer, err error, noColor bool) {
	newPrinter(w, noColor).printError(err)
}
