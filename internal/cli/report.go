package cli

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// Room taken by borders and cell padding in a three-column table.
const tableChrome = 10

const minDetailWidth = 12

// Result is the outcome of one check.
type Result struct {
	Name   string
	OK     bool
	Detail string
}

// Report collects check results in the order they ran.
type Report struct {
	Results []Result

	// Width caps the rendered table width. Zero uses the terminal width when
	// the output is a terminal and leaves the table unbounded otherwise.
	Width int
}

func (r *Report) add(name string, ok bool, detail string) {
	r.Results = append(r.Results, Result{Name: name, OK: ok, Detail: detail})
}

func (r *Report) pass(name string) {
	r.add(name, true, "")
}

func (r *Report) failf(name, format string, args ...any) {
	r.add(name, false, fmt.Sprintf(format, args...))
}

// Failed counts the failing checks.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK {
			n++
		}
	}
	return n
}

// Err is non-nil when any check failed.
func (r *Report) Err() error {
	if n := r.Failed(); n > 0 {
		return fmt.Errorf("%d of %d checks failed", n, len(r.Results))
	}
	return nil
}

// Render writes the report as a table, shortening details that would not fit.
func (r *Report) Render(w io.Writer) error {
	width := r.Width
	if width == 0 {
		width = terminalWidth(w)
	}
	detailMax := r.detailWidth(width)

	table := tablewriter.NewWriter(w)
	table.Header("Check", "Status", "Detail")
	for _, res := range r.Results {
		status := "ok"
		if !res.OK {
			status = "FAIL"
		}
		if err := table.Append(res.Name, status, truncate(res.Detail, detailMax)); err != nil {
			return err
		}
	}
	return table.Render()
}

// detailWidth is the room left for the Detail column, or 0 for no limit.
func (r *Report) detailWidth(width int) int {
	if width <= 0 {
		return 0
	}
	nameWidth := utf8.RuneCountInString("Check")
	for _, res := range r.Results {
		nameWidth = max(nameWidth, utf8.RuneCountInString(res.Name))
	}
	statusWidth := utf8.RuneCountInString("Status")

	return max(width-nameWidth-statusWidth-tableChrome, minDetailWidth)
}

func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
