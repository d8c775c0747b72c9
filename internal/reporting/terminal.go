package reporting

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/yasmramos/veld-bench/internal/analysis"
)

// Echo writes the Markdown report to w. When w is a terminal and
// plain is false the report is rendered with glamour; otherwise the
// raw Markdown is written unchanged so output stays pipe-friendly.
func Echo(w io.Writer, markdown string, plain bool) {
	if !plain && isTerminal(w) {
		if rendered, ok := renderMarkdown(markdown); ok {
			fmt.Fprint(w, rendered) //nolint:errcheck
			return
		}
	}
	fmt.Fprintln(w, markdown) //nolint:errcheck
}

func renderMarkdown(markdown string) (string, bool) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", false
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", false
	}
	return out, true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Banner layout: fixed display-width columns for emoji-safe alignment.
const (
	colCategory = 16
	colStatus   = 9
	bannerWidth = 50
)

// SummaryBanner prints the final terminal banner: a category/status
// table followed by the strategic insight lines.
//
//nolint:errcheck // display function, write errors are not actionable
func SummaryBanner(w io.Writer, set analysis.Set, insightLines []string) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("═", bannerWidth))
	fmt.Fprintf(w, " STRATEGIC VALIDATION SUMMARY\n")
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("═", bannerWidth))

	fmt.Fprintf(w, "%s  %s  %s\n",
		padRight("Category", colCategory),
		padRight("Status", colStatus),
		"Key Metric")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", bannerWidth))

	for _, cat := range analysis.Categories {
		v := set[cat]
		if v == nil {
			fmt.Fprintf(w, "%s  %s  %s\n",
				padRight(cat.Title(), colCategory),
				padRight("—", colStatus),
				"no data")
			continue
		}
		status := "✅ PASS"
		if !v.Passed {
			status = "❌ FAIL"
		}
		fmt.Fprintf(w, "%s  %s  %s\n",
			padRight(cat.Title(), colCategory),
			padRight(status, colStatus),
			v.Headline)
	}

	fmt.Fprintf(w, "\n")
	for _, line := range insightLines {
		fmt.Fprintf(w, "%s\n", line)
	}
}

// padRight pads s with spaces so its terminal display width reaches
// width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
