package reporting

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/codewithboateng/dupcodes/internal/ir"
)

type TextOptions struct {
	Messages Messages
	// Color highlights the header line with ANSI escapes.
	Color bool
}

// WriteText prints the console report: either the no-duplicates line, or the
// header, one "<code> : <count>" line per duplicate, a blank line and the summary.
func WriteText(w io.Writer, rep *ir.Report, opts TextOptions) error {
	m := opts.Messages
	if m.Header == "" {
		m, _ = MessagesFor(DefaultLocale)
	}
	bw := bufio.NewWriter(w)

	hl := color.New(color.FgYellow, color.Bold)
	clean := color.New(color.FgGreen)
	if opts.Color {
		hl.EnableColor()
		clean.EnableColor()
	} else {
		hl.DisableColor()
		clean.DisableColor()
	}

	if !rep.HasDuplicates() {
		clean.Fprintln(bw, m.NoDuplicates)
		return bw.Flush()
	}

	hl.Fprintln(bw, m.Header)
	for _, d := range rep.Duplicates {
		fmt.Fprintf(bw, "%s : %d\n", d.Code, d.Count)
	}
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, m.Summary+"\n", rep.Total, rep.Unique, rep.DuplicateKinds)
	return bw.Flush()
}
