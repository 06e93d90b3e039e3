package reporting

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/codewithboateng/dupcodes/internal/ir"
)

func WriteHTML(w io.Writer, rep *ir.Report, m Messages) error {
	if m.Title == "" {
		m, _ = MessagesFor(DefaultLocale)
	}
	f := bufio.NewWriter(w)

	// Head + styles
	fmt.Fprintf(f, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title>", html.EscapeString(m.Title))
	fmt.Fprint(f, "<style>body{font-family:system-ui,Arial,sans-serif;padding:20px;line-height:1.4} table{border-collapse:collapse;margin:8px 0} td,th{border:1px solid #ddd;padding:6px} h1,h2{margin:6px 0 4px} .dim{color:#666} .mono{font-family:ui-monospace,Menlo,Consolas,monospace} td.count{text-align:right}</style>")
	fmt.Fprint(f, "</head><body>")

	// Title + source
	fmt.Fprintf(f, "<h1>%s</h1>", html.EscapeString(m.Title))
	if rep.Source != "" {
		fmt.Fprintf(f, "<p class='dim'>Source: <span class='mono'>%s</span></p>", html.EscapeString(rep.Source))
	}
	if rep.ID != "" {
		fmt.Fprintf(f, "<p class='dim'>Report: <span class='mono'>%s</span> &nbsp; %s</p>",
			html.EscapeString(rep.ID), rep.GeneratedAt.Format("2006-01-02 15:04:05Z07:00"))
	}

	if !rep.HasDuplicates() {
		fmt.Fprintf(f, "<p id='no-duplicates'>%s</p>", html.EscapeString(m.NoDuplicates))
	} else {
		fmt.Fprintf(f, "<h2>%s</h2>", html.EscapeString(m.Header))
		fmt.Fprintf(f, "<table id='duplicates'><tr><th>%s</th><th>%s</th></tr>",
			html.EscapeString(m.CodeColumn), html.EscapeString(m.CountColumn))
		for _, d := range rep.Duplicates {
			fmt.Fprintf(f, "<tr><td class='code mono'>%s</td><td class='count'>%d</td></tr>",
				html.EscapeString(d.Code), d.Count)
		}
		fmt.Fprint(f, "</table>")
	}

	fmt.Fprintf(f, "<p id='summary'>%s</p>", html.EscapeString(fmt.Sprintf(m.Summary, rep.Total, rep.Unique, rep.DuplicateKinds)))
	fmt.Fprint(f, "</body></html>\n")
	return f.Flush()
}
