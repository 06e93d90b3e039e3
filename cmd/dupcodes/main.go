package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/codewithboateng/dupcodes/internal/ir"
	"github.com/codewithboateng/dupcodes/internal/parser"
	"github.com/codewithboateng/dupcodes/internal/reporting"
	"github.com/codewithboateng/dupcodes/internal/shared"
	"github.com/codewithboateng/dupcodes/internal/tally"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `dupcodes – duplicate catalogItemCode report for search-history exports

Usage:
  dupcodes [flags] <history.json>

The input path may also come from input.path in the config file or DUPCODES_INPUT.

Flags:
  -config <file>       YAML config (optional)
  -format <fmt>        text (default) | json | html
  -locale <lang>       %s (default %s)
  -color <mode>        auto (default) | always | never
  -normalize           trim and NFC-normalize codes before counting
  -base <file>         compare against an older export and print a JSON diff
  -version             print version and exit
`, strings.Join(reporting.Locales(), " | "), reporting.DefaultLocale)
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dupcodes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	format := fs.String("format", "", "Report format: text|json|html")
	locale := fs.String("locale", "", "Report language")
	colorMode := fs.String("color", "", "Colour mode: auto|always|never")
	normalize := fs.Bool("normalize", false, "Trim and NFC-normalize codes")
	basePath := fs.String("base", "", "Older export to diff against")
	version := fs.Bool("version", false, "Print version")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *version {
		fmt.Fprintln(stdout, "dupcodes report format", ir.Version)
		return 0
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "dupcodes: expected one input path, got %d\n\n", fs.NArg())
		usage(stderr)
		return 2
	}

	cfg, err := shared.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "dupcodes:", err)
		return 2
	}
	shared.InitLogger(stderr, cfg.Logging.Format, cfg.Logging.Level)

	// precedence: flags > env > config > defaults
	inPath := fs.Arg(0)
	if inPath == "" {
		inPath = cfg.Input.Path
	}
	if *format == "" {
		*format = cfg.Report.Format
	}
	if *locale == "" {
		*locale = cfg.Report.Locale
	}
	if *colorMode == "" {
		*colorMode = cfg.Report.Color
	}
	opts := parser.ExtractOptions{Normalize: *normalize || cfg.Report.Normalize}

	if inPath == "" {
		fmt.Fprintln(stderr, "dupcodes: an input path is required (argument, input.path in config, or DUPCODES_INPUT)")
		usage(stderr)
		return 2
	}
	*format = strings.ToLower(strings.TrimSpace(*format))
	switch *format {
	case "text", "json", "html":
	default:
		fmt.Fprintf(stderr, "dupcodes: unknown format %q\n", *format)
		return 2
	}
	msgs, ok := reporting.MessagesFor(*locale)
	if !ok {
		fmt.Fprintf(stderr, "dupcodes: unknown locale %q (have %s)\n", *locale, strings.Join(reporting.Locales(), ", "))
		return 2
	}
	useColor, err := colorEnabled(*colorMode, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "dupcodes:", err)
		return 2
	}

	head, err := analyze(inPath, opts)
	if err != nil {
		logLoadError(inPath, err)
		return 1
	}

	if *basePath != "" {
		base, err := analyze(*basePath, opts)
		if err != nil {
			logLoadError(*basePath, err)
			return 1
		}
		d := reporting.BuildDiff(&base, &head)
		if err := reporting.WriteDiffJSON(stdout, &d); err != nil {
			slog.Error("write diff failed", "err", err)
			return 1
		}
		return 0
	}

	slog.Debug("writing report", "format", *format, "locale", *locale, "duplicates", head.DuplicateKinds)
	switch *format {
	case "json":
		err = reporting.WriteJSON(stdout, &head)
	case "html":
		err = reporting.WriteHTML(stdout, &head, msgs)
	default:
		err = reporting.WriteText(stdout, &head, reporting.TextOptions{Messages: msgs, Color: useColor})
	}
	if err != nil {
		slog.Error("write report failed", "format", *format, "err", err)
		return 1
	}
	return 0
}

func analyze(path string, opts parser.ExtractOptions) (ir.Report, error) {
	doc, err := parser.Load(path)
	if err != nil {
		return ir.Report{}, err
	}
	codes := parser.ExtractCodesWith(doc, opts)
	slog.Debug("codes extracted", "path", doc.Source, "codes", len(codes), "normalize", opts.Normalize)
	return tally.BuildReport(doc.Source, codes), nil
}

func logLoadError(path string, err error) {
	kind := "error"
	var pe *parser.Error
	if errors.As(err, &pe) {
		kind = string(pe.Kind)
	}
	slog.Error("load failed", "path", path, "kind", kind, "err", err)
}

func colorEnabled(mode string, stdout io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		f, ok := stdout.(*os.File)
		return ok && isatty.IsTerminal(f.Fd()) && !color.NoColor, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("unknown color mode %q", mode)
}
