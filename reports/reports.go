package reports

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/foomo/htmlcompare"
)

// Format of a written report
type Format string

const (
	FormatText    Format = "text"
	FormatSummary Format = "summary"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// Formats lists all supported formats
var Formats = []Format{FormatText, FormatSummary, FormatJSON, FormatYAML}

// Write renders r in the given format.
func Write(w io.Writer, r *htmlcompare.Report, format Format) error {
	switch format {
	case FormatText, "":
		r.Print(w)
		return nil
	case FormatSummary:
		reportSummary(r, w)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func reportSummary(r *htmlcompare.Report, w io.Writer) {
	printh, println, printsep := printers(w)
	printh("summary")
	println("valid", r.Valid)
	println("elements current", r.CurrentCount, "original", r.OriginalCount)
	counts := r.FailuresByKind()
	if len(counts) == 0 {
		return
	}
	printh("failures by kind")
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		println(kind, counts[htmlcompare.FailureKind(kind)])
	}
	printsep()
	println("total", len(r.Failures))
}

func printers(w io.Writer) (printh func(header ...interface{}), println func(a ...interface{}), printsep func()) {
	printsep = func() {
		fmt.Fprintln(w, "-----------------------------------------------------------------------------")
	}
	println = func(a ...interface{}) { fmt.Fprintln(w, a...) }
	printh = func(header ...interface{}) {
		println()
		println(header...)
		printsep()
	}
	return
}
