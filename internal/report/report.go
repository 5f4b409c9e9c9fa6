// Package report prints human-readable progress and the final summary.
package report

import (
	"fmt"
	"io"

	"teaching-export/internal/domain"
)

type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	if w == nil {
		w = io.Discard
	}
	return &Printer{w: w}
}

func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Summary lists every course entry with its duration. Mentorship is left out.
func (p *Printer) Summary(doc domain.TeachingDoc) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "📊 Summary:")
	for _, e := range doc.Teaching {
		if !e.IsCourse() {
			continue
		}
		fmt.Fprintf(p.w, "  • %s - %s\n", e.Course, e.Duration)
	}
}
