package timing

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// LabelWidth is the column width labels are padded to in the text report.
const LabelWidth = 72

// Reporter writes one aligned text line per measurement:
//
//	<label>  <wall>s  <user>s  <sys>s  <wall per call>
//
// Write errors are remembered and reported by Err; later writes are skipped.
type Reporter struct {
	w   io.Writer
	err error
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Record implements Sink.
func (r *Reporter) Record(m Measurement) {
	r.printf("%-*s %9.3gs %9.3gs %9.3gs  %s/call\n",
		LabelWidth, m.Label,
		m.Wall.Seconds(), m.User.Seconds(), m.System.Seconds(),
		humanize.SIWithDigits(m.PerCall().Seconds(), 3, "s"))
}

// Separator implements Sink by writing a blank line.
func (r *Reporter) Separator() {
	r.printf("\n")
}

// Err returns the first write error.
func (r *Reporter) Err() error {
	return r.err
}

func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
