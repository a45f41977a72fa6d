package harness

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes human-readable per-check lines and an aggregate summary.
type Reporter struct {
	w       io.Writer
	verbose bool
	pass    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
}

// NewReporter creates a Reporter writing to w. With color disabled the
// output is plain text.
func NewReporter(w io.Writer, color, verbose bool) *Reporter {
	r := &Reporter{
		w:       w,
		verbose: verbose,
		pass:    lipgloss.NewStyle(),
		fail:    lipgloss.NewStyle(),
		dim:     lipgloss.NewStyle(),
	}
	if color {
		r.pass = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
		r.fail = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		r.dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return r
}

// Result writes one check's outcome. Failure details are always shown for
// failing checks; passing checks print a single line (or nothing unless
// verbose).
func (r *Reporter) Result(res Result) {
	elapsed := r.dim.Render(fmt.Sprintf("(%s)", res.Duration.Round(time.Millisecond)))
	if res.Passed() {
		if r.verbose {
			fmt.Fprintf(r.w, "%s %s %s\n", r.pass.Render("PASS"), res.Name, elapsed)
		}
		return
	}
	fmt.Fprintf(r.w, "%s %s %s\n", r.fail.Render("FAIL"), res.Name, elapsed)
	for _, f := range res.Failures {
		fmt.Fprintf(r.w, "    %s\n", f)
	}
}

// Summary writes the aggregate line for the run.
func (r *Reporter) Summary(s Summary) {
	passed, failed := s.Counts()
	elapsed := s.Duration.Round(time.Millisecond)
	if failed == 0 {
		fmt.Fprintf(r.w, "%s %d check(s) in %s\n", r.pass.Render("PASS:"), passed, elapsed)
		return
	}
	fmt.Fprintf(r.w, "%s %d of %d check(s) failed in %s\n",
		r.fail.Render("FAIL:"), failed, passed+failed, elapsed)
}
