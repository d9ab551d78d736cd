// Package report accumulates per-link outcomes, prints one line per link
// and a closing summary, and answers the overall verdict questions.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/relink/pkg/linker"
	"github.com/arthur-debert/relink/pkg/status"
	"github.com/arthur-debert/relink/pkg/style"
	"github.com/arthur-debert/relink/pkg/types"
)

// summaryOrder fixes the category order of the summary line.
var summaryOrder = []string{
	string(linker.ResultCreated),
	string(linker.ResultCreatedBroken),
	string(linker.ResultSkipped),
	string(linker.ResultFailed),
	string(status.StatusOK),
	string(status.StatusMissing),
	string(status.StatusBroken),
	string(status.StatusWrongTarget),
	string(status.StatusNotSymlink),
	style.ErrorTag,
}

// Aggregator tallies outcomes and writes the per-link lines. It is
// append-only; links are reported in processing order.
type Aggregator struct {
	w      io.Writer
	counts map[string]int
	total  int
}

// New creates an Aggregator writing to w
func New(w io.Writer) *Aggregator {
	return &Aggregator{
		w:      w,
		counts: make(map[string]int),
	}
}

// LinkStatus records and prints one inspection outcome
func (a *Aggregator) LinkStatus(link types.ExpandedLink, st status.Status) {
	a.tally(string(st))
	fmt.Fprintln(a.w, style.RenderStatusLine(link, st))
}

// LinkResult records and prints one mutation outcome
func (a *Aggregator) LinkResult(link types.ExpandedLink, res linker.Result, err error) {
	a.tally(string(res))
	fmt.Fprintln(a.w, style.RenderResultLine(link, res, err))
}

// LinkError records and prints a per-link error that falls outside the
// status and result enumerations (expansion failures, inspection I/O
// errors). These always count toward failure.
func (a *Aggregator) LinkError(destination string, err error) {
	a.tally(style.ErrorTag)
	fmt.Fprintln(a.w, style.RenderErrorLine(destination, err))
}

// Count returns the tally for one outcome category
func (a *Aggregator) Count(category string) int {
	return a.counts[category]
}

// Total returns the number of links reported so far
func (a *Aggregator) Total() int {
	return a.total
}

// AnyFailed reports whether any mutation failed or errored; this is the
// link command's failure verdict.
func (a *Aggregator) AnyFailed() bool {
	return a.counts[string(linker.ResultFailed)] > 0 || a.counts[style.ErrorTag] > 0
}

// AllHealthy reports whether every link ended in ok; this is the doctor
// command's success verdict.
func (a *Aggregator) AllHealthy() bool {
	return a.counts[string(status.StatusOK)] == a.total
}

// PrintSummary writes the one-line tally of all non-zero categories
func (a *Aggregator) PrintSummary() {
	var parts []string
	for _, category := range summaryOrder {
		if n := a.counts[category]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, category))
		}
	}

	noun := "links"
	if a.total == 1 {
		noun = "link"
	}
	if len(parts) == 0 {
		fmt.Fprintf(a.w, "%d %s\n", a.total, noun)
		return
	}
	fmt.Fprintf(a.w, "%d %s: %s\n", a.total, noun, strings.Join(parts, ", "))
}

func (a *Aggregator) tally(category string) {
	a.counts[category]++
	a.total++
}
