package reconcile

import (
	"fmt"
	"io"
	"os"

	"github.com/tarinyoom/llm-stack/pkg/constants"
)

// ProgressSink receives the observable per-model events of a reconciliation
// cycle. Implementations must be safe for sequential use only; the reconciler
// never calls them concurrently.
type ProgressSink interface {
	// Satisfied reports a model already present in the inventory.
	Satisfied(model string)

	// Pulling reports a pull about to start.
	Pulling(model string)

	// Pulled reports a pull completed and verified.
	Pulled(model string)

	// Error reports a failed cycle in repeating mode.
	Error(err error)

	// Fatal reports a condition the loop cannot correct.
	Fatal(msg string)
}

// ConsoleProgress writes tagged progress lines: informational events to one
// writer, failures to another. Lines are plain text, not machine-parsed.
type ConsoleProgress struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsoleProgress creates a sink writing to the given writers. Nil writers
// default to stdout and stderr.
func NewConsoleProgress(out, errOut io.Writer) *ConsoleProgress {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &ConsoleProgress{out: out, errOut: errOut}
}

// Satisfied implements ProgressSink
func (p *ConsoleProgress) Satisfied(model string) {
	fmt.Fprintf(p.out, "%s %s\n", constants.TagOK, model)
}

// Pulling implements ProgressSink
func (p *ConsoleProgress) Pulling(model string) {
	fmt.Fprintf(p.out, "%s %s\n", constants.TagPull, model)
}

// Pulled implements ProgressSink
func (p *ConsoleProgress) Pulled(model string) {
	fmt.Fprintf(p.out, "%s %s\n", constants.TagDone, model)
}

// Error implements ProgressSink
func (p *ConsoleProgress) Error(err error) {
	fmt.Fprintf(p.errOut, "%s %v\n", constants.TagError, err)
}

// Fatal implements ProgressSink
func (p *ConsoleProgress) Fatal(msg string) {
	fmt.Fprintf(p.errOut, "%s %s\n", constants.TagFatal, msg)
}

// NopProgress discards all events.
type NopProgress struct{}

// Satisfied implements ProgressSink
func (NopProgress) Satisfied(string) {}

// Pulling implements ProgressSink
func (NopProgress) Pulling(string) {}

// Pulled implements ProgressSink
func (NopProgress) Pulled(string) {}

// Error implements ProgressSink
func (NopProgress) Error(error) {}

// Fatal implements ProgressSink
func (NopProgress) Fatal(string) {}
