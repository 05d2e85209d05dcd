package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/pageza/nutriplan/backend/internal/planner"
	"github.com/pageza/nutriplan/backend/internal/plantext"
)

const clearScreen = "\033[H\033[2J"

// DiscardedLine follows a partial plan on a non-interactive writer when the stream fails.
const DiscardedLine = "[partial plan discarded]"

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Renderer draws plan snapshots. On a terminal each snapshot redraws the
// whole plan in markdown form behind a spinner; otherwise only the text that
// was appended since the last snapshot is written, as raw HTML.
type Renderer struct {
	out         io.Writer
	notices     io.Writer
	interactive bool
	spinner     *Spinner

	mu         sync.Mutex
	printed    string
	generation uint64
}

// NewRenderer returns a renderer writing the plan to out and notices to notices.
func NewRenderer(out, notices io.Writer, interactive bool) *Renderer {
	r := &Renderer{out: out, notices: notices, interactive: interactive}
	if interactive {
		r.spinner = NewSpinner("Generating your plan...")
	}
	return r
}

// Render is a planner.Controller subscriber.
func (r *Renderer) Render(s planner.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.updateSpinner(s)

	if s.Generation != r.generation {
		r.generation = s.Generation
		if !r.interactive && r.printed != "" && !strings.HasSuffix(r.printed, "\n") {
			fmt.Fprintln(r.out)
		}
		r.printed = ""
	}
	hadText := r.printed != ""
	if r.interactive {
		r.redraw(s.Text)
	} else {
		r.append(s.Text)
	}

	switch s.Notice.Kind {
	case planner.NoticeError:
		if !r.interactive && hadText && s.Text == "" {
			fmt.Fprintln(r.out, DiscardedLine)
		}
		Failure(r.notices, s.Notice.Message)
	case planner.NoticeInfo:
		if !strings.HasSuffix(r.printed, "\n") && r.printed != "" {
			fmt.Fprintln(r.out)
		}
		Success(r.notices, s.Notice.Message)
	}
}

// Finish stops the spinner if it is still running.
func (r *Renderer) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner != nil && r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *Renderer) updateSpinner(s planner.Snapshot) {
	if r.spinner == nil {
		return
	}
	waiting := s.Loading && s.Text == ""
	switch {
	case waiting && !r.spinner.Active():
		r.spinner.Start()
	case !waiting && r.spinner.Active():
		r.spinner.Stop()
	}
}

func (r *Renderer) redraw(text string) {
	if text == r.printed {
		return
	}
	fmt.Fprint(r.out, clearScreen)
	fmt.Fprint(r.out, plantext.ToMarkdownish(text))
	r.printed = text
}

func (r *Renderer) append(text string) {
	if !strings.HasPrefix(text, r.printed) {
		// The plan was cleared or replaced; start over on a fresh line.
		fmt.Fprintln(r.out)
		r.printed = ""
	}
	fmt.Fprint(r.out, text[len(r.printed):])
	r.printed = text
}
