package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// spinnerInterval is the delay between animation frames.
var spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// terminalStderr returns os.Stderr when it is a terminal and nil otherwise,
// so piped or redirected runs never see spinner frames.
func terminalStderr() io.Writer {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return os.Stderr
	}
	return nil
}

// spinner redraws one status line on w until finish is called or the
// context passed to start is done.
type spinner struct {
	w       io.Writer
	message string

	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func newSpinner(w io.Writer, message string) *spinner {
	return &spinner{
		w:       w,
		message: message,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (s *spinner) start(ctx context.Context) {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			}
		}
	}()
}

// finish stops the animation and blanks the line. It is safe to call more
// than once.
func (s *spinner) finish() {
	s.once.Do(func() {
		close(s.stop)
		<-s.stopped
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", lipgloss.Width(s.message)+2))
	})
}

// fetching runs fetch while a "Fetching <what>..." spinner is shown on the
// CLI's status writer. Without a status writer fetch runs silently.
func fetching[T any](ctx context.Context, c *CLI, what string, fetch func(context.Context) (T, error)) (T, error) {
	if c.status == nil {
		return fetch(ctx)
	}
	s := newSpinner(c.status, fmt.Sprintf("Fetching %s...", what))
	s.start(ctx)
	defer s.finish()
	return fetch(ctx)
}
