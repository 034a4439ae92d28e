package console

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type (
	Console struct {
		dest    io.Writer
		logger  *log.Logger
		buf     bytes.Buffer
		mux     sync.Mutex
		styled  bool
		warning lipgloss.Style
		folder  lipgloss.Style
		done    lipgloss.Style
	}
)

const (
	WarningText  = "WARNING! This script will overwrite existing .yml files in the directory."
	CleaningText = "Cleaning: "
	FinishedText = "FINISHED"
)

var (
	palette = struct {
		red     lipgloss.Color
		magenta lipgloss.Color
		green   lipgloss.Color
	}{
		red:     lipgloss.Color("196"),
		magenta: lipgloss.Color("212"),
		green:   lipgloss.Color("42"),
	}
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New returns a Console printing to dest. Styling is applied only when styled is true.
// Log messages carry prefix and are held back until FlushLogs.
func New(dest io.Writer, prefix string, styled bool) *Console {
	c := Console{dest: dest, styled: styled}

	c.logger = log.New(&c.buf, prefix, 0)

	r := lipgloss.NewRenderer(dest)

	c.warning = r.NewStyle().Bold(true).Foreground(palette.red)
	c.folder = r.NewStyle().Foreground(palette.magenta)
	c.done = r.NewStyle().Bold(true).Foreground(palette.green)

	return &c
}

func (c *Console) render(style lipgloss.Style, s string) string {
	if !c.styled {
		return s
	}

	return style.Render(s)
}

func (c *Console) println(s string) {
	c.mux.Lock()
	defer c.mux.Unlock()

	_, _ = fmt.Fprintln(c.dest, s)
}

func (c *Console) Warn() {
	c.println(c.render(c.warning, WarningText))
}

func (c *Console) Cleaning(folder string) {
	c.println(CleaningText + c.render(c.folder, folder))
}

func (c *Console) Finished() {
	c.println(c.render(c.done, FinishedText))
}

func (c *Console) Write(p []byte) (n int, err error) {
	c.mux.Lock()
	defer c.mux.Unlock()

	return c.dest.Write(p)
}

func (c *Console) Printf(format string, v ...any) {
	c.mux.Lock()
	defer c.mux.Unlock()

	c.logger.Printf(format, v...)
}

func (c *Console) Print(v ...any) {
	c.mux.Lock()
	defer c.mux.Unlock()

	c.logger.Print(v...)
}

// FlushLogs writes the held back log messages to w and clears them.
func (c *Console) FlushLogs(w io.Writer) error {
	c.mux.Lock()
	defer c.mux.Unlock()

	_, err := w.Write(c.buf.Bytes())

	c.buf.Reset()

	return err
}
