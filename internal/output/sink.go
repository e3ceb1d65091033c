package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	oerrors "github.com/opmodel/gitrev/internal/errors"
)

// Banner titles around the debug echo of rendered output.
const (
	BannerBegin = "rendered output"
	BannerEnd   = "end of output"
)

// Sink delivers rendered text to a file or to stdout.
type Sink struct {
	// Stdout receives the debug dump and, without an output path, the
	// rendered text.
	Stdout io.Writer

	// Styled enables lipgloss styling of the debug banners.
	Styled bool
}

// NewSink returns a Sink writing to the process stdout. Banners are styled
// only when stdout is a terminal.
func NewSink() *Sink {
	return &Sink{
		Stdout: os.Stdout,
		Styled: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// EmitOptions controls where rendered output goes.
type EmitOptions struct {
	// OutputPath is the destination file. Empty means stdout.
	OutputPath string

	// Debug dumps the context as indented JSON before the output and wraps
	// the stdout echo in banners.
	Debug bool

	// Context is dumped in debug mode.
	Context json.Marshaler
}

// Emit writes rendered according to opts. In debug mode the context dump
// always precedes the rendered text. With an output path the file is
// replaced; in debug mode its content is also echoed to stdout between
// banners. Empty output is still written.
func (s *Sink) Emit(rendered string, opts EmitOptions) error {
	if opts.Debug {
		if err := s.dumpContext(opts.Context); err != nil {
			return err
		}
	}

	if opts.OutputPath != "" {
		if err := os.WriteFile(opts.OutputPath, []byte(rendered), 0o644); err != nil {
			return &oerrors.OutputError{Path: opts.OutputPath, Err: err}
		}
		Debug("output written", "path", opts.OutputPath, "bytes", len(rendered))
		if !opts.Debug {
			return nil
		}
	}

	if opts.Debug {
		return s.writeStdout(s.wrap(rendered))
	}
	return s.writeStdout(rendered)
}

func (s *Sink) dumpContext(ctx json.Marshaler) error {
	if ctx == nil {
		return nil
	}
	data, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return &oerrors.OutputError{Path: "<stdout>", Err: fmt.Errorf("encoding context: %w", err)}
	}
	return s.writeStdout(string(data) + "\n")
}

// wrap surrounds rendered with begin and end banners on their own lines.
func (s *Sink) wrap(rendered string) string {
	var b strings.Builder
	b.WriteString(s.banner(BannerBegin))
	b.WriteString("\n")
	b.WriteString(rendered)
	if rendered != "" && !strings.HasSuffix(rendered, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(s.banner(BannerEnd))
	b.WriteString("\n")
	return b.String()
}

func (s *Sink) banner(title string) string {
	line := Banner(title)
	if s.Styled {
		return StyleBanner.Render(line)
	}
	return line
}

func (s *Sink) writeStdout(text string) error {
	w := s.Stdout
	if w == nil {
		w = os.Stdout
	}
	if _, err := io.WriteString(w, text); err != nil {
		return &oerrors.OutputError{Path: "<stdout>", Err: err}
	}
	return nil
}
