package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/X86-Point5/input-handler/logger"
)

// Prompter reads lines from one reader and writes prompts and error
// messages to one writer. It keeps no validation state between calls.
// A Prompter is not safe for concurrent use.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	theme Theme
	log   logger.Logger
	echo  bool
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithTheme replaces the default styles.
func WithTheme(t Theme) Option {
	return func(p *Prompter) { p.theme = t }
}

// WithLogger sets the logger that receives rejected lines at debug level.
func WithLogger(l logger.Logger) Option {
	return func(p *Prompter) {
		if l != nil {
			p.log = l
		}
	}
}

// WithEcho writes each consumed line back to the output. Useful when input
// is piped and would otherwise not appear next to its prompt.
func WithEcho(echo bool) Option {
	return func(p *Prompter) { p.echo = echo }
}

// New creates a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Prompter {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	p := &Prompter{
		in:    br,
		out:   w,
		theme: DefaultTheme(lipgloss.NewRenderer(w)),
		log:   logger.NewSilentLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var (
	defaultOnce     sync.Once
	defaultPrompter *Prompter
)

// Default returns the Prompter on stdin and stdout used by the package-level
// functions. It is created once so that input buffered by one call is still
// available to the next.
func Default() *Prompter {
	defaultOnce.Do(func() {
		defaultPrompter = New(os.Stdin, os.Stdout, WithLogger(logger.Default()))
	})
	return defaultPrompter
}

// readLine returns the next line without its line terminator. A final line
// with no trailing newline is still returned; end of input with nothing
// pending is an error wrapping io.EOF.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if p.echo {
		fmt.Fprintln(p.out, render(p.theme.Echo, line))
	}
	return line, nil
}

// ask shows message and reads one line.
func (p *Prompter) ask(message string) (string, error) {
	fmt.Fprint(p.out, render(p.theme.Prompt, message))
	return p.readLine()
}

func (p *Prompter) report(r *Rejection) {
	p.log.Debug("input rejected", logger.F("kind", r.Kind), logger.F("input", r.Input))
	fmt.Fprintln(p.out, render(p.theme.Error, r.Message))
}

// retry asks until accept returns a value. Rejections are reported and
// retried; any other error ends the loop.
func retry[T any](p *Prompter, message string, accept func(line string) (T, error)) (T, error) {
	var zero T
	for {
		line, err := p.ask(message)
		if err != nil {
			return zero, err
		}

		v, err := accept(line)
		if err == nil {
			return v, nil
		}

		var rej *Rejection
		if !errors.As(err, &rej) {
			return zero, err
		}
		p.report(rej)
	}
}

// Prompt asks for free text with an optional default. The line is trimmed,
// and an empty line or a read error returns defaultValue.
//
// Example:
//
//	name := p.Prompt("Your name", "guest")
//	// Displays: Your name (guest): _
func (p *Prompter) Prompt(message, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprint(p.out, render(p.theme.Prompt, message)+" "+
			render(p.theme.Hint, "("+defaultValue+")")+": ")
	} else {
		fmt.Fprint(p.out, render(p.theme.Prompt, message)+": ")
	}

	line, err := p.readLine()
	if err != nil {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}
	return line
}

// Confirm asks a yes/no question. y/yes in any case is true; an empty line
// or a read error returns defaultYes. Anything else is false.
//
// Example:
//
//	again := p.Confirm("Enter another value?", false)
//	// Displays: Enter another value? [y/N]: _
func (p *Prompter) Confirm(message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprint(p.out, render(p.theme.Prompt, message)+" "+render(p.theme.Hint, hint)+": ")

	line, err := p.readLine()
	if err != nil {
		return defaultYes
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Prompt calls Default().Prompt.
func Prompt(message, defaultValue string) string {
	return Default().Prompt(message, defaultValue)
}

// Confirm calls Default().Confirm.
func Confirm(message string, defaultYes bool) bool {
	return Default().Confirm(message, defaultYes)
}
