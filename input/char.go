package input

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/X86-Point5/input-handler/logger"
)

const DefaultCharMessage = "\n\tEnter a character: "

// CharOptions restricts what Char accepts.
type CharOptions struct {
	// Allowed lists the accepted characters. Empty accepts any character.
	Allowed string
	// FoldCase upper-cases both Allowed and the entered character.
	FoldCase bool
}

var DefaultCharOptions = CharOptions{FoldCase: true}

// Char asks for a single character and returns the first rune of the line,
// upper-cased when opts.FoldCase is set. An empty message selects
// DefaultCharMessage.
//
// An empty line is not reported as an error: Char re-reads silently,
// without showing message again, until the line is non-empty. Only a
// character outside opts.Allowed redisplays the prompt.
func (p *Prompter) Char(message string, opts CharOptions) (rune, error) {
	if message == "" {
		message = DefaultCharMessage
	}

	allowed := opts.Allowed
	if opts.FoldCase {
		allowed = strings.ToUpper(allowed)
	}

	for {
		line, err := p.ask(message)
		if err != nil {
			return 0, err
		}

		for line == "" {
			p.log.Debug("input rejected", logger.F("kind", EmptyInput), logger.F("input", line))
			if line, err = p.readLine(); err != nil {
				return 0, err
			}
		}

		r, _ := utf8.DecodeRuneInString(line)
		if opts.FoldCase {
			r = unicode.ToUpper(r)
		}

		if allowed == "" || strings.ContainsRune(allowed, r) {
			return r, nil
		}
		p.report(reject(DisallowedValue, line,
			"\tERROR - Character must be one of these \""+allowed+"\" characters\n"))
	}
}

// Char calls Default().Char.
func Char(message string, opts CharOptions) (rune, error) {
	return Default().Char(message, opts)
}
