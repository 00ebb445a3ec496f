// Package input provides validated console prompts.
//
// # Overview
//
// Every prompt follows the same loop: show the message, read one line,
// validate it, and on failure print an error and ask again. The loop only
// ends on a valid line or when reading fails (for example at end of input,
// reported as an error wrapping io.EOF).
//
//   - [Prompter.Integer] and [Prompter.Float]: a number inside [Bounds]
//   - [Prompter.Char]: one character, optionally from an allowed set
//   - [Prompter.DateString] and [Prompter.DateParts]: a MM/DD/YYYY date
//   - [Prompter.String]: any line not on an exclusion list
//   - [Prompter.Prompt] and [Prompter.Confirm]: single-shot text and yes/no
//
// # Usage
//
// The package-level functions prompt on stdin and stdout:
//
//	import "github.com/X86-Point5/input-handler/input"
//
//	age, err := input.Integer("Age: ", input.Bounds[int]{Lower: 0, Upper: 130})
//	grade, err := input.Char("Grade: ", input.CharOptions{Allowed: "abcdf", FoldCase: true})
//	due, err := input.DateString("")
//
// Build a Prompter for any other reader and writer:
//
//	p := input.New(strings.NewReader("42\n"), &buf, input.WithTheme(input.PlainTheme()))
//	n, err := p.Integer("", input.DefaultIntBounds)
//
// # Validation without prompting
//
// [Bounds.Check] and [ParseDate] apply the same rules to a value you
// already have. They return a *[Rejection] whose Kind says what was wrong.
//
// # Styling
//
// Prompts render in cyan and bold, hints in gray and errors in red through
// lipgloss. Colors are dropped when the writer is not a terminal.
package input
