package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultIntegerMessage = "\n\tEnter an integer: "
	DefaultFloatMessage   = "\n\tEnter a decimal value: "

	integerParseMessage = "\tERROR - Only integer values can be entered"
	floatParseMessage   = "\tERROR - Only floating point values can be entered"
)

// Number is the set of types a bounded prompt can return.
type Number interface {
	~int | ~float64
}

// Bounds is a closed range, or an open one when Exclusive is set.
type Bounds[T Number] struct {
	Lower     T
	Upper     T
	Exclusive bool
}

var (
	DefaultIntBounds   = Bounds[int]{Lower: 0, Upper: 32767}
	DefaultFloatBounds = Bounds[float64]{Lower: 0, Upper: 32767}
)

// Contains reports whether v lies within b. NaN is never contained.
func (b Bounds[T]) Contains(v T) bool {
	if b.Exclusive {
		return b.Lower < v && v < b.Upper
	}
	return b.Lower <= v && v <= b.Upper
}

// Check returns a RangeViolation Rejection when v is outside b.
func (b Bounds[T]) Check(v T) error {
	if b.Contains(v) {
		return nil
	}
	return reject(RangeViolation, fmt.Sprint(v), b.violation())
}

func (b Bounds[T]) String() string {
	kind := "inclusive"
	if b.Exclusive {
		kind = "exclusive"
	}
	return fmt.Sprintf("%v and %v %s", b.Lower, b.Upper, kind)
}

func (b Bounds[T]) violation() string {
	return "\tERROR - Value must be in between " + b.String()
}

// Integer asks until the line is an integer inside b. Surrounding
// whitespace is ignored. An empty message selects DefaultIntegerMessage.
func (p *Prompter) Integer(message string, b Bounds[int]) (int, error) {
	if message == "" {
		message = DefaultIntegerMessage
	}
	return retry(p, message, func(line string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			// Too large for int, so outside any int bound.
			if errors.Is(err, strconv.ErrRange) {
				return 0, reject(RangeViolation, line, b.violation())
			}
			return 0, reject(ParseFailure, line, integerParseMessage)
		}
		return n, b.Check(n)
	})
}

// Float asks until the line is a floating point number inside b.
// An empty message selects DefaultFloatMessage.
func (p *Prompter) Float(message string, b Bounds[float64]) (float64, error) {
	if message == "" {
		message = DefaultFloatMessage
	}
	return retry(p, message, func(line string) (float64, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, reject(RangeViolation, line, b.violation())
			}
			return 0, reject(ParseFailure, line, floatParseMessage)
		}
		return f, b.Check(f)
	})
}

// Integer calls Default().Integer.
func Integer(message string, b Bounds[int]) (int, error) {
	return Default().Integer(message, b)
}

// Float calls Default().Float.
func Float(message string, b Bounds[float64]) (float64, error) {
	return Default().Float(message, b)
}
