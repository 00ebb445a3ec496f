package input

import "time"

const (
	// DateLayout is MM/DD/YYYY with zero-padded month and day.
	DateLayout = "01/02/2006"

	DefaultDateMessage = "\n\tEnter a date in the format (MM/DD/YYYY): "

	dateMessage = "\tERROR - Invalid date format or value. Please use MM/DD/YYYY and enter a valid date.\n"
)

// ParseDate parses s as MM/DD/YYYY and checks it against the calendar, so
// 02/30/2024 and 13/01/2024 fail while 02/29/2024 passes. Failures are a
// ParseFailure Rejection.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Year() < 1 {
		return time.Time{}, reject(ParseFailure, s, dateMessage)
	}
	return t, nil
}

// DateString asks until the line is a valid MM/DD/YYYY date and returns the
// line exactly as typed. An empty message selects DefaultDateMessage.
func (p *Prompter) DateString(message string) (string, error) {
	if message == "" {
		message = DefaultDateMessage
	}
	return retry(p, message, func(line string) (string, error) {
		if _, err := ParseDate(line); err != nil {
			return "", err
		}
		return line, nil
	})
}

// DateParts asks like DateString and returns the parsed components.
func (p *Prompter) DateParts(message string) (month, day, year int, err error) {
	if message == "" {
		message = DefaultDateMessage
	}
	t, err := retry(p, message, ParseDate)
	if err != nil {
		return 0, 0, 0, err
	}
	return int(t.Month()), t.Day(), t.Year(), nil
}

// DateString calls Default().DateString.
func DateString(message string) (string, error) {
	return Default().DateString(message)
}

// DateParts calls Default().DateParts.
func DateParts(message string) (month, day, year int, err error) {
	return Default().DateParts(message)
}
