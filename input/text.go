package input

import "slices"

const (
	DefaultStringMessage = "\n\tEnter a string: "
	DefaultBannedMessage = "\tERROR - Input not allowed.\n"
)

// String asks until the line is not in banned and returns it untouched.
// Matching is exact: no trimming, no case folding. An empty errMessage
// selects DefaultBannedMessage and an empty message DefaultStringMessage.
func (p *Prompter) String(message string, banned []string, errMessage string) (string, error) {
	if message == "" {
		message = DefaultStringMessage
	}
	if errMessage == "" {
		errMessage = DefaultBannedMessage
	}
	return retry(p, message, func(line string) (string, error) {
		if slices.Contains(banned, line) {
			return "", reject(DisallowedValue, line, errMessage)
		}
		return line, nil
	})
}

// String calls Default().String.
func String(message string, banned []string, errMessage string) (string, error) {
	return Default().String(message, banned, errMessage)
}
