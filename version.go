// Package inputhandler holds module-wide metadata for the input-handler
// prompt library and its CLI.
package inputhandler

// Version is the current release of input-handler.
const Version = "1.1.0"
