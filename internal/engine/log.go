package engine

import (
	"io"
	"log"
)

// newLogger builds the engine's logger, a plain stdlib *log.Logger writing
// to w. There's no structured-logging dependency anywhere in the pack this
// module is grounded on, so this stays stdlib by design rather than by
// default — see DESIGN.md.
func newLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.New(w, "naitou: ", log.LstdFlags)
}
