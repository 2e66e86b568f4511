package bookbind

import "io"

// Renderer walks the transformed content and emits markup text, dispatching
// on element tag names. Tags without a handler are reported to a diagnostic
// logger and skipped; they never abort rendering.
type Renderer interface {
	Render(w io.Writer, contentHTML string) error
}
