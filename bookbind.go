// Package bookbind converts web articles into an AsciiDoc book. It fetches
// configured article URLs, extracts the article body using site-specific
// strategies, rewrites inline elements into AsciiDoc substitutions, renders
// block elements through a tag-dispatch table, and assembles one chapter
// file per article plus a master index document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, sqlite/).
package bookbind
