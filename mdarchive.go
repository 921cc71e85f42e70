// Package mdarchive converts located HTML page content into Markdown for
// archival. It walks an HTML-like tree with an ordered set of conversion
// rules, falls back to a simpler pass-based converter when the rule engine
// is unavailable, and prepends a title/author/date/link header.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, goldmark/, trafilatura/).
package mdarchive
