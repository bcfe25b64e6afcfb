// Package token tokenizes PVL label text and implements PVL string
// quoting.
//
// The quoting side is usable on its own: NeedsQuote decides whether a
// text value can be written bare under PVL grammar, and Quote produces
// the quoted form. PVL has no escape sequences inside quoted strings,
// so a text value containing both quote characters cannot be written
// at all; Quote reports this with ErrCannotQuote.
package token
