// Package identity canonicalizes Fantrax player identifiers. The SFBB ID
// map stores them asterisk-wrapped (*05u2v*) while roster payloads carry
// them bare (05u2v); both encodings name the same player.
package identity

import "strings"

const delimiter = "*"

// Canonical strips any wrapping delimiters. Empty input (or input that is
// nothing but delimiters) has no identity and maps to the empty string.
func Canonical(id string) string {
	return strings.Trim(strings.TrimSpace(id), delimiter)
}

// Variants returns every surface encoding equivalent to id, for membership
// tests against collections of unknown origin. An identity-less input has
// no variants.
func Variants(id string) []string {
	c := Canonical(id)
	if c == "" {
		return nil
	}
	return []string{c, delimiter + c + delimiter}
}
