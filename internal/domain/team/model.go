package team

import "strings"

// Ref identifies a team the way the data provider names it. Provider
// payloads carry no id we can rely on across endpoints, so resolution
// against the standings table is name-based.
type Ref struct {
	Name      string
	ShortName string
	TLA       string
	CrestURL  string
}

// NormalizeName is the canonical form used for matching: surrounding
// whitespace trimmed, letters lower-cased.
func NormalizeName(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
