package vkdebug

import "strings"

// MessageSeverity is a set of diagnostic severities. The zero value is the
// empty set. Values combine with the set operations below; the underlying
// bit pattern never appears in the public contract.
type MessageSeverity uint32

// Individual severities.
const (
	// SeverityVerbose is diagnostic chatter from the layer itself.
	SeverityVerbose MessageSeverity = 0x0001

	// SeverityInfo is informational messages such as resource details.
	SeverityInfo MessageSeverity = 0x0010

	// SeverityWarning indicates possibly incorrect or dangerous API use.
	SeverityWarning MessageSeverity = 0x0100

	// SeverityError indicates API use that violates the specification.
	SeverityError MessageSeverity = 0x1000
)

// Set extremes. SeverityNone is the identity for Union and the absorbing
// element for Intersect; SeverityAll is the reverse.
const (
	SeverityNone MessageSeverity = 0
	SeverityAll                  = SeverityVerbose | SeverityInfo | SeverityWarning | SeverityError
)

// Union returns the severities present in s, o, or both.
func (s MessageSeverity) Union(o MessageSeverity) MessageSeverity { return s | o }

// Intersect returns the severities present in both s and o.
func (s MessageSeverity) Intersect(o MessageSeverity) MessageSeverity { return s & o }

// SymmetricDifference returns the severities present in exactly one of
// s and o.
func (s MessageSeverity) SymmetricDifference(o MessageSeverity) MessageSeverity { return s ^ o }

// UnionWith replaces s with s.Union(o).
func (s *MessageSeverity) UnionWith(o MessageSeverity) { *s = *s | o }

// IntersectWith replaces s with s.Intersect(o).
func (s *MessageSeverity) IntersectWith(o MessageSeverity) { *s = *s & o }

// SymmetricDifferenceWith replaces s with s.SymmetricDifference(o).
func (s *MessageSeverity) SymmetricDifferenceWith(o MessageSeverity) { *s = *s ^ o }

// Contains reports whether every severity in o is also in s.
func (s MessageSeverity) Contains(o MessageSeverity) bool { return s&o == o }

// Empty reports whether s contains no severities.
func (s MessageSeverity) Empty() bool { return s == SeverityNone }

// String returns the contained severities joined by "|", or "NONE".
func (s MessageSeverity) String() string {
	if s.Empty() {
		return "NONE"
	}
	var parts []string
	if s.Contains(SeverityVerbose) {
		parts = append(parts, "VERBOSE")
	}
	if s.Contains(SeverityInfo) {
		parts = append(parts, "INFO")
	}
	if s.Contains(SeverityWarning) {
		parts = append(parts, "WARNING")
	}
	if s.Contains(SeverityError) {
		parts = append(parts, "ERROR")
	}
	return strings.Join(parts, "|")
}
