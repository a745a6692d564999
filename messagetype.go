package vkdebug

import "strings"

// MessageType is a set of diagnostic categories. The zero value is the
// empty set; the same set algebra as MessageSeverity applies.
type MessageType uint32

// Individual categories.
const (
	// TypeGeneral is an event unrelated to validation or performance.
	TypeGeneral MessageType = 0x0001

	// TypeValidation indicates a violation found by a validation layer.
	TypeValidation MessageType = 0x0002

	// TypePerformance indicates potentially non-optimal API use.
	TypePerformance MessageType = 0x0004
)

// Set extremes.
const (
	TypeNone MessageType = 0
	TypeAll              = TypeGeneral | TypeValidation | TypePerformance
)

// Union returns the categories present in s, o, or both.
func (s MessageType) Union(o MessageType) MessageType { return s | o }

// Intersect returns the categories present in both s and o.
func (s MessageType) Intersect(o MessageType) MessageType { return s & o }

// SymmetricDifference returns the categories present in exactly one of
// s and o.
func (s MessageType) SymmetricDifference(o MessageType) MessageType { return s ^ o }

// UnionWith replaces s with s.Union(o).
func (s *MessageType) UnionWith(o MessageType) { *s = *s | o }

// IntersectWith replaces s with s.Intersect(o).
func (s *MessageType) IntersectWith(o MessageType) { *s = *s & o }

// SymmetricDifferenceWith replaces s with s.SymmetricDifference(o).
func (s *MessageType) SymmetricDifferenceWith(o MessageType) { *s = *s ^ o }

// Contains reports whether every category in o is also in s.
func (s MessageType) Contains(o MessageType) bool { return s&o == o }

// Empty reports whether s contains no categories.
func (s MessageType) Empty() bool { return s == TypeNone }

// String returns the contained categories joined by "|", or "NONE".
func (s MessageType) String() string {
	if s.Empty() {
		return "NONE"
	}
	var parts []string
	if s.Contains(TypeGeneral) {
		parts = append(parts, "GENERAL")
	}
	if s.Contains(TypeValidation) {
		parts = append(parts, "VALIDATION")
	}
	if s.Contains(TypePerformance) {
		parts = append(parts, "PERFORMANCE")
	}
	return strings.Join(parts, "|")
}
