package vkdebug

// MessageFilter decides which events the foreign layer forwards to a
// messenger. It is consumed once, at registration; the bridge itself never
// re-checks it.
type MessageFilter struct {
	// Severity is the set of severities to forward.
	Severity MessageSeverity

	// Types is the set of categories to forward.
	Types MessageType
}

// FilterAll forwards every event.
func FilterAll() MessageFilter {
	return MessageFilter{Severity: SeverityAll, Types: TypeAll}
}

// FilterNone forwards nothing.
func FilterNone() MessageFilter {
	return MessageFilter{Severity: SeverityNone, Types: TypeNone}
}

// FilterErrorsAndWarnings forwards validation and general errors and
// warnings. This is the preset most applications want during development.
func FilterErrorsAndWarnings() MessageFilter {
	return MessageFilter{
		Severity: SeverityWarning | SeverityError,
		Types:    TypeValidation | TypeGeneral,
	}
}
