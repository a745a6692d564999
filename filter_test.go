package vkdebug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterPresets(t *testing.T) {
	all := FilterAll()
	assert.Equal(t, SeverityAll, all.Severity)
	assert.Equal(t, TypeAll, all.Types)

	none := FilterNone()
	assert.True(t, none.Severity.Empty())
	assert.True(t, none.Types.Empty())
}

// The errors-and-warnings preset is exact: warnings and errors of the
// validation and general categories, nothing more, independent of the full
// sets.
func TestFilterErrorsAndWarningsExact(t *testing.T) {
	f := FilterErrorsAndWarnings()

	assert.Equal(t, SeverityWarning|SeverityError, f.Severity)
	assert.Equal(t, TypeValidation|TypeGeneral, f.Types)

	assert.False(t, f.Severity.Contains(SeverityVerbose))
	assert.False(t, f.Severity.Contains(SeverityInfo))
	assert.False(t, f.Types.Contains(TypePerformance))
	assert.NotEqual(t, SeverityAll, f.Severity)
	assert.NotEqual(t, TypeAll, f.Types)
}
