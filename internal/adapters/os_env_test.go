package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSEnvAdapter_Lookup(t *testing.T) {
	t.Setenv("RESOLVE_URI_TEST_VAR", "/some/dir")

	adapter := NewOSEnvAdapter()
	value, ok := adapter.Lookup("RESOLVE_URI_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "/some/dir", value)
}

func TestOSEnvAdapter_LookupUnset(t *testing.T) {
	adapter := NewOSEnvAdapter()
	value, ok := adapter.Lookup("RESOLVE_URI_TEST_VAR_UNSET")
	assert.False(t, ok)
	assert.Equal(t, "", value)
}

// Set and empty are distinguishable so the collector can treat both as
// contributing zero roots without conflating them in diagnostics.
func TestOSEnvAdapter_LookupEmpty(t *testing.T) {
	t.Setenv("RESOLVE_URI_TEST_VAR", "")

	adapter := NewOSEnvAdapter()
	value, ok := adapter.Lookup("RESOLVE_URI_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "", value)
}
