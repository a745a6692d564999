package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeFactory() *Table {
	return &Table{}
}

func TestRegistryRegisterGet(t *testing.T) {
	const name = "registry-test"
	Register(name, fakeFactory)
	t.Cleanup(func() { Unregister(name) })

	assert.True(t, IsRegistered(name))
	assert.Contains(t, Available(), name)
	assert.NotNil(t, Get(name))
	assert.Nil(t, Get("no-such-driver"))
}

func TestRegistryUnregister(t *testing.T) {
	const name = "registry-unregister-test"
	Register(name, fakeFactory)
	Unregister(name)
	assert.False(t, IsRegistered(name))
	assert.Nil(t, Get(name))
}

func TestRegistryDefaultPriority(t *testing.T) {
	// A "native" registration must win over anything else.
	native := &Table{}
	Register(DriverNative, func() *Table { return native })
	t.Cleanup(func() { Unregister(DriverNative) })

	got := Default()
	require.NotNil(t, got)
	assert.Same(t, native, got)
}
