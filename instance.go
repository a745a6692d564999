package vkdebug

import (
	"sync/atomic"

	"github.com/gogpu/vkdebug/driver"
)

// InstanceOptions mirrors the capability choices made when the foreign
// instance was created.
type InstanceOptions struct {
	// EXTDebugUtils must be true if the instance was created with the
	// debug-utils capability. Register refuses instances without it
	// before making any foreign call.
	EXTDebugUtils bool
}

// Instance is the owning resource the debug channel is bound to. It pairs
// an opaque foreign handle with the entry-point table of the layer that
// issued it.
//
// An Instance is shared between its creator and every Messenger registered
// on it; Close refuses to run while messengers are still alive, so the
// resource always outlives its registrations.
type Instance struct {
	handle driver.InstanceHandle
	procs  *driver.Table

	extDebugUtils bool

	// messengers counts live registrations. Close requires zero.
	messengers atomic.Int64
	closed     atomic.Bool
}

// NewInstance wraps a foreign instance handle and its entry-point table.
// The handle's actual creation and destruction belong to the caller;
// vkdebug only tracks the registrations bound to it.
func NewInstance(handle driver.InstanceHandle, procs *driver.Table, opts InstanceOptions) (*Instance, error) {
	if procs == nil {
		return nil, ErrNilDriver
	}
	return &Instance{
		handle:        handle,
		procs:         procs,
		extDebugUtils: opts.EXTDebugUtils,
	}, nil
}

// Handle returns the opaque foreign instance handle.
func (in *Instance) Handle() driver.InstanceHandle { return in.handle }

// DebugUtilsEnabled reports whether the instance was created with the
// debug-utils capability.
func (in *Instance) DebugUtilsEnabled() bool { return in.extDebugUtils }

// Close releases the Go-side wrapper. It fails with ErrMessengersAlive
// while registered messengers still reference the instance; close or
// release them first. Destroying the foreign instance itself remains the
// caller's job and must happen after Close succeeds.
func (in *Instance) Close() error {
	if in.messengers.Load() != 0 {
		return ErrMessengersAlive
	}
	in.closed.Store(true)
	return nil
}
