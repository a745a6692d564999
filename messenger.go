package vkdebug

import (
	"runtime"
	"runtime/cgo"
	"sync"
	"sync/atomic"

	"github.com/gogpu/vkdebug/driver"
)

// Messenger is a live registration of a message callback with the foreign
// layer. Events matching the filter given at registration are delivered to
// the callback until Close.
//
// Keep the Messenger reachable for as long as delivery is wanted: it is
// the sole owner of the registration token and of the callback capsule the
// foreign layer points at. A Messenger that becomes garbage without Close
// is deregistered by a finalizer and a warning is logged, so a silently
// dropped handle is observable rather than a quiet loss of delivery.
type Messenger struct {
	instance *Instance
	token    driver.MessengerHandle
	caps     cgo.Handle

	closeOnce sync.Once
	closed    atomic.Bool
}

// Register registers cb with the foreign layer behind instance, delivering
// the events selected by filter.
//
// It fails with ErrMissingExtension, before any foreign call, if the
// instance lacks the debug-utils capability. An unexpected result from the
// foreign layer is returned as a *DriverError wrapping ErrDriverContract.
//
// Panics raised by cb during dispatch are contained and never returned
// anywhere; see MessageCallback.
func Register(instance *Instance, filter MessageFilter, cb MessageCallback) (*Messenger, error) {
	if instance == nil {
		return nil, ErrNilInstance
	}
	if cb == nil {
		return nil, ErrNilCallback
	}
	if !instance.DebugUtilsEnabled() {
		return nil, ErrMissingExtension
	}

	caps := cgo.NewHandle(&capsule{cb: cb})
	info := driver.MessengerCreateInfo{
		Severity: uint32(filter.Severity),
		Types:    uint32(filter.Types),
		Callback: trampoline,
		UserData: uintptr(caps),
	}

	token, res := instance.procs.CreateMessenger(instance.handle, &info)
	if res != driver.Success {
		caps.Delete()
		return nil, &DriverError{Op: "create messenger", Result: res}
	}

	m := &Messenger{
		instance: instance,
		token:    token,
		caps:     caps,
	}
	instance.messengers.Add(1)
	runtime.SetFinalizer(m, (*Messenger).finalize)

	Logger().Debug("vkdebug: messenger registered",
		"severity", filter.Severity.String(), "types", filter.Types.String())
	return m, nil
}

// RegisterErrorsAndWarnings registers cb with the FilterErrorsAndWarnings
// preset.
func RegisterErrorsAndWarnings(instance *Instance, cb MessageCallback) (*Messenger, error) {
	return Register(instance, FilterErrorsAndWarnings(), cb)
}

// Close deregisters the messenger. Exactly one deregistration call reaches
// the foreign layer no matter how often Close runs; after the first call
// the messenger is terminally closed and later calls are no-ops.
//
// The capsule is released only after the foreign layer has confirmed the
// deregistration, so no in-flight dispatch can observe a freed capsule. An
// unexpected result from the foreign layer panics with a *DriverError:
// there is no way to recover a half-deregistered callback.
func (m *Messenger) Close() {
	m.closeOnce.Do(func() {
		runtime.SetFinalizer(m, nil)

		res := m.instance.procs.DestroyMessenger(m.instance.handle, m.token)
		m.caps.Delete()
		m.closed.Store(true)
		m.instance.messengers.Add(-1)
		if res != driver.Success {
			panic(&DriverError{Op: "destroy messenger", Result: res})
		}
	})
}

// finalize runs when a registered messenger is collected without Close.
// Delivery silently stopping at an arbitrary GC point is almost never what
// the application meant, so make it visible before cleaning up.
func (m *Messenger) finalize() {
	Logger().Warn("vkdebug: messenger became unreachable without Close; deregistering")
	m.Close()
}
