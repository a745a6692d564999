package vkdebug

import (
	"runtime"

	"github.com/gogpu/vkdebug/driver"
)

// Submit injects msg into the foreign layer as if a diagnostic event had
// been raised. The injected event flows through the layer's normal
// delivery path — trampoline, decoding, user callback — which makes Submit
// the way to validate a messenger's wiring end to end without provoking a
// genuine validation condition.
//
// Injection bypasses filter evaluation: the event reaches registered
// callbacks regardless of the masks they were registered with.
func (m *Messenger) Submit(msg *Message) error {
	if msg == nil {
		return ErrNilMessage
	}
	if m.closed.Load() {
		return ErrClosed
	}
	data, err := encodeMessage(msg)
	if err != nil {
		return err
	}

	res := m.instance.procs.SubmitMessage(m.instance.handle, data.Severity, data.Types, &data)
	runtime.KeepAlive(&data)
	if res != driver.Success {
		return &DriverError{Op: "submit message", Result: res}
	}
	return nil
}
