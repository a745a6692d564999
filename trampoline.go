package vkdebug

import (
	"runtime/cgo"

	"github.com/gogpu/vkdebug/driver"
)

// MessageCallback is invoked for every diagnostic event delivered to a
// messenger. It may be called concurrently from any thread the foreign
// layer chooses; callbacks that mutate shared state must synchronize
// internally. A panic inside the callback is contained at the trampoline
// and never reaches the foreign layer.
type MessageCallback func(msg *Message)

// capsule is the heap value a registration's opaque context pointer leads
// to. It is owned exclusively by the Messenger; the trampoline only ever
// borrows it.
type capsule struct {
	cb MessageCallback
}

// trampoline is the fixed-signature entry point handed to the foreign
// layer at registration. Nothing may unwind out of it: the foreign caller
// is C-shaped and a panic crossing this frame would be undefined behavior.
// It always reports the "do not abort" status, whatever happened inside.
func trampoline(severity, types uint32, data *driver.CallbackData, userData uintptr) (status driver.Bool32) {
	status = driver.False
	defer func() {
		if r := recover(); r != nil {
			// A malformed record or a stale capsule; contained here.
			Logger().Debug("vkdebug: dispatch failure contained at trampoline", "panic", r)
		}
	}()

	caps, ok := recoverCapsule(userData)
	if !ok || caps.cb == nil {
		return
	}

	msg := newMessage(data)
	invoke(caps.cb, &msg)
	return
}

// invoke is the barrier around user logic. A panic in the callback is
// swallowed so the foreign call stack never observes it; the outcome is by
// design not reported back to the registrar. With logging enabled it is
// visible at debug level.
func invoke(cb MessageCallback, msg *Message) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Debug("vkdebug: message callback panicked", "panic", r, "id_name", msg.IDName)
		}
	}()
	cb(msg)
}

// recoverCapsule resolves the opaque context pointer back to the capsule
// without taking ownership. A zero or stale handle (the messenger was
// deregistered and its capsule released) yields ok=false rather than a
// crash, so a late or replayed dispatch dies quietly here.
func recoverCapsule(userData uintptr) (c *capsule, ok bool) {
	defer func() {
		if recover() != nil {
			c, ok = nil, false
		}
	}()
	if userData == 0 {
		return nil, false
	}
	c, ok = cgo.Handle(userData).Value().(*capsule)
	return c, ok
}
