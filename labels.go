package vkdebug

import (
	"runtime"

	"github.com/gogpu/vkdebug/driver"
)

// Queue wraps a foreign queue handle for diagnostic label insertion.
// Labels open on a queue at the time an event is raised appear in the
// event's QueueLabels, outermost first.
type Queue struct {
	instance *Instance
	handle   driver.QueueHandle
}

// Queue wraps a foreign queue handle belonging to this instance.
func (in *Instance) Queue(handle driver.QueueHandle) *Queue {
	return &Queue{instance: in, handle: handle}
}

// BeginLabel opens a labeled region on the queue.
func (q *Queue) BeginLabel(l Label) {
	raw := encodeLabel(l)
	q.instance.procs.QueueBeginLabel(q.handle, &raw)
	runtime.KeepAlive(&raw)
}

// EndLabel closes the innermost open labeled region on the queue.
func (q *Queue) EndLabel() {
	q.instance.procs.QueueEndLabel(q.handle)
}

// InsertLabel inserts a single label into the queue's stream.
func (q *Queue) InsertLabel(l Label) {
	raw := encodeLabel(l)
	q.instance.procs.QueueInsertLabel(q.handle, &raw)
	runtime.KeepAlive(&raw)
}

// CommandBuffer wraps a foreign command-recording handle for diagnostic
// label insertion. Labels open in a recording at the time an event is
// raised appear in the event's CommandBufferLabels, outermost first.
type CommandBuffer struct {
	instance *Instance
	handle   driver.CommandBufferHandle
}

// CommandBuffer wraps a foreign command-recording handle belonging to this
// instance.
func (in *Instance) CommandBuffer(handle driver.CommandBufferHandle) *CommandBuffer {
	return &CommandBuffer{instance: in, handle: handle}
}

// BeginLabel opens a labeled region in the recording.
func (c *CommandBuffer) BeginLabel(l Label) {
	raw := encodeLabel(l)
	c.instance.procs.CmdBeginLabel(c.handle, &raw)
	runtime.KeepAlive(&raw)
}

// EndLabel closes the innermost open labeled region in the recording.
func (c *CommandBuffer) EndLabel() {
	c.instance.procs.CmdEndLabel(c.handle)
}

// InsertLabel inserts a single label into the recording.
func (c *CommandBuffer) InsertLabel(l Label) {
	raw := encodeLabel(l)
	c.instance.procs.CmdInsertLabel(c.handle, &raw)
	runtime.KeepAlive(&raw)
}

// SetObjectName attaches a diagnostic name to a foreign object. Events
// referring to the object afterwards carry the name in their Objects
// entries, which is usually the fastest way to tell which of many
// identical resources a validation message is about.
func (in *Instance) SetObjectName(objectType uint32, handle uint64, name string) error {
	raw := driver.RawObjectName{
		ObjectType:   objectType,
		ObjectHandle: handle,
		PObjectName:  driver.CString(name),
	}
	res := in.procs.SetObjectName(in.handle, &raw)
	runtime.KeepAlive(&raw)
	if res != driver.Success {
		return &DriverError{Op: "set object name", Result: res}
	}
	return nil
}

// encodeLabel builds the wire form of one label.
func encodeLabel(l Label) driver.RawLabel {
	return driver.RawLabel{
		PLabelName: driver.CString(l.Name),
		Color:      l.Color,
	}
}
