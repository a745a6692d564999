package softdriver

import (
	"runtime"

	"github.com/gogpu/vkdebug/driver"
)

// Object references a foreign object from a raised event. Its diagnostic
// name, if one was registered through SetObjectName, is attached to the
// event record automatically.
type Object struct {
	Type   uint32
	Handle uint64
}

// Event describes a synthetic diagnostic occurrence for Raise.
type Event struct {
	IDNumber int32
	IDName   string
	Message  string

	// Queue, when nonzero, attaches the queue's current label stream to
	// the event.
	Queue driver.QueueHandle

	// CommandBuffer, when nonzero, attaches the recording's current label
	// stream to the event.
	CommandBuffer driver.CommandBufferHandle

	Objects []Object
}

// Raise delivers ev through the organic path: every messenger of the
// instance whose severity and type masks both match receives it, in
// registration order, on the calling goroutine. Inserted (as opposed to
// begun) labels are consumed by the raise that carries them.
//
// Raise returns the number of messengers the event was delivered to.
func (l *Layer) Raise(instance driver.InstanceHandle, severity, types uint32, ev Event) int {
	l.mu.Lock()

	var targets []*registration
	if st, ok := l.instances[instance]; ok {
		for _, r := range st.messengers {
			if r.severity&severity != 0 && r.types&types != 0 {
				targets = append(targets, r)
			}
		}
	}

	queueLabels := l.collectLabelsLocked(l.queueStreams[ev.Queue], ev.Queue != 0)
	cmdLabels := l.collectLabelsLocked(l.cmdStreams[ev.CommandBuffer], ev.CommandBuffer != 0)

	objects := make([]driver.RawObjectName, 0, len(ev.Objects))
	if len(ev.Objects) > 0 {
		var names map[uint64]string
		if st, ok := l.instances[instance]; ok {
			names = st.objectNames
		}
		for _, obj := range ev.Objects {
			raw := driver.RawObjectName{
				ObjectType:   obj.Type,
				ObjectHandle: obj.Handle,
			}
			if name, ok := names[obj.Handle]; ok {
				raw.PObjectName = driver.CString(name)
			}
			objects = append(objects, raw)
		}
	}

	l.mu.Unlock()

	data := driver.CallbackData{
		Severity:       severity,
		Types:          types,
		IDNumber:       ev.IDNumber,
		PMessageIDName: driver.CString(ev.IDName),
		PMessage:       driver.CString(ev.Message),
	}
	if len(queueLabels) > 0 {
		data.PQueueLabels = &queueLabels[0]
		data.QueueLabelCount = uint32(len(queueLabels))
	}
	if len(cmdLabels) > 0 {
		data.PCmdBufLabels = &cmdLabels[0]
		data.CmdBufLabelCount = uint32(len(cmdLabels))
	}
	if len(objects) > 0 {
		data.PObjects = &objects[0]
		data.ObjectCount = uint32(len(objects))
	}

	for _, r := range targets {
		r.callback(severity, types, &data, r.userData)
	}
	runtime.KeepAlive(&data)
	return len(targets)
}

// collectLabelsLocked snapshots a stream's open regions followed by its
// pending inserted labels, consuming the latter. Caller holds l.mu.
func (l *Layer) collectLabelsLocked(s *labelStream, wanted bool) []driver.RawLabel {
	if !wanted || s == nil {
		return nil
	}
	raw := make([]driver.RawLabel, 0, len(s.open)+len(s.pending))
	for _, lab := range s.open {
		raw = append(raw, driver.RawLabel{PLabelName: driver.CString(lab.name), Color: lab.color})
	}
	for _, lab := range s.pending {
		raw = append(raw, driver.RawLabel{PLabelName: driver.CString(lab.name), Color: lab.color})
	}
	s.pending = nil
	return raw
}
