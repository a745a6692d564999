package softdriver

import (
	"sync"

	"github.com/gogpu/vkdebug/driver"
)

func init() {
	driver.Register(driver.DriverSoft, func() *driver.Table {
		return New().Table()
	})
}

// Layer is an in-process debug-utils layer. The zero value is not usable;
// create one with New.
//
// All entry points are safe for concurrent use. Callbacks run on the
// goroutine that raised or submitted the event, outside the layer's lock,
// so a callback may call back into the layer.
type Layer struct {
	mu        sync.Mutex
	nextToken driver.MessengerHandle
	instances map[driver.InstanceHandle]*instanceState

	// Queue and command-buffer handles are unique across instances, so
	// their label streams live on the layer.
	queueStreams map[driver.QueueHandle]*labelStream
	cmdStreams   map[driver.CommandBufferHandle]*labelStream
}

type instanceState struct {
	// messengers in registration order; delivery follows this order.
	messengers []*registration

	// objectNames maps object handle to its diagnostic name.
	objectNames map[uint64]string
}

type registration struct {
	token    driver.MessengerHandle
	severity uint32
	types    uint32
	callback driver.Callback
	userData uintptr
}

// labelStream tracks the diagnostic labels of one queue or recording.
type labelStream struct {
	// open holds begin/end regions, outermost first.
	open []label

	// pending holds inserted labels; they ride along on the next raised
	// event and are then consumed.
	pending []label
}

type label struct {
	name  string
	color [4]float32
}

// New creates an empty layer.
func New() *Layer {
	return &Layer{
		instances:    make(map[driver.InstanceHandle]*instanceState),
		queueStreams: make(map[driver.QueueHandle]*labelStream),
		cmdStreams:   make(map[driver.CommandBufferHandle]*labelStream),
	}
}

// Table returns the layer's entry points.
func (l *Layer) Table() *driver.Table {
	return &driver.Table{
		CreateMessenger:  l.createMessenger,
		DestroyMessenger: l.destroyMessenger,
		SubmitMessage:    l.submitMessage,
		QueueBeginLabel:  l.queueBeginLabel,
		QueueEndLabel:    l.queueEndLabel,
		QueueInsertLabel: l.queueInsertLabel,
		CmdBeginLabel:    l.cmdBeginLabel,
		CmdEndLabel:      l.cmdEndLabel,
		CmdInsertLabel:   l.cmdInsertLabel,
		SetObjectName:    l.setObjectName,
	}
}

func (l *Layer) state(instance driver.InstanceHandle) *instanceState {
	st, ok := l.instances[instance]
	if !ok {
		st = &instanceState{
			objectNames: make(map[uint64]string),
		}
		l.instances[instance] = st
	}
	return st
}

func (l *Layer) createMessenger(instance driver.InstanceHandle, info *driver.MessengerCreateInfo) (driver.MessengerHandle, driver.Result) {
	if info == nil || info.Callback == nil {
		return 0, driver.ErrUnknown
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextToken++
	token := l.nextToken
	st := l.state(instance)
	st.messengers = append(st.messengers, &registration{
		token:    token,
		severity: info.Severity,
		types:    info.Types,
		callback: info.Callback,
		userData: info.UserData,
	})
	return token, driver.Success
}

func (l *Layer) destroyMessenger(instance driver.InstanceHandle, messenger driver.MessengerHandle) driver.Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	st, ok := l.instances[instance]
	if !ok {
		return driver.ErrUnknown
	}
	for i, r := range st.messengers {
		if r.token == messenger {
			st.messengers = append(st.messengers[:i], st.messengers[i+1:]...)
			return driver.Success
		}
	}
	// Unknown or already destroyed token.
	return driver.ErrUnknown
}

// submitMessage is the manual-injection path. It delivers to every
// messenger of the instance without evaluating masks; filtering applies
// only to organically raised events.
func (l *Layer) submitMessage(instance driver.InstanceHandle, severity, types uint32, data *driver.CallbackData) driver.Result {
	l.mu.Lock()
	st, ok := l.instances[instance]
	var targets []*registration
	if ok {
		targets = append(targets, st.messengers...)
	}
	l.mu.Unlock()

	for _, r := range targets {
		r.callback(severity, types, data, r.userData)
	}
	return driver.Success
}

func (l *Layer) queueBeginLabel(queue driver.QueueHandle, raw *driver.RawLabel) {
	l.withQueueStream(queue, func(s *labelStream) {
		s.open = append(s.open, decodeLabel(raw))
	})
}

func (l *Layer) queueEndLabel(queue driver.QueueHandle) {
	l.withQueueStream(queue, func(s *labelStream) {
		if n := len(s.open); n > 0 {
			s.open = s.open[:n-1]
		}
	})
}

func (l *Layer) queueInsertLabel(queue driver.QueueHandle, raw *driver.RawLabel) {
	l.withQueueStream(queue, func(s *labelStream) {
		s.pending = append(s.pending, decodeLabel(raw))
	})
}

func (l *Layer) cmdBeginLabel(cb driver.CommandBufferHandle, raw *driver.RawLabel) {
	l.withCmdStream(cb, func(s *labelStream) {
		s.open = append(s.open, decodeLabel(raw))
	})
}

func (l *Layer) cmdEndLabel(cb driver.CommandBufferHandle) {
	l.withCmdStream(cb, func(s *labelStream) {
		if n := len(s.open); n > 0 {
			s.open = s.open[:n-1]
		}
	})
}

func (l *Layer) cmdInsertLabel(cb driver.CommandBufferHandle, raw *driver.RawLabel) {
	l.withCmdStream(cb, func(s *labelStream) {
		s.pending = append(s.pending, decodeLabel(raw))
	})
}

func (l *Layer) withQueueStream(queue driver.QueueHandle, f func(*labelStream)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.queueStreams[queue]
	if !ok {
		s = &labelStream{}
		l.queueStreams[queue] = s
	}
	f(s)
}

func (l *Layer) withCmdStream(cb driver.CommandBufferHandle, f func(*labelStream)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.cmdStreams[cb]
	if !ok {
		s = &labelStream{}
		l.cmdStreams[cb] = s
	}
	f(s)
}

func (l *Layer) setObjectName(instance driver.InstanceHandle, info *driver.RawObjectName) driver.Result {
	if info == nil {
		return driver.ErrUnknown
	}
	name := driver.GoString(info.PObjectName)

	l.mu.Lock()
	defer l.mu.Unlock()
	st := l.state(instance)
	if name == "" {
		delete(st.objectNames, info.ObjectHandle)
	} else {
		st.objectNames[info.ObjectHandle] = name
	}
	return driver.Success
}

func decodeLabel(raw *driver.RawLabel) label {
	if raw == nil {
		return label{}
	}
	return label{name: driver.GoString(raw.PLabelName), color: raw.Color}
}
