package vkdebug

import (
	"unicode/utf8"
	"unsafe"

	"fortio.org/safecast"

	"github.com/gogpu/vkdebug/driver"
)

// newMessage decodes a foreign event record into an owned Message.
//
// The record is trusted only as far as its documented contract: the two
// always-present text fields must be valid UTF-8 and the array pointers
// must cover exactly the declared counts. A record violating that contract
// is a driver bug; decoding panics with a *DriverError, which the
// trampoline contains.
func newMessage(data *driver.CallbackData) Message {
	return Message{
		Severity:            MessageSeverity(data.Severity),
		Types:               MessageType(data.Types),
		IDNumber:            data.IDNumber,
		IDName:              mustText("message id name", data.PMessageIDName),
		Description:         mustText("message text", data.PMessage),
		QueueLabels:         decodeLabels(data.PQueueLabels, data.QueueLabelCount),
		CommandBufferLabels: decodeLabels(data.PCmdBufLabels, data.CmdBufLabelCount),
		Objects:             decodeObjects(data.PObjects, data.ObjectCount),
	}
}

// mustText decodes an always-present NUL-terminated UTF-8 field.
func mustText(field string, p *byte) string {
	if p == nil {
		panic(&DriverError{Op: "decode event record", Detail: field + " is nil"})
	}
	s := driver.GoString(p)
	if !utf8.ValidString(s) {
		panic(&DriverError{Op: "decode event record", Detail: field + " is not valid UTF-8"})
	}
	return s
}

// optionalText decodes a nullable name field. A nil pointer is an empty
// name, not a violation.
func optionalText(field string, p *byte) string {
	if p == nil {
		return ""
	}
	return mustText(field, p)
}

// arrayLen converts a declared array count, checking both the count/pointer
// pairing and the conversion to int.
func arrayLen(what string, p unsafe.Pointer, count uint32) int {
	if count == 0 {
		return 0
	}
	if p == nil {
		panic(&DriverError{Op: "decode event record", Detail: what + " pointer is nil with nonzero count"})
	}
	n, err := safecast.Conv[int](count)
	if err != nil {
		panic(&DriverError{Op: "decode event record", Detail: what + " count overflows int"})
	}
	return n
}

func decodeLabels(p *driver.RawLabel, count uint32) []Label {
	n := arrayLen("label array", unsafe.Pointer(p), count)
	if n == 0 {
		return nil
	}
	labels := make([]Label, n)
	for i, raw := range unsafe.Slice(p, n) {
		labels[i] = Label{
			Name:  optionalText("label name", raw.PLabelName),
			Color: raw.Color,
		}
	}
	return labels
}

func decodeObjects(p *driver.RawObjectName, count uint32) []ObjectNameInfo {
	n := arrayLen("object array", unsafe.Pointer(p), count)
	if n == 0 {
		return nil
	}
	objects := make([]ObjectNameInfo, n)
	for i, raw := range unsafe.Slice(p, n) {
		objects[i] = ObjectNameInfo{
			Type:   raw.ObjectType,
			Handle: raw.ObjectHandle,
			Name:   optionalText("object name", raw.PObjectName),
		}
	}
	return objects
}

// encodeMessage builds a foreign event record from a Message for manual
// submission. The returned record's pointers keep their backing storage
// reachable; callers must keep the record itself alive across the foreign
// call (runtime.KeepAlive).
func encodeMessage(msg *Message) (driver.CallbackData, error) {
	data := driver.CallbackData{
		Severity:       uint32(msg.Severity),
		Types:          uint32(msg.Types),
		IDNumber:       msg.IDNumber,
		PMessageIDName: driver.CString(msg.IDName),
		PMessage:       driver.CString(msg.Description),
	}

	if len(msg.QueueLabels) > 0 {
		raw, count, err := encodeLabels(msg.QueueLabels)
		if err != nil {
			return driver.CallbackData{}, err
		}
		data.PQueueLabels, data.QueueLabelCount = raw, count
	}
	if len(msg.CommandBufferLabels) > 0 {
		raw, count, err := encodeLabels(msg.CommandBufferLabels)
		if err != nil {
			return driver.CallbackData{}, err
		}
		data.PCmdBufLabels, data.CmdBufLabelCount = raw, count
	}
	if len(msg.Objects) > 0 {
		raw := make([]driver.RawObjectName, len(msg.Objects))
		for i, obj := range msg.Objects {
			raw[i] = driver.RawObjectName{
				ObjectType:   obj.Type,
				ObjectHandle: obj.Handle,
				PObjectName:  driver.CString(obj.Name),
			}
		}
		count, err := safecast.Conv[uint32](len(raw))
		if err != nil {
			return driver.CallbackData{}, err
		}
		data.PObjects, data.ObjectCount = &raw[0], count
	}

	return data, nil
}

func encodeLabels(labels []Label) (*driver.RawLabel, uint32, error) {
	raw := make([]driver.RawLabel, len(labels))
	for i, l := range labels {
		raw[i] = driver.RawLabel{
			PLabelName: driver.CString(l.Name),
			Color:      l.Color,
		}
	}
	count, err := safecast.Conv[uint32](len(raw))
	if err != nil {
		return nil, 0, err
	}
	return &raw[0], count, nil
}
