package driver

import "strconv"

// Bool32 is the foreign layer's 32-bit boolean.
type Bool32 uint32

// Foreign boolean values.
const (
	False Bool32 = 0
	True  Bool32 = 1
)

// Result is a status code returned by the foreign entry points.
// Zero means success; negative values are failures.
type Result int32

// Result values used by this channel.
const (
	Success                Result = 0
	ErrOutOfHostMemory     Result = -1
	ErrOutOfDeviceMemory   Result = -2
	ErrExtensionNotPresent Result = -7
	ErrUnknown             Result = -13
)

// String returns the conventional name of the result code.
func (r Result) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case ErrOutOfHostMemory:
		return "ERROR_OUT_OF_HOST_MEMORY"
	case ErrOutOfDeviceMemory:
		return "ERROR_OUT_OF_DEVICE_MEMORY"
	case ErrExtensionNotPresent:
		return "ERROR_EXTENSION_NOT_PRESENT"
	case ErrUnknown:
		return "ERROR_UNKNOWN"
	}
	return "RESULT(" + strconv.Itoa(int(r)) + ")"
}

// Opaque foreign handles. The bridge never dereferences these; they identify
// resources owned by whatever created the Table.
type (
	// InstanceHandle identifies the owning instance.
	InstanceHandle uint64

	// MessengerHandle is the registration token issued by CreateMessenger.
	MessengerHandle uint64

	// QueueHandle identifies a device queue for label insertion.
	QueueHandle uint64

	// CommandBufferHandle identifies a command recording for label insertion.
	CommandBufferHandle uint64
)

// RawLabel is the wire layout of one diagnostic label.
// PLabelName points at a NUL-terminated UTF-8 string and may be nil.
type RawLabel struct {
	PLabelName *byte
	Color      [4]float32
}

// RawObjectName is the wire layout of one object reference.
// PObjectName points at a NUL-terminated UTF-8 string and may be nil.
type RawObjectName struct {
	ObjectType   uint32
	ObjectHandle uint64
	PObjectName  *byte
}

// CallbackData is the wire layout of one diagnostic event record.
//
// PMessageIDName and PMessage are documented as always valid NUL-terminated
// UTF-8 for a conforming layer. The three arrays hold exactly the declared
// counts; the record and everything it points at are only valid for the
// duration of the dispatch call that carries them.
type CallbackData struct {
	Severity uint32
	Types    uint32
	IDNumber int32

	PMessageIDName *byte
	PMessage       *byte

	QueueLabelCount uint32
	PQueueLabels    *RawLabel

	CmdBufLabelCount uint32
	PCmdBufLabels    *RawLabel

	ObjectCount uint32
	PObjects    *RawObjectName
}

// Callback is the fixed dispatch signature the foreign layer invokes.
// It may be called concurrently from any thread the layer chooses.
// Implementations must return False so the triggering operation is never
// aborted.
type Callback func(severity, types uint32, data *CallbackData, userData uintptr) Bool32

// MessengerCreateInfo is the registration payload passed to CreateMessenger.
type MessengerCreateInfo struct {
	// Severity and Types are the masks of events the layer forwards.
	Severity uint32
	Types    uint32

	// Callback is invoked for every event passing the masks.
	Callback Callback

	// UserData is handed back verbatim on every invocation.
	UserData uintptr
}

// Table holds the debug-utils entry points of one foreign layer.
// All function fields must be non-nil.
type Table struct {
	// CreateMessenger registers a callback and returns its token.
	CreateMessenger func(instance InstanceHandle, info *MessengerCreateInfo) (MessengerHandle, Result)

	// DestroyMessenger revokes a token. After it returns, the layer makes
	// no further calls through the token's callback.
	DestroyMessenger func(instance InstanceHandle, messenger MessengerHandle) Result

	// SubmitMessage injects a caller-built event record into the layer.
	SubmitMessage func(instance InstanceHandle, severity, types uint32, data *CallbackData) Result

	// Queue label stream.
	QueueBeginLabel  func(queue QueueHandle, label *RawLabel)
	QueueEndLabel    func(queue QueueHandle)
	QueueInsertLabel func(queue QueueHandle, label *RawLabel)

	// Command-recording label stream.
	CmdBeginLabel  func(cb CommandBufferHandle, label *RawLabel)
	CmdEndLabel    func(cb CommandBufferHandle)
	CmdInsertLabel func(cb CommandBufferHandle, label *RawLabel)

	// SetObjectName attaches a diagnostic name to a foreign object.
	SetObjectName func(instance InstanceHandle, info *RawObjectName) Result
}
