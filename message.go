package vkdebug

// Label is a named, colored marker inserted into a queue or command
// recording stream for diagnostic grouping.
type Label struct {
	// Name is the label text. May be empty.
	Name string

	// Color is an RGBA hint for tools that visualize the stream.
	Color [4]float32
}

// ObjectNameInfo identifies a foreign object referenced by a diagnostic
// event.
type ObjectNameInfo struct {
	// Type is the foreign object-type tag.
	Type uint32

	// Handle is the foreign object handle.
	Handle uint64

	// Name is the diagnostic name attached to the object, or "" if none
	// was set.
	Name string
}

// Message is one diagnostic event as delivered to a message callback.
//
// All fields are owned Go values decoded from the foreign record; the
// callback may read them freely and may retain them, though a retained
// Message describes an event that is already in the past.
type Message struct {
	// Severity of the event.
	Severity MessageSeverity

	// Types is the set of categories the event belongs to.
	Types MessageType

	// IDNumber is the layer-defined numeric id of the message.
	IDNumber int32

	// IDName is the layer-defined string id of the message.
	IDName string

	// Description is the human-readable message text.
	Description string

	// QueueLabels are the labels active on the queue the event relates
	// to, outermost first.
	QueueLabels []Label

	// CommandBufferLabels are the labels active in the command recording
	// the event relates to, outermost first.
	CommandBufferLabels []Label

	// Objects are the foreign objects the event refers to.
	Objects []ObjectNameInfo
}
