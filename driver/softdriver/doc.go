// Package softdriver is an in-process implementation of the debug-utils
// entry points.
//
// It keeps the full state a real layer would: the messengers registered on
// each instance with their masks, the label stacks of queues and command
// recordings, and the diagnostic names attached to objects. Events raised
// through Raise flow through each matching messenger's callback exactly the
// way a validation layer's events would, including the label and object
// data attached to the raw record.
//
// That makes the package two things at once: the fallback driver when no
// native layer is loaded, and the test double the bridge is verified
// against.
package softdriver
