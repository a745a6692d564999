// Package driver defines the foreign ABI surface of the debug-utils channel:
// the raw record layouts delivered by a validation or runtime layer, the
// result and boolean conventions of that layer, and the table of entry
// points a loader must supply.
//
// The package deliberately contains no policy. It mirrors the wire layout
// consumed and produced by the bridge in package vkdebug, so that any
// implementation of the entry points — an in-process layer such as
// driver/softdriver, or a native loader calling into a real ICD — can be
// plugged in through the same Table.
//
// Implementations register themselves by name via Register, typically from
// an init function, and consumers pick one with Get or Default.
package driver
