// Package vkdebug bridges the Vulkan EXT_debug_utils diagnostic channel
// into a safe, typed Go callback interface.
//
// # Overview
//
// Validation and runtime layers report incorrect API usage and performance
// problems by invoking a registered callback with a raw, pointer-based event
// record. vkdebug decodes that record into an owned [Message], invokes your
// callback behind a barrier so a panic can never unwind into the foreign
// call stack, and always answers the layer with the "do not abort" status.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/vkdebug"
//	    "github.com/gogpu/vkdebug/driver/softdriver"
//	)
//
//	layer := softdriver.New()
//	instance, _ := vkdebug.NewInstance(1, layer.Table(), vkdebug.InstanceOptions{
//	    EXTDebugUtils: true,
//	})
//
//	messenger, err := vkdebug.Register(instance, vkdebug.FilterErrorsAndWarnings(),
//	    func(msg *vkdebug.Message) {
//	        fmt.Println(msg.Severity, msg.Description)
//	    })
//	if err != nil {
//	    // vkdebug.ErrMissingExtension: the instance was created without
//	    // the debug-utils capability.
//	}
//	defer messenger.Close()
//
// Keep the returned [Messenger] alive for as long as you want events
// delivered. A messenger that becomes unreachable without Close is
// deregistered by a finalizer and a warning is logged.
//
// # Architecture
//
// The module is organized into:
//   - Public API: flag sets, MessageFilter, Message, Messenger, Instance,
//     label and object-naming helpers
//   - driver: the raw ABI surface (record layouts, result codes, the
//     entry-point table, driver registry)
//   - driver/softdriver: an in-process layer implementing the table, used
//     by the demo command and the end-to-end tests
//
// # Lifetimes
//
// Everything reachable from a [Message] is an owned Go value, decoded from
// the foreign record at dispatch time. The raw record itself is only valid
// for the duration of one dispatch call and is never exposed past it.
package vkdebug
