package vkdebug

import (
	"errors"
	"fmt"

	"github.com/gogpu/vkdebug/driver"
)

// Package errors for the debug channel.
var (
	// ErrMissingExtension is returned by Register when the instance was
	// created without the EXT_debug_utils capability. No foreign call is
	// made in this case; recreate the instance with the capability enabled.
	ErrMissingExtension = errors.New("vkdebug: EXT_debug_utils not enabled on instance")

	// ErrDriverContract reports an unexpected failure from the foreign
	// layer. A conforming layer never produces it; application code is not
	// expected to recover from it.
	ErrDriverContract = errors.New("vkdebug: driver contract violation")

	// ErrClosed is returned when operating on a deregistered messenger.
	ErrClosed = errors.New("vkdebug: messenger is closed")

	// ErrMessengersAlive is returned by Instance.Close while registered
	// messengers still reference the instance.
	ErrMessengersAlive = errors.New("vkdebug: instance still referenced by registered messengers")

	// ErrNilCallback is returned by Register for a nil message callback.
	ErrNilCallback = errors.New("vkdebug: nil message callback")

	// ErrNilInstance is returned by Register for a nil instance.
	ErrNilInstance = errors.New("vkdebug: nil instance")

	// ErrNilMessage is returned by Submit for a nil message.
	ErrNilMessage = errors.New("vkdebug: nil message")

	// ErrNilDriver is returned by NewInstance for a nil entry-point table.
	ErrNilDriver = errors.New("vkdebug: nil driver table")
)

// DriverError describes an unexpected result or malformed record from the
// foreign layer. It unwraps to ErrDriverContract.
type DriverError struct {
	// Op is the operation that observed the violation.
	Op string

	// Result is the foreign status code, when the violation is a status.
	Result driver.Result

	// Detail describes a malformed-record violation, when Result does not
	// apply.
	Detail string
}

func (e *DriverError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("vkdebug: %s: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("vkdebug: %s: unexpected driver result %s", e.Op, e.Result)
}

func (e *DriverError) Unwrap() error { return ErrDriverContract }
